package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planbot",
	Short: "Conversational meeting and task assistant",
	Long: `PlanBot guides users through multi-turn dialogs to schedule meetings
and manage a shared task list. Pick a transport: an HTTP/WebSocket server,
a Telegram bot, or a local REPL.`,
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(telegramCmd)
	rootCmd.AddCommand(replCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
