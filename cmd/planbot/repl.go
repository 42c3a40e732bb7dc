package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ilya-36/planbot/config"
	"github.com/Ilya-36/planbot/core"
)

var replUser string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Chat with the bot on stdin",
	Long:  `Run the dialog engine locally: type /plan_meeting, /add_task and friends, one message per line.`,
	Run:   runRepl,
}

func init() {
	replCmd.Flags().StringVarP(&replUser, "user", "u", "local", "User id for the session")
}

func runRepl(cmd *cobra.Command, args []string) {
	cfg := config.Load()
	eng := newEngine(newLogger(cfg).WithComponent("repl"))

	fmt.Println(eng.OnCommand(replUser, core.CommandStart).Text)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := scanner.Text()

		var out core.Outgoing
		if strings.HasPrefix(line, "/") {
			name := strings.TrimPrefix(strings.TrimSpace(line), "/")
			cmd, known := core.ParseCommand(name)
			if !known {
				cmd = core.Command(name)
			}
			out = eng.OnCommand(replUser, cmd)
		} else {
			out = eng.OnText(replUser, line)
		}

		fmt.Println(out.Text)
		fmt.Print("> ")
	}
	if err := scanner.Err(); err != nil {
		fatal("Input error: %v", err)
	}
}
