package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Ilya-36/planbot/config"
	"github.com/Ilya-36/planbot/transport/telegram"
)

var telegramToken string

var telegramCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Run the Telegram bot",
	Long:  `Connect to the Telegram Bot API and serve dialogs over long polling.`,
	Run:   runTelegram,
}

func init() {
	telegramCmd.Flags().StringVarP(&telegramToken, "token", "t", "", "Bot API token (defaults to TELEGRAM_TOKEN)")
}

func runTelegram(cmd *cobra.Command, args []string) {
	cfg := config.Load()
	if telegramToken != "" {
		cfg.TelegramToken = telegramToken
	}
	if cfg.TelegramToken == "" {
		fatal("A bot token is required: pass --token or set TELEGRAM_TOKEN")
	}

	logger := newLogger(cfg).WithComponent("telegram")
	eng := newEngine(logger)

	bot, err := telegram.New(cfg.TelegramToken, eng, func(o *telegram.Options) {
		o.Logger = logger
	})
	if err != nil {
		fatal("Failed to start telegram bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fatal("Bot stopped: %v", err)
	}
}
