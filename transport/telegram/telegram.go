// Package telegram adapts the dialog engine to Telegram long polling. Slash
// commands map to engine commands, plain text to dialog turns; every update
// produces exactly one reply message. The adapter owns no dialog state.
package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Ilya-36/planbot/core"
	"github.com/Ilya-36/planbot/engine"
	"github.com/Ilya-36/planbot/logging"
)

// Options holds overrides passed to New().
type Options struct {
	// UpdateTimeout is the long-poll timeout in seconds.
	UpdateTimeout int
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Bot is the long-polling Telegram transport.
type Bot struct {
	api           *tgbotapi.BotAPI
	engine        *engine.Engine
	logger        logging.Logger
	updateTimeout int
}

// New authenticates against the Telegram Bot API and wires the engine.
func New(token string, eng *engine.Engine, optFns ...func(o *Options)) (*Bot, error) {
	opts := Options{UpdateTimeout: 30, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}

	return &Bot{api: api, engine: eng, logger: opts.Logger, updateTimeout: opts.UpdateTimeout}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("telegram bot started account=%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.updateTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.handleMessage(update.Message)
		}
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		// Channel posts carry no sender; dialogs are per-user only.
		return
	}
	userID := strconv.FormatInt(msg.From.ID, 10)

	var out core.Outgoing
	if msg.IsCommand() {
		cmd, known := core.ParseCommand(msg.Command())
		if !known {
			// Let the engine produce its uniform unknown-command guidance.
			cmd = core.Command(msg.Command())
		}
		out = b.engine.OnCommand(userID, cmd)
	} else {
		out = b.engine.OnText(userID, msg.Text)
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, out.Text)
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Error("failed to send telegram reply user_id=%s: %v", userID, err)
	}
}
