package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"

	"meetcast/internal/config"
)

type Bot struct {
	bot *tb.Bot

	handler *Handler
	adminID int64

	log *slog.Logger
}

// NewBot creates the bot. With a public URL configured it serves the single
// webhook endpoint on the configured port; otherwise it falls back to long
// polling.
func NewBot(conf *config.Config, handler *Handler, log *slog.Logger) (*Bot, error) {
	var poller tb.Poller = &tb.LongPoller{Timeout: 5 * time.Second} //nolint:mnd // it's ok
	if conf.PublicURL != "" {
		poller = &tb.Webhook{
			Listen:   fmt.Sprintf(":%d", conf.Port),
			Endpoint: &tb.WebhookEndpoint{PublicURL: conf.PublicURL},
		}
	}

	bot, err := tb.NewBot(tb.Settings{
		Token:  conf.BotToken,
		Poller: poller,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot: bot,

		handler: handler,
		adminID: conf.AdminID,

		log: log.With("component", "bot"),
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	b.bot.Handle("/start", b.handler.Start)
	b.bot.Handle("/unsubscribe", b.handler.Unsubscribe)

	admin := b.bot.Group()
	admin.Use(AdminOnly(b.adminID, b.log))
	admin.Handle("/send", b.handler.Send)
	admin.Handle("/users", b.handler.Users)
	admin.Handle("/remove", b.handler.Remove)
	admin.Handle("/admin", b.handler.AdminPanel)

	b.bot.Handle(tb.OnText, b.handler.OnText)
	b.bot.Handle(tb.OnCallback, b.handler.Callback)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.bot.Start()

	return nil
}
