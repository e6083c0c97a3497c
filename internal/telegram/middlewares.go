package telegram

import (
	"log/slog"

	tb "gopkg.in/telebot.v3"
)

// AdminOnly rejects everyone but the configured administrator with an
// access-denied reply.
func AdminOnly(adminID int64, log *slog.Logger) tb.MiddlewareFunc {
	return func(next tb.HandlerFunc) tb.HandlerFunc {
		return func(c tb.Context) error {
			sender := c.Sender()
			if sender == nil || sender.ID != adminID {
				if sender != nil {
					log.Info("admin command denied", "chatID", sender.ID)
				}
				return c.Send(msgAccessDenied)
			}
			return next(c)
		}
	}
}
