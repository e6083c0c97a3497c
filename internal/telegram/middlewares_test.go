package telegram_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tb "gopkg.in/telebot.v3"

	"meetcast/internal/telegram"
)

func TestAdminOnly(t *testing.T) {
	handlerCalled := false
	next := func(tb.Context) error {
		handlerCalled = true
		return nil
	}

	t.Run("admin_passes", func(t *testing.T) {
		handlerCalled = false
		c := messageCtx(adminUser, "/send")

		err := telegram.AdminOnly(adminID, slog.New(slog.DiscardHandler))(next)(c)
		require.NoError(t, err)
		assert.True(t, handlerCalled)
		assert.Empty(t, c.sentTexts())
	})

	t.Run("other_user_denied", func(t *testing.T) {
		handlerCalled = false
		c := messageCtx(otherUser, "/send")

		err := telegram.AdminOnly(adminID, slog.New(slog.DiscardHandler))(next)(c)
		require.NoError(t, err)
		assert.False(t, handlerCalled)
		assert.Equal(t, []string{"⛔ Доступ запрещен!"}, c.sentTexts())
	})

	t.Run("nil_sender_denied", func(t *testing.T) {
		handlerCalled = false
		c := messageCtx(nil, "/send")

		err := telegram.AdminOnly(adminID, slog.New(slog.DiscardHandler))(next)(c)
		require.NoError(t, err)
		assert.False(t, handlerCalled)
		assert.Equal(t, []string{"⛔ Доступ запрещен!"}, c.sentTexts())
	})
}
