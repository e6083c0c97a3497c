package telegram_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	tb "gopkg.in/telebot.v3"

	"meetcast/internal/dal"
	"meetcast/internal/service"
	"meetcast/internal/telegram"
	"meetcast/internal/telegram/mocks"
)

const adminID = int64(777)

var (
	adminUser = &tb.User{ID: adminID}
	otherUser = &tb.User{ID: 123}
)

// stubContext implements the handful of telebot context methods the handlers
// touch; everything else panics via the embedded nil interface.
type stubContext struct {
	tb.Context

	sender *tb.User
	text   string
	args   []string
	cb     *tb.Callback

	sent []interface{}
}

func (c *stubContext) Sender() *tb.User                        { return c.sender }
func (c *stubContext) Text() string                            { return c.text }
func (c *stubContext) Args() []string                          { return c.args }
func (c *stubContext) Callback() *tb.Callback                  { return c.cb }
func (c *stubContext) Respond(_ ...*tb.CallbackResponse) error { return nil }
func (c *stubContext) Delete() error                           { return nil }

func (c *stubContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, what)
	return nil
}

func (c *stubContext) sentTexts() []string {
	res := make([]string, 0, len(c.sent))
	for _, s := range c.sent {
		if text, ok := s.(string); ok {
			res = append(res, text)
		}
	}
	return res
}

func messageCtx(sender *tb.User, text string) *stubContext {
	return &stubContext{sender: sender, text: text}
}

func callbackCtx(sender *tb.User, unique string) *stubContext {
	return &stubContext{sender: sender, cb: &tb.Callback{Data: "\f" + unique}}
}

func newHandler(t *testing.T, ctrl *gomock.Controller) (*telegram.Handler, *mocks.MockSubscriptions, *mocks.MockBroadcasts) {
	t.Helper()
	subscriptions := mocks.NewMockSubscriptions(ctrl)
	broadcasts := mocks.NewMockBroadcasts(ctrl)
	h := telegram.NewHandler(subscriptions, broadcasts, adminID, slog.New(slog.DiscardHandler))
	return h, subscriptions, broadcasts
}

func TestHandler_Start(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h, subscriptions, _ := newHandler(t, ctrl)
		subscriptions.EXPECT().Subscribe(gomock.Any(), otherUser.ID).Return(nil)

		c := messageCtx(otherUser, "/start")
		require.NoError(t, h.Start(c))
		assert.Equal(t, []string{"🎉 Добро пожаловать! Вы подписаны на рассылку."}, c.sentTexts())
	})

	t.Run("store_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h, subscriptions, _ := newHandler(t, ctrl)
		subscriptions.EXPECT().Subscribe(gomock.Any(), otherUser.ID).Return(assert.AnError)

		c := messageCtx(otherUser, "/start")
		require.NoError(t, h.Start(c))
		assert.Equal(t, []string{"❌ Произошла ошибка!"}, c.sentTexts())
	})
}

func TestHandler_Unsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, subscriptions, _ := newHandler(t, ctrl)
	subscriptions.EXPECT().Unsubscribe(gomock.Any(), otherUser.ID).Return(nil)

	c := messageCtx(otherUser, "/unsubscribe")
	require.NoError(t, h.Unsubscribe(c))
	assert.Equal(t, []string{"Вы отписаны от рассылки."}, c.sentTexts())
}

func TestHandler_AuthoringFlow_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, broadcasts := newHandler(t, ctrl)
	broadcasts.EXPECT().Publish(gomock.Any(), service.Draft{
		EventTime: "15:00 25.12.2024",
		Text:      "Созвон команды",
		Link:      "https://meet.google.com/abc",
	}).Return(nil)

	c := messageCtx(adminUser, "/send")
	require.NoError(t, h.Send(c))
	assert.Equal(t, []string{"Введите время мероприятия (например: 15:00 25.12.2024):"}, c.sentTexts())

	c = messageCtx(adminUser, "15:00 25.12.2024")
	require.NoError(t, h.OnText(c))
	assert.Equal(t, []string{"Введите текст сообщения:"}, c.sentTexts())

	c = messageCtx(adminUser, "Созвон команды")
	require.NoError(t, h.OnText(c))
	assert.Equal(t, []string{"Введите ссылку на Google Meet:"}, c.sentTexts())

	c = messageCtx(adminUser, "https://meet.google.com/abc")
	require.NoError(t, h.OnText(c))
	if texts := c.sentTexts(); assert.Len(t, texts, 1) {
		assert.Contains(t, texts[0], "<code>15:00 25.12.2024</code>")
		assert.Contains(t, texts[0], "Отправить рассылку?")
	}

	c = callbackCtx(adminUser, "confirm_send")
	require.NoError(t, h.Callback(c))
	assert.Equal(t, []string{"✅ Рассылка запланирована!"}, c.sentTexts())
}

func TestHandler_AuthoringFlow_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Publish expectation: cancelling must not persist anything.
	h, _, _ := newHandler(t, ctrl)

	require.NoError(t, h.Send(messageCtx(adminUser, "/send")))
	require.NoError(t, h.OnText(messageCtx(adminUser, "15:00 25.12.2024")))
	require.NoError(t, h.OnText(messageCtx(adminUser, "Созвон команды")))
	require.NoError(t, h.OnText(messageCtx(adminUser, "https://meet.google.com/abc")))

	c := callbackCtx(adminUser, "cancel_send")
	require.NoError(t, h.Callback(c))
	assert.Equal(t, []string{"Рассылка отменена."}, c.sentTexts())

	// The conversation is gone; a repeated confirm is a no-op.
	c = callbackCtx(adminUser, "confirm_send")
	require.NoError(t, h.Callback(c))
	assert.Empty(t, c.sentTexts())
}

func TestHandler_AuthoringFlow_BadEventTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, broadcasts := newHandler(t, ctrl)
	broadcasts.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(service.ErrBadEventTime)

	require.NoError(t, h.Send(messageCtx(adminUser, "/send")))
	require.NoError(t, h.OnText(messageCtx(adminUser, "завтра вечером")))
	require.NoError(t, h.OnText(messageCtx(adminUser, "Созвон команды")))
	require.NoError(t, h.OnText(messageCtx(adminUser, "https://meet.google.com/abc")))

	c := callbackCtx(adminUser, "confirm_send")
	require.NoError(t, h.Callback(c))
	assert.Equal(t, []string{"Не удалось разобрать время. Формат: 15:00 25.12.2024."}, c.sentTexts())
}

func TestHandler_ConfirmWithoutConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newHandler(t, ctrl)

	c := callbackCtx(adminUser, "confirm_send")
	require.NoError(t, h.Callback(c))
	assert.Empty(t, c.sentTexts())
}

func TestHandler_OnText_NonAdminIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newHandler(t, ctrl)

	c := messageCtx(otherUser, "случайный текст")
	require.NoError(t, h.OnText(c))
	assert.Empty(t, c.sentTexts())
}

func TestHandler_NonAdminSend_DeniedAndNoConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newHandler(t, ctrl)
	guarded := telegram.AdminOnly(adminID, slog.New(slog.DiscardHandler))(h.Send)

	c := messageCtx(otherUser, "/send")
	require.NoError(t, guarded(c))
	assert.Equal(t, []string{"⛔ Доступ запрещен!"}, c.sentTexts())

	// No conversation was created: admin free text goes nowhere.
	c = messageCtx(adminUser, "15:00 25.12.2024")
	require.NoError(t, h.OnText(c))
	assert.Empty(t, c.sentTexts())
}

func TestHandler_NonAdminCallback_Denied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _ := newHandler(t, ctrl)

	c := callbackCtx(otherUser, "create_broadcast")
	require.NoError(t, h.Callback(c))
	assert.Equal(t, []string{"⛔ Доступ запрещен!"}, c.sentTexts())
}

func TestHandler_Remove(t *testing.T) {
	t.Run("with_argument", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h, subscriptions, _ := newHandler(t, ctrl)
		subscriptions.EXPECT().Unsubscribe(gomock.Any(), int64(42)).Return(nil)

		c := messageCtx(adminUser, "/remove 42")
		c.args = []string{"42"}
		require.NoError(t, h.Remove(c))
		assert.Equal(t, []string{"Пользователь удален."}, c.sentTexts())
	})

	t.Run("with_follow_up_prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h, subscriptions, _ := newHandler(t, ctrl)
		subscriptions.EXPECT().Unsubscribe(gomock.Any(), int64(42)).Return(nil)

		c := messageCtx(adminUser, "/remove")
		require.NoError(t, h.Remove(c))
		assert.Equal(t, []string{"Введите ID пользователя для удаления:"}, c.sentTexts())

		c = messageCtx(adminUser, "42")
		require.NoError(t, h.OnText(c))
		assert.Equal(t, []string{"Пользователь удален."}, c.sentTexts())
	})

	t.Run("bad_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h, _, _ := newHandler(t, ctrl)

		c := messageCtx(adminUser, "/remove abc")
		c.args = []string{"abc"}
		require.NoError(t, h.Remove(c))
		assert.Equal(t, []string{"ID пользователя должен быть числом."}, c.sentTexts())
	})
}

func TestHandler_Users(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		createdAt := time.Date(2024, time.December, 1, 10, 0, 0, 0, time.UTC)
		h, subscriptions, _ := newHandler(t, ctrl)
		subscriptions.EXPECT().List(gomock.Any()).Return([]dal.Subscriber{
			{ChatID: 123, CreatedAt: createdAt},
			{ChatID: 456, CreatedAt: createdAt},
		}, nil)

		c := messageCtx(adminUser, "/users")
		require.NoError(t, h.Users(c))
		if texts := c.sentTexts(); assert.Len(t, texts, 1) {
			assert.Contains(t, texts[0], "Подписчики (2):")
			assert.Contains(t, texts[0], "123 (с 01.12.2024)")
			assert.Contains(t, texts[0], "456 (с 01.12.2024)")
		}
	})

	t.Run("empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h, subscriptions, _ := newHandler(t, ctrl)
		subscriptions.EXPECT().List(gomock.Any()).Return(nil, nil)

		c := messageCtx(adminUser, "/users")
		require.NoError(t, h.Users(c))
		assert.Equal(t, []string{"Подписчиков пока нет."}, c.sentTexts())
	})
}

func TestHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, subscriptions, _ := newHandler(t, ctrl)
	subscriptions.EXPECT().Count(gomock.Any()).Return(5, nil)

	c := callbackCtx(adminUser, "stats")
	require.NoError(t, h.Callback(c))
	assert.Equal(t, []string{"Подписчиков: 5"}, c.sentTexts())
}

func TestHandler_SubscribeCallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, subscriptions, _ := newHandler(t, ctrl)
	subscriptions.EXPECT().Subscribe(gomock.Any(), otherUser.ID).Return(nil)

	c := callbackCtx(otherUser, "subscribe")
	require.NoError(t, h.Callback(c))
	assert.Equal(t, []string{"🎉 Добро пожаловать! Вы подписаны на рассылку."}, c.sentTexts())
}
