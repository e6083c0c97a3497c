package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	tb "gopkg.in/telebot.v3"

	"meetcast/internal/dal"
	"meetcast/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/subscriptions.go . Subscriptions

//go:generate mockgen -package mocks -destination mocks/broadcasts.go . Broadcasts

const (
	msgWelcome       = "🎉 Добро пожаловать! Вы подписаны на рассылку."
	msgUnsubscribed  = "Вы отписаны от рассылки."
	msgAccessDenied  = "⛔ Доступ запрещен!"
	msgErrorGeneric  = "❌ Произошла ошибка!"
	msgScheduled     = "✅ Рассылка запланирована!"
	msgBadEventTime  = "Не удалось разобрать время. Формат: 15:00 25.12.2024."
	msgAskRemoveID   = "Введите ID пользователя для удаления:"
	msgRemoved       = "Пользователь удален."
	msgBadRemoveID   = "ID пользователя должен быть числом."
	msgAdminPanel    = "Панель администратора:"
	msgNoSubscribers = "Подписчиков пока нет."
)

// Callback uniques; each maps 1:1 to a store operation or a conversation
// transition.
const (
	cbSubscribe       = "subscribe"
	cbUnsubscribe     = "unsubscribe"
	cbCreateBroadcast = "create_broadcast"
	cbConfirmSend     = "confirm_send"
	cbCancelSend      = "cancel_send"
	cbListUsers       = "list_users"
	cbRemoveUser      = "remove_user"
	cbStats           = "stats"
)

type Subscriptions interface {
	Subscribe(ctx context.Context, chatID int64) error
	Unsubscribe(ctx context.Context, chatID int64) error
	List(ctx context.Context) ([]dal.Subscriber, error)
	Count(ctx context.Context) (int, error)
}

type Broadcasts interface {
	Publish(ctx context.Context, d service.Draft) error
}

type Handler struct {
	subscriptions Subscriptions
	broadcasts    Broadcasts
	adminID       int64

	markups *markups
	log     *slog.Logger

	// One in-progress authoring conversation and one pending remove prompt,
	// both scoped to the single admin.
	mx            sync.Mutex
	conv          *service.Conversation
	awaitRemoveID bool
}

func NewHandler(subscriptions Subscriptions, broadcasts Broadcasts, adminID int64, log *slog.Logger) *Handler {
	return &Handler{
		subscriptions: subscriptions,
		broadcasts:    broadcasts,
		adminID:       adminID,
		markups:       newMarkups(),
		log:           log.With("component", "handler"),
	}
}

func (h *Handler) Start(c tb.Context) error {
	chatID := c.Sender().ID

	if err := h.subscriptions.Subscribe(context.Background(), chatID); err != nil {
		h.log.Error("failed to subscribe", "chatID", chatID, "error", err)
		return c.Send(msgErrorGeneric)
	}

	h.log.Info("subscriber joined", "chatID", chatID)
	return c.Send(msgWelcome, h.markups.main)
}

func (h *Handler) Unsubscribe(c tb.Context) error {
	chatID := c.Sender().ID

	if err := h.subscriptions.Unsubscribe(context.Background(), chatID); err != nil {
		h.log.Error("failed to unsubscribe", "chatID", chatID, "error", err)
		return c.Send(msgErrorGeneric)
	}

	h.log.Info("subscriber left", "chatID", chatID)
	return c.Send(msgUnsubscribed, h.markups.main)
}

// Send enters the authoring conversation. Admin access is enforced by the
// AdminOnly middleware for the command and by the callback router for buttons.
func (h *Handler) Send(c tb.Context) error {
	conv, reply := service.NewConversation()

	h.mx.Lock()
	h.conv = &conv
	h.awaitRemoveID = false
	h.mx.Unlock()

	h.log.Info("authoring conversation started", "chatID", c.Sender().ID)
	return h.sendReply(c, reply)
}

func (h *Handler) Users(c tb.Context) error {
	subs, err := h.subscriptions.List(context.Background())
	if err != nil {
		h.log.Error("failed to list subscribers", "error", err)
		return c.Send(msgErrorGeneric)
	}

	return c.Send(renderSubscribers(subs))
}

// Remove deletes a subscriber by id given as a command argument; without an
// argument the id is asked for as a follow-up message.
func (h *Handler) Remove(c tb.Context) error {
	if args := c.Args(); len(args) > 0 {
		return h.removeByID(c, args[0])
	}
	return h.removePrompt(c)
}

func (h *Handler) AdminPanel(c tb.Context) error {
	return c.Send(msgAdminPanel, h.markups.admin)
}

// OnText feeds admin free text into the in-progress conversation or the
// pending remove prompt. Anything else is ignored.
func (h *Handler) OnText(c tb.Context) error {
	if c.Sender() == nil || c.Sender().ID != h.adminID {
		return nil
	}

	h.mx.Lock()
	awaitRemove := h.awaitRemoveID
	conv := h.conv
	h.mx.Unlock()

	if awaitRemove {
		return h.removeByID(c, c.Text())
	}
	if conv == nil {
		return nil
	}

	next, reply := conv.Advance(service.Event{Kind: service.EventText, Text: c.Text()})

	h.mx.Lock()
	h.conv = &next
	h.mx.Unlock()

	return h.sendReply(c, reply)
}

func (h *Handler) Callback(c tb.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	// Respond first to remove the loading state on the button.
	if err := c.Respond(); err != nil {
		h.log.Warn("failed to respond to callback", "error", err)
	}

	data := strings.TrimPrefix(callback.Data, "\f")
	if i := strings.IndexByte(data, '|'); i >= 0 {
		data = data[:i]
	}

	switch data {
	case cbSubscribe:
		return h.Start(c)
	case cbUnsubscribe:
		return h.Unsubscribe(c)
	case cbCreateBroadcast:
		return h.adminOnly(c, h.Send)
	case cbConfirmSend:
		return h.adminOnly(c, h.confirmSend)
	case cbCancelSend:
		return h.adminOnly(c, h.cancelSend)
	case cbListUsers:
		return h.adminOnly(c, h.Users)
	case cbRemoveUser:
		return h.adminOnly(c, h.removePrompt)
	case cbStats:
		return h.adminOnly(c, h.stats)
	default:
		h.log.Debug("no handler matched for callback", "data", data)
		return nil
	}
}

func (h *Handler) confirmSend(c tb.Context) error {
	h.mx.Lock()
	conv := h.conv
	h.conv = nil
	h.mx.Unlock()

	if conv == nil || conv.State != service.StateAwaitConfirm {
		return nil
	}

	err := h.broadcasts.Publish(context.Background(), conv.Draft)
	switch {
	case errors.Is(err, service.ErrBadEventTime):
		h.log.Info("announcement rejected", "eventTime", conv.Draft.EventTime)
		return c.Send(msgBadEventTime)
	case err != nil:
		h.log.Error("failed to publish announcement", "error", err)
		return c.Send(msgErrorGeneric)
	}

	return c.Send(msgScheduled)
}

func (h *Handler) cancelSend(c tb.Context) error {
	h.mx.Lock()
	conv := h.conv
	h.conv = nil
	h.mx.Unlock()

	if conv == nil || conv.State != service.StateAwaitConfirm {
		return nil
	}

	_, reply := conv.Advance(service.Event{Kind: service.EventCancel})
	h.log.Info("authoring conversation cancelled", "chatID", c.Sender().ID)
	return h.sendReply(c, reply)
}

func (h *Handler) removePrompt(c tb.Context) error {
	h.mx.Lock()
	h.awaitRemoveID = true
	h.conv = nil
	h.mx.Unlock()

	return c.Send(msgAskRemoveID)
}

func (h *Handler) removeByID(c tb.Context, raw string) error {
	h.mx.Lock()
	h.awaitRemoveID = false
	h.mx.Unlock()

	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return c.Send(msgBadRemoveID)
	}

	if err := h.subscriptions.Unsubscribe(context.Background(), id); err != nil {
		h.log.Error("failed to remove subscriber", "chatID", id, "error", err)
		return c.Send(msgErrorGeneric)
	}

	h.log.Info("subscriber removed by admin", "chatID", id)
	return c.Send(msgRemoved)
}

func (h *Handler) stats(c tb.Context) error {
	count, err := h.subscriptions.Count(context.Background())
	if err != nil {
		h.log.Error("failed to count subscribers", "error", err)
		return c.Send(msgErrorGeneric)
	}

	return c.Send(fmt.Sprintf("Подписчиков: %d", count))
}

func (h *Handler) adminOnly(c tb.Context, next tb.HandlerFunc) error {
	if c.Sender() == nil || c.Sender().ID != h.adminID {
		return c.Send(msgAccessDenied)
	}
	return next(c)
}

func (h *Handler) sendReply(c tb.Context, reply service.Reply) error {
	if reply.Text == "" {
		return nil
	}

	opts := make([]interface{}, 0, 2)
	if reply.AskConfirm {
		opts = append(opts, h.markups.confirm)
	}
	if reply.HTML {
		opts = append(opts, tb.ModeHTML)
	}
	return c.Send(reply.Text, opts...)
}

func renderSubscribers(subs []dal.Subscriber) string {
	if len(subs) == 0 {
		return msgNoSubscribers
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Подписчики (%d):\n", len(subs))
	for _, sub := range subs {
		fmt.Fprintf(&b, "%d (с %s)\n", sub.ChatID, sub.CreatedAt.Format("02.01.2006"))
	}
	return strings.TrimSpace(b.String())
}

type markups struct {
	main    *tb.ReplyMarkup
	admin   *tb.ReplyMarkup
	confirm *tb.ReplyMarkup
}

func newMarkups() *markups {
	main := &tb.ReplyMarkup{}
	subscribeBtn := main.Data("Подписаться", cbSubscribe)
	unsubscribeBtn := main.Data("Отписаться", cbUnsubscribe)
	main.Inline(main.Row(subscribeBtn), main.Row(unsubscribeBtn))

	admin := &tb.ReplyMarkup{}
	createBtn := admin.Data("📣 Создать рассылку", cbCreateBroadcast)
	usersBtn := admin.Data("👥 Список подписчиков", cbListUsers)
	removeBtn := admin.Data("🗑 Удалить подписчика", cbRemoveUser)
	statsBtn := admin.Data("📊 Статистика", cbStats)
	admin.Inline(
		admin.Row(createBtn),
		admin.Row(usersBtn),
		admin.Row(removeBtn),
		admin.Row(statsBtn),
	)

	confirm := &tb.ReplyMarkup{}
	sendBtn := confirm.Data("✅ Отправить", cbConfirmSend)
	cancelBtn := confirm.Data("❌ Отмена", cbCancelSend)
	confirm.Inline(confirm.Row(sendBtn, cancelBtn))

	return &markups{
		main:    main,
		admin:   admin,
		confirm: confirm,
	}
}
