package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"time"

	"meetcast/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/announcements.go . AnnouncementsStore

// EventTimeLayout is the expected format of the event time entered by the
// administrator, e.g. "15:00 25.12.2024".
const EventTimeLayout = "15:04 02.01.2006"

// reminderOffset is how long before the event the announcement becomes due.
const reminderOffset = 30 * time.Minute

var ErrBadEventTime = errors.New("event time does not match layout")

const (
	msgAskTime   = "Введите время мероприятия (например: 15:00 25.12.2024):"
	msgAskText   = "Введите текст сообщения:"
	msgAskLink   = "Введите ссылку на Google Meet:"
	msgCancelled = "Рассылка отменена."
)

type AnnouncementsStore interface {
	AddAnnouncement(ctx context.Context, a dal.Announcement) error
	GetDueAnnouncements(ctx context.Context, now time.Time) ([]dal.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int64) error
}

type State int

const (
	StateAwaitTime State = iota
	StateAwaitText
	StateAwaitLink
	StateAwaitConfirm
	StateDone
)

type Draft struct {
	EventTime string
	Text      string
	Link      string
}

// Conversation is the authoring dialogue for a single announcement. It is a
// plain value driven by Advance; it never touches the store itself.
type Conversation struct {
	State State
	Draft Draft
}

type EventKind int

const (
	EventText EventKind = iota
	EventConfirm
	EventCancel
)

type Event struct {
	Kind EventKind
	Text string
}

// Reply is what the transport should present to the administrator after a
// transition.
type Reply struct {
	Text string
	// HTML marks the text as pre-escaped Telegram HTML.
	HTML bool
	// AskConfirm requests the send/cancel choice to be rendered alongside.
	AskConfirm bool
}

func NewConversation() (Conversation, Reply) {
	return Conversation{State: StateAwaitTime}, Reply{Text: msgAskTime}
}

// Advance applies one inbound event to the conversation and returns the next
// state together with the reply to render. Events that make no sense in the
// current state are ignored.
func (c Conversation) Advance(ev Event) (Conversation, Reply) {
	switch c.State {
	case StateAwaitTime:
		if ev.Kind != EventText {
			return c, Reply{}
		}
		c.Draft.EventTime = ev.Text
		c.State = StateAwaitText
		return c, Reply{Text: msgAskText}

	case StateAwaitText:
		if ev.Kind != EventText {
			return c, Reply{}
		}
		c.Draft.Text = ev.Text
		c.State = StateAwaitLink
		return c, Reply{Text: msgAskLink}

	case StateAwaitLink:
		if ev.Kind != EventText {
			return c, Reply{}
		}
		c.Draft.Link = ev.Text
		c.State = StateAwaitConfirm
		return c, Reply{Text: renderPreview(c.Draft), HTML: true, AskConfirm: true}

	case StateAwaitConfirm:
		switch ev.Kind {
		case EventConfirm:
			// Persisting the draft is the transport's job via Authoring.Publish.
			c.State = StateDone
			return c, Reply{}
		case EventCancel:
			c.State = StateDone
			return c, Reply{Text: msgCancelled}
		}
		return c, Reply{}
	}

	return c, Reply{}
}

func (c Conversation) Done() bool {
	return c.State == StateDone
}

func renderPreview(d Draft) string {
	return fmt.Sprintf(
		"<b>Время:</b> <code>%s</code>\n<b>Текст:</b> %s\n<b>Ссылка:</b> %s\n\nОтправить рассылку?",
		html.EscapeString(d.EventTime),
		html.EscapeString(d.Text),
		html.EscapeString(d.Link),
	)
}

// Authoring persists confirmed drafts.
type Authoring struct {
	store AnnouncementsStore
	loc   *time.Location

	log *slog.Logger
}

func NewAuthoring(store AnnouncementsStore, loc *time.Location, log *slog.Logger) *Authoring {
	return &Authoring{
		store: store,
		loc:   loc,
		log:   log.With("component", "service").With("service", "authoring"),
	}
}

// Publish validates a confirmed draft and enqueues exactly one announcement.
// The event time must match EventTimeLayout in the configured location; the
// announcement becomes due reminderOffset before the event.
func (s *Authoring) Publish(ctx context.Context, d Draft) error {
	eventAt, err := time.ParseInLocation(EventTimeLayout, d.EventTime, s.loc)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadEventTime, d.EventTime)
	}

	a := dal.Announcement{
		Text:      d.Text,
		Link:      d.Link,
		EventTime: d.EventTime,
		NotifyAt:  eventAt.Add(-reminderOffset),
	}
	if err := s.store.AddAnnouncement(ctx, a); err != nil {
		return fmt.Errorf("add announcement: %w", err)
	}

	s.log.InfoContext(ctx, "announcement scheduled",
		"eventTime", a.EventTime,
		"notifyAt", a.NotifyAt)
	return nil
}
