package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/Roma7-7-7/telegram"

	"meetcast/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/telegram.go . TelegramClient

type TelegramClient interface {
	SendMessage(ctx context.Context, chatID, msg string) error
}

type Clock interface {
	Now() time.Time
}

// Delivery fans due announcements out to all subscribers.
type Delivery struct {
	announcements AnnouncementsStore
	subscribers   SubscribersStore
	telegram      TelegramClient
	clock         Clock

	log *slog.Logger
	mx  *sync.Mutex
}

func NewDelivery(
	announcements AnnouncementsStore,
	subscribers SubscribersStore,
	telegram TelegramClient,
	clock Clock,
	log *slog.Logger,
) *Delivery {
	return &Delivery{
		announcements: announcements,
		subscribers:   subscribers,
		telegram:      telegram,
		clock:         clock,

		log: log.With("component", "service").With("service", "delivery"),
		mx:  &sync.Mutex{},
	}
}

// DeliverDue sends every due announcement to the current subscriber set.
// Delivery is best-effort and at-most-once: a subscriber that blocked the bot
// is removed, any other send failure is only logged, and the announcement is
// deleted after one pass regardless of the outcome.
func (s *Delivery) DeliverDue(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	due, err := s.announcements.GetDueAnnouncements(ctx, s.clock.Now())
	if err != nil {
		return fmt.Errorf("get due announcements: %w", err)
	}
	if len(due) == 0 {
		return nil
	}

	s.log.InfoContext(ctx, "delivering due announcements", "count", len(due))
	for _, a := range due {
		s.deliver(ctx, a)
	}

	return nil
}

func (s *Delivery) deliver(ctx context.Context, a dal.Announcement) {
	log := s.log.With("announcementID", a.ID)

	// The subscriber set is re-read per announcement so subscriptions changed
	// during the sweep are reflected between announcements.
	subs, err := s.subscribers.GetSubscribers(ctx)
	if err != nil {
		// Keep the announcement; the next cycle retries the whole pass.
		log.ErrorContext(ctx, "failed to get subscribers", "error", err)
		return
	}

	msg := renderAnnouncement(a)
	for _, sub := range subs {
		err := s.telegram.SendMessage(ctx, strconv.FormatInt(sub.ChatID, 10), msg)
		if err == nil {
			continue
		}

		if errors.Is(err, telegram.ErrForbidden) {
			log.InfoContext(ctx, "bot is blocked by subscriber, removing", "chatID", sub.ChatID)
			if err := s.subscribers.DeleteSubscriber(ctx, sub.ChatID); err != nil {
				log.ErrorContext(ctx, "failed to delete blocked subscriber",
					"chatID", sub.ChatID,
					"error", err)
			}
			continue
		}

		log.ErrorContext(ctx, "failed to send announcement", "chatID", sub.ChatID, "error", err)
	}

	if err := s.announcements.DeleteAnnouncement(ctx, a.ID); err != nil {
		log.ErrorContext(ctx, "failed to delete announcement", "error", err)
	}
}

func renderAnnouncement(a dal.Announcement) string {
	return fmt.Sprintf("📅 %s\n\n%s\n\nСсылка: %s", a.EventTime, a.Text, a.Link)
}
