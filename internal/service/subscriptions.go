package service

import (
	"context"
	"fmt"
	"log/slog"

	"meetcast/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/subscribers.go . SubscribersStore

type SubscribersStore interface {
	AddSubscriber(ctx context.Context, chatID int64) error
	DeleteSubscriber(ctx context.Context, chatID int64) error
	GetSubscribers(ctx context.Context) ([]dal.Subscriber, error)
	CountSubscribers(ctx context.Context) (int, error)
}

type Subscriptions struct {
	store SubscribersStore

	log *slog.Logger
}

func NewSubscriptions(store SubscribersStore, log *slog.Logger) *Subscriptions {
	return &Subscriptions{
		store: store,
		log:   log.With("component", "service").With("service", "subscriptions"),
	}
}

// Subscribe registers a chat for broadcasts. Subscribing twice is a no-op.
func (s *Subscriptions) Subscribe(ctx context.Context, chatID int64) error {
	if err := s.store.AddSubscriber(ctx, chatID); err != nil {
		return fmt.Errorf("add subscriber: %w", err)
	}
	s.log.DebugContext(ctx, "subscriber added", "chatID", chatID)
	return nil
}

// Unsubscribe removes a chat. Unknown chats are a no-op, not an error.
func (s *Subscriptions) Unsubscribe(ctx context.Context, chatID int64) error {
	if err := s.store.DeleteSubscriber(ctx, chatID); err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	s.log.DebugContext(ctx, "subscriber removed", "chatID", chatID)
	return nil
}

func (s *Subscriptions) List(ctx context.Context) ([]dal.Subscriber, error) {
	subs, err := s.store.GetSubscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get subscribers: %w", err)
	}
	return subs, nil
}

func (s *Subscriptions) Count(ctx context.Context) (int, error) {
	count, err := s.store.CountSubscribers(ctx)
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return count, nil
}
