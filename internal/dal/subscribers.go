package dal

import (
	"context"
	"fmt"
	"time"
)

type Subscriber struct {
	ChatID    int64
	CreatedAt time.Time
}

// AddSubscriber inserts a subscriber. Subscribing an already known chat is a no-op.
func (s *PostgresDB) AddSubscriber(ctx context.Context, chatID int64) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO subscribers (chat_id) VALUES ($1) ON CONFLICT (chat_id) DO NOTHING`,
		chatID)
	if err != nil {
		return fmt.Errorf("insert subscriber chatID=%d: %w", chatID, err)
	}
	return nil
}

// DeleteSubscriber removes a subscriber. Deleting an unknown chat is a no-op.
func (s *PostgresDB) DeleteSubscriber(ctx context.Context, chatID int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM subscribers WHERE chat_id = $1`, chatID)
	if err != nil {
		return fmt.Errorf("delete subscriber chatID=%d: %w", chatID, err)
	}
	return nil
}

func (s *PostgresDB) GetSubscribers(ctx context.Context) ([]Subscriber, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT chat_id, created_at FROM subscribers ORDER BY created_at, chat_id`)
	if err != nil {
		return nil, fmt.Errorf("select subscribers: %w", err)
	}
	defer rows.Close()

	var res []Subscriber
	for rows.Next() {
		var sub Subscriber
		if err := rows.Scan(&sub.ChatID, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		res = append(res, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscribers: %w", err)
	}

	return res, nil
}

func (s *PostgresDB) CountSubscribers(ctx context.Context) (int, error) {
	var res int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&res); err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return res, nil
}
