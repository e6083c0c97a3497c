package dal

import (
	"context"
	"fmt"
	"time"
)

type Announcement struct {
	ID        int64
	Text      string
	Link      string
	EventTime string
	NotifyAt  time.Time
	CreatedAt time.Time
}

func (s *PostgresDB) AddAnnouncement(ctx context.Context, a Announcement) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO announcements (message_text, link, event_time, notify_at) VALUES ($1, $2, $3, $4)`,
		a.Text, a.Link, a.EventTime, a.NotifyAt)
	if err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}
	return nil
}

// GetDueAnnouncements returns announcements whose notify time is now or past,
// oldest first.
func (s *PostgresDB) GetDueAnnouncements(ctx context.Context, now time.Time) ([]Announcement, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, message_text, link, event_time, notify_at, created_at
		 FROM announcements
		 WHERE notify_at <= $1
		 ORDER BY id`,
		now)
	if err != nil {
		return nil, fmt.Errorf("select due announcements: %w", err)
	}
	defer rows.Close()

	var res []Announcement
	for rows.Next() {
		var a Announcement
		if err := rows.Scan(&a.ID, &a.Text, &a.Link, &a.EventTime, &a.NotifyAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		res = append(res, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate announcements: %w", err)
	}

	return res, nil
}

func (s *PostgresDB) DeleteAnnouncement(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete announcement id=%d: %w", id, err)
	}
	return nil
}
