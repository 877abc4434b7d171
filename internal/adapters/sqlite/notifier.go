package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/doze/internal/ports/secondary"
)

// ReminderStore implements secondary.Notifier by recording scheduled
// reminders in the reminders table. Delivery is left to whatever reads it.
type ReminderStore struct {
	db *sql.DB
}

// NewReminderStore creates a new SQLite reminder store.
func NewReminderStore(db *sql.DB) *ReminderStore {
	return &ReminderStore{db: db}
}

// Schedule creates or replaces the reminder with r.Identifier.
func (s *ReminderStore) Schedule(ctx context.Context, r secondary.Reminder) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reminders (identifier, title, body, weekday, hour, minute, scheduled_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(identifier) DO UPDATE SET
			title = excluded.title,
			body = excluded.body,
			weekday = excluded.weekday,
			hour = excluded.hour,
			minute = excluded.minute,
			scheduled_at = excluded.scheduled_at`,
		r.Identifier, r.Title, r.Body, r.Weekday, r.Hour, r.Minute,
	)
	if err != nil {
		return fmt.Errorf("failed to schedule reminder %s: %w", r.Identifier, err)
	}
	return nil
}

// Cancel removes the reminder with identifier.
func (s *ReminderStore) Cancel(ctx context.Context, identifier string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM reminders WHERE identifier = ?", identifier); err != nil {
		return fmt.Errorf("failed to cancel reminder %s: %w", identifier, err)
	}
	return nil
}

// List returns every scheduled reminder ordered by identifier.
func (s *ReminderStore) List(ctx context.Context) ([]secondary.Reminder, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT identifier, title, body, weekday, hour, minute FROM reminders ORDER BY identifier")
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var out []secondary.Reminder
	for rows.Next() {
		var r secondary.Reminder
		if err := rows.Scan(&r.Identifier, &r.Title, &r.Body, &r.Weekday, &r.Hour, &r.Minute); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Ensure ReminderStore implements the interface
var _ secondary.Notifier = (*ReminderStore)(nil)
