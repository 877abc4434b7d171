package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/doze/internal/ctxutil"
	"github.com/example/doze/internal/ports/secondary"
)

// EventRecord is a stored analytics event.
type EventRecord struct {
	ID         int64
	Name       string
	Actor      string
	Properties map[string]any
	CreatedAt  time.Time
}

// EventSink implements secondary.EventSink over the analytics_events table.
// The actor is taken from the context.
type EventSink struct {
	db *sql.DB
}

// NewEventSink creates a new SQLite event sink.
func NewEventSink(db *sql.DB) *EventSink {
	return &EventSink{db: db}
}

// Track records an event.
func (s *EventSink) Track(ctx context.Context, name string, props map[string]any) error {
	if props == nil {
		props = map[string]any{}
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("failed to encode %s properties: %w", name, err)
	}

	var actor sql.NullString
	if id := ctxutil.ActorFromContext(ctx); id != "" {
		actor = sql.NullString{String: id, Valid: true}
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO analytics_events (name, actor, properties) VALUES (?, ?, ?)",
		name, actor, string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to record %s: %w", name, err)
	}
	return nil
}

// Recent returns the newest events first, at most limit of them.
func (s *EventSink) Recent(ctx context.Context, limit int) ([]*EventRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, actor, properties, created_at FROM analytics_events ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var out []*EventRecord
	for rows.Next() {
		var (
			rec   EventRecord
			actor sql.NullString
			props string
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &actor, &props, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		rec.Actor = actor.String
		if err := json.Unmarshal([]byte(props), &rec.Properties); err != nil {
			return nil, fmt.Errorf("event %d has invalid properties: %w", rec.ID, err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Ensure EventSink implements the interface
var _ secondary.EventSink = (*EventSink)(nil)
