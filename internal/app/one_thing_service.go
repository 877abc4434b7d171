package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// OneThingServiceImpl implements the OneThingService interface.
type OneThingServiceImpl struct {
	docs      documents
	reminders primary.ReminderService
	opts      options
}

// NewOneThingService creates a new OneThingService with injected dependencies.
func NewOneThingService(kv secondary.KVStore, reminders primary.ReminderService, opts ...Option) *OneThingServiceImpl {
	o := buildOptions(opts)
	return &OneThingServiceImpl{
		docs:      documents{kv: kv, logger: o.logger},
		reminders: reminders,
		opts:      o,
	}
}

// GetOneThing returns the stored One Thing, or nil.
func (s *OneThingServiceImpl) GetOneThing(ctx context.Context) *models.OneThing {
	var one models.OneThing
	if !s.docs.read(ctx, secondary.KeyOneThing, &one) {
		return nil
	}
	return &one
}

// SaveOneThing stores a One Thing for the current calendar week and points the
// morning reminder at it.
func (s *OneThingServiceImpl) SaveOneThing(ctx context.Context, title string) (*models.OneThing, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("one thing title is required")
	}

	now := s.opts.now()
	week := calendar.CurrentWeekInfo(now)
	one := &models.OneThing{
		ID:         "onething-" + s.opts.newID(),
		Title:      title,
		WeekNumber: week.WeekNumber,
		StartDate:  calendar.FormatTimestamp(week.Start),
		EndDate:    calendar.FormatTimestamp(week.End),
		CreatedAt:  calendar.FormatTimestamp(now),
	}

	if err := s.docs.write(ctx, secondary.KeyOneThing, one); err != nil {
		return nil, fmt.Errorf("failed to save one thing: %w", err)
	}

	if s.reminders != nil {
		if err := s.reminders.ScheduleMorningFocus(ctx, title); err != nil {
			s.opts.logger.WarnContext(ctx, "morning focus reminder not updated", "error", err)
		}
	}
	return one, nil
}

// Ensure OneThingServiceImpl implements the interface
var _ primary.OneThingService = (*OneThingServiceImpl)(nil)
