package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

const (
	morningFocusHour = 8
	weeklyReviewHour = 18
	midWeekAlertHour = 12
	daily            = -1
	midWeekAlertDay  = time.Wednesday
	weeklyReviewDay  = time.Sunday
)

// ReminderServiceImpl implements the ReminderService interface.
// A nil notifier disables every reminder.
type ReminderServiceImpl struct {
	notifier secondary.Notifier
	overdue  primary.OverdueService
	opts     options
}

// NewReminderService creates a new ReminderService with injected dependencies.
func NewReminderService(notifier secondary.Notifier, overdue primary.OverdueService, opts ...Option) *ReminderServiceImpl {
	return &ReminderServiceImpl{
		notifier: notifier,
		overdue:  overdue,
		opts:     buildOptions(opts),
	}
}

// ScheduleMorningFocus replaces the daily 08:00 reminder.
func (s *ReminderServiceImpl) ScheduleMorningFocus(ctx context.Context, oneThingTitle string) error {
	if s.notifier == nil {
		return nil
	}

	body := "Foque na sua tarefa mais importante do dia!"
	if oneThingTitle != "" {
		body = "Sua Única Coisa hoje é: " + oneThingTitle
	}

	return s.replace(ctx, secondary.Reminder{
		Identifier: secondary.ReminderMorningFocus,
		Title:      "☀️ Foco Matinal",
		Body:       body,
		Weekday:    daily,
		Hour:       morningFocusHour,
	})
}

// ScheduleWeeklyReview installs the Sunday 18:00 reminder.
func (s *ReminderServiceImpl) ScheduleWeeklyReview(ctx context.Context) error {
	if s.notifier == nil {
		return nil
	}
	return s.replace(ctx, secondary.Reminder{
		Identifier: secondary.ReminderWeeklyReview,
		Title:      "🔄 Chamada para Revisão",
		Body:       "Hora da Revisão Semanal 📊. Feche a semana com chave de ouro!",
		Weekday:    int(weeklyReviewDay),
		Hour:       weeklyReviewHour,
	})
}

// CheckMidWeekAlert cancels the Wednesday alert and schedules it again when
// overdue tasks exist and Wednesday noon has not passed yet.
func (s *ReminderServiceImpl) CheckMidWeekAlert(ctx context.Context) (bool, error) {
	if s.notifier == nil {
		return false, nil
	}

	if err := s.notifier.Cancel(ctx, secondary.ReminderMidWeekAlert); err != nil {
		return false, fmt.Errorf("failed to cancel mid-week alert: %w", err)
	}

	count := len(s.overdue.GetOverdueTasks(ctx))
	if count == 0 {
		return false, nil
	}

	now := s.opts.now()
	if !beforeMidWeek(now) {
		return false, nil
	}

	plural := ""
	if count > 1 {
		plural = "s"
	}
	err := s.notifier.Schedule(ctx, secondary.Reminder{
		Identifier: secondary.ReminderMidWeekAlert,
		Title:      "⚠️ Alerta de Pendências",
		Body: fmt.Sprintf("Meio da semana! Você tem %d tarefa%s pendente%s. Vamos acelerar?",
			count, plural, plural),
		Weekday: int(midWeekAlertDay),
		Hour:    midWeekAlertHour,
	})
	if err != nil {
		return false, fmt.Errorf("failed to schedule mid-week alert: %w", err)
	}
	return true, nil
}

func (s *ReminderServiceImpl) replace(ctx context.Context, r secondary.Reminder) error {
	if err := s.notifier.Cancel(ctx, r.Identifier); err != nil {
		return fmt.Errorf("failed to cancel %s: %w", r.Identifier, err)
	}
	if err := s.notifier.Schedule(ctx, r); err != nil {
		return fmt.Errorf("failed to schedule %s: %w", r.Identifier, err)
	}
	return nil
}

// beforeMidWeek reports whether now is earlier than Wednesday noon of its week.
func beforeMidWeek(now time.Time) bool {
	wd := now.Weekday()
	return wd < midWeekAlertDay || (wd == midWeekAlertDay && now.Hour() < midWeekAlertHour)
}

// Ensure ReminderServiceImpl implements the interface
var _ primary.ReminderService = (*ReminderServiceImpl)(nil)
