package primary

import "context"

// ReminderService schedules the recurring reminders of the app.
type ReminderService interface {
	// ScheduleMorningFocus replaces the daily morning reminder with the One Thing title.
	ScheduleMorningFocus(ctx context.Context, oneThingTitle string) error

	// ScheduleWeeklyReview installs the Sunday evening review reminder.
	ScheduleWeeklyReview(ctx context.Context) error

	// CheckMidWeekAlert schedules the Wednesday alert when overdue tasks exist.
	// It reports whether an alert was scheduled.
	CheckMidWeekAlert(ctx context.Context) (bool, error)
}
