package secondary

import "context"

// Reminder identifiers.
const (
	ReminderMorningFocus = "morning-focus-notification"
	ReminderWeeklyReview = "weekly-review-notification"
	ReminderMidWeekAlert = "mid-week-alert-notification"
)

// Reminder is a recurring local reminder.
type Reminder struct {
	Identifier string
	Title      string
	Body       string
	// Weekday is -1 for a daily reminder, otherwise 0 (Sunday) through 6.
	Weekday int
	Hour    int
	Minute  int
}

// Notifier schedules and cancels recurring reminders.
// Delivery is the adapter's concern.
type Notifier interface {
	// Schedule creates or replaces the reminder with the same identifier.
	Schedule(ctx context.Context, r Reminder) error

	// Cancel removes a reminder. Cancelling an unknown identifier is not an error.
	Cancel(ctx context.Context, identifier string) error
}
