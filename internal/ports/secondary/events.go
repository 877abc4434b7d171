package secondary

import "context"

// EventSink receives fire-and-forget analytics events.
type EventSink interface {
	// Track records an event. Callers ignore the error beyond logging it.
	Track(ctx context.Context, name string, props map[string]any) error
}

// Event names.
const (
	EventPlanGenerated = "plan_generated"
	EventPlanApproved  = "plan_approved"
	EventTaskToggled   = "task_toggled"
	EventOverdueMoved  = "overdue_moved"
)
