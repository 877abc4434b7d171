package primary

import (
	"context"

	"github.com/example/doze/internal/models"
)

// OverdueService resolves incomplete tasks left in past weeks.
type OverdueService interface {
	// GetOverdueTasks lists overdue tasks of every approved plan.
	GetOverdueTasks(ctx context.Context) []models.OverdueTask

	// MoveToCurrentWeek moves an overdue task into the current week under a new id.
	MoveToCurrentWeek(ctx context.Context, ref OverdueTaskRef) (*models.WeeklyTask, error)

	// CompleteOverdue marks an overdue task complete in its original week.
	CompleteOverdue(ctx context.Context, ref OverdueTaskRef) error

	// DiscardOverdue removes an overdue task from its plan.
	DiscardOverdue(ctx context.Context, ref OverdueTaskRef) error

	// MoveAllOverdue moves every overdue task and returns how many moved.
	MoveAllOverdue(ctx context.Context) (int, error)
}

// OverdueTaskRef identifies a task inside a plan week.
type OverdueTaskRef struct {
	PillarID   string
	TaskID     string
	WeekNumber int
}
