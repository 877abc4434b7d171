package primary

import (
	"context"

	"github.com/example/doze/internal/models"
)

// SyncService keeps plan tasks and the execution list consistent.
type SyncService interface {
	// SyncPlanToWeeklyTasks projects the current week of plan into the execution list.
	SyncPlanToWeeklyTasks(ctx context.Context, pillarID string, plan *models.TwelveWeekPlan) error

	// SyncAllPlans syncs every stored plan.
	SyncAllPlans(ctx context.Context) error

	// UpdatePlanTaskStatus copies a completion flag back into the owning plan.
	// Tasks that belong to no plan are ignored.
	UpdatePlanTaskStatus(ctx context.Context, taskID string, completed bool)

	// ToggleTask flips a task on the execution list and mirrors it into its plan.
	ToggleTask(ctx context.Context, taskID string) ([]models.WeeklyTask, error)
}
