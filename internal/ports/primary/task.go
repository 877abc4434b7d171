package primary

import (
	"context"

	"github.com/example/doze/internal/models"
)

// TaskService defines the primary port for the weekly execution list.
type TaskService interface {
	// GetTasks returns the execution list. Read failures yield an empty list.
	GetTasks(ctx context.Context) []models.WeeklyTask

	// SaveTasks replaces the execution list.
	SaveTasks(ctx context.Context, tasks []models.WeeklyTask) error

	// AddTask appends a manual task that belongs to no plan.
	AddTask(ctx context.Context, req AddTaskRequest) (*models.WeeklyTask, error)

	// BulkAddTasks appends several tasks with a single write.
	BulkAddTasks(ctx context.Context, tasks []models.WeeklyTask) error

	// ToggleCompletion flips the completion of a task and returns the new list.
	// An unknown id leaves the list unchanged.
	ToggleCompletion(ctx context.Context, taskID string) ([]models.WeeklyTask, error)
}

// AddTaskRequest contains parameters for adding a manual task.
type AddTaskRequest struct {
	PillarID string
	Title    string
	DueDate  string
}
