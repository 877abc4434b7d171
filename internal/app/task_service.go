package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/doze/internal/core/calendar"
	coretask "github.com/example/doze/internal/core/task"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	tasks   taskStore
	pillars *models.PillarRegistry
	opts    options
}

// NewTaskService creates a new TaskService with injected dependencies.
func NewTaskService(kv secondary.KVStore, pillars *models.PillarRegistry, opts ...Option) *TaskServiceImpl {
	o := buildOptions(opts)
	return &TaskServiceImpl{
		tasks:   taskStore{docs: documents{kv: kv, logger: o.logger}},
		pillars: pillars,
		opts:    o,
	}
}

// GetTasks returns the execution list.
func (s *TaskServiceImpl) GetTasks(ctx context.Context) []models.WeeklyTask {
	return s.tasks.all(ctx)
}

// SaveTasks replaces the execution list.
func (s *TaskServiceImpl) SaveTasks(ctx context.Context, tasks []models.WeeklyTask) error {
	if err := s.tasks.save(ctx, tasks); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// AddTask appends a manual task.
func (s *TaskServiceImpl) AddTask(ctx context.Context, req primary.AddTaskRequest) (*models.WeeklyTask, error) {
	_, known := s.pillars.Lookup(req.PillarID)
	guard := coretask.CanAddTask(coretask.AddTaskContext{
		PillarID:    req.PillarID,
		PillarKnown: known,
		Title:       req.Title,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.Title)

	task := models.WeeklyTask{
		ID:        models.ManualTaskIDPrefix + s.opts.newID(),
		PillarID:  req.PillarID,
		Title:     title,
		DueDate:   req.DueDate,
		CreatedAt: calendar.FormatTimestamp(s.opts.now()),
	}

	tasks := append(s.tasks.all(ctx), task)
	if err := s.tasks.save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}
	return &task, nil
}

// BulkAddTasks appends several tasks with a single write.
func (s *TaskServiceImpl) BulkAddTasks(ctx context.Context, tasks []models.WeeklyTask) error {
	if len(tasks) == 0 {
		return nil
	}
	combined := append(s.tasks.all(ctx), tasks...)
	if err := s.tasks.save(ctx, combined); err != nil {
		return fmt.Errorf("failed to add tasks: %w", err)
	}
	return nil
}

// ToggleCompletion flips the completion of taskID.
func (s *TaskServiceImpl) ToggleCompletion(ctx context.Context, taskID string) ([]models.WeeklyTask, error) {
	tasks := s.tasks.all(ctx)
	coretask.ToggleCompletion(tasks, taskID)
	if err := s.tasks.save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to toggle task: %w", err)
	}
	return tasks, nil
}

// Ensure TaskServiceImpl implements the interface
var _ primary.TaskService = (*TaskServiceImpl)(nil)
