package app

import (
	"context"
	"fmt"

	coreplan "github.com/example/doze/internal/core/plan"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// SyncServiceImpl implements the SyncService interface.
type SyncServiceImpl struct {
	plans   planStore
	tasks   primary.TaskService
	pillars *models.PillarRegistry
	events  secondary.EventSink
	opts    options
}

// NewSyncService creates a new SyncService with injected dependencies.
func NewSyncService(
	kv secondary.KVStore,
	tasks primary.TaskService,
	pillars *models.PillarRegistry,
	events secondary.EventSink,
	opts ...Option,
) *SyncServiceImpl {
	o := buildOptions(opts)
	return &SyncServiceImpl{
		plans:   planStore{docs: documents{kv: kv, logger: o.logger}},
		tasks:   tasks,
		pillars: pillars,
		events:  events,
		opts:    o,
	}
}

// SyncPlanToWeeklyTasks replaces the pillar's execution tasks with the plan's current week.
func (s *SyncServiceImpl) SyncPlanToWeeklyTasks(ctx context.Context, pillarID string, plan *models.TwelveWeekPlan) error {
	existing := s.tasks.GetTasks(ctx)
	projected := coreplan.ProjectWeeklyTasks(existing, pillarID, plan, s.opts.now())
	if err := s.tasks.SaveTasks(ctx, projected); err != nil {
		return fmt.Errorf("failed to sync %s: %w", pillarID, err)
	}
	return nil
}

// SyncAllPlans syncs every stored plan in pillar order.
func (s *SyncServiceImpl) SyncAllPlans(ctx context.Context) error {
	plans := s.plans.all(ctx)
	for _, pillarID := range models.OrderedIDs(s.pillars, plans) {
		p := plans[pillarID]
		if p == nil {
			continue
		}
		if err := s.SyncPlanToWeeklyTasks(ctx, pillarID, p); err != nil {
			return err
		}
	}
	return nil
}

// UpdatePlanTaskStatus sets the completion of the first plan task with taskID.
// Failures are logged and never returned.
func (s *SyncServiceImpl) UpdatePlanTaskStatus(ctx context.Context, taskID string, completed bool) {
	plans := s.plans.all(ctx)
	for _, pillarID := range models.OrderedIDs(s.pillars, plans) {
		p := plans[pillarID]
		if p == nil || !coreplan.SetTaskStatus(p, taskID, completed) {
			continue
		}
		if err := s.plans.put(ctx, plans, p); err != nil {
			s.opts.logger.WarnContext(ctx, "plan task status not saved",
				"pillar", pillarID, "task", taskID, "error", err)
		}
		return
	}
}

// ToggleTask flips a task on the execution list and mirrors the new value into its plan.
func (s *SyncServiceImpl) ToggleTask(ctx context.Context, taskID string) ([]models.WeeklyTask, error) {
	tasks, err := s.tasks.ToggleCompletion(ctx, taskID)
	if err != nil {
		return nil, err
	}

	for _, t := range tasks {
		if t.ID != taskID {
			continue
		}
		s.UpdatePlanTaskStatus(ctx, taskID, t.Completed)
		track(ctx, s.events, s.opts.logger, secondary.EventTaskToggled, map[string]any{
			"pillar":    t.PillarID,
			"completed": t.Completed,
		})
		break
	}
	return tasks, nil
}

// Ensure SyncServiceImpl implements the interface
var _ primary.SyncService = (*SyncServiceImpl)(nil)
