package app

import (
	"context"
	"fmt"

	"github.com/example/doze/internal/core/calendar"
	coreplan "github.com/example/doze/internal/core/plan"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// OverdueServiceImpl implements the OverdueService interface.
type OverdueServiceImpl struct {
	plans   planStore
	sync    primary.SyncService
	pillars *models.PillarRegistry
	events  secondary.EventSink
	opts    options
}

// NewOverdueService creates a new OverdueService with injected dependencies.
func NewOverdueService(
	kv secondary.KVStore,
	sync primary.SyncService,
	pillars *models.PillarRegistry,
	events secondary.EventSink,
	opts ...Option,
) *OverdueServiceImpl {
	o := buildOptions(opts)
	return &OverdueServiceImpl{
		plans:   planStore{docs: documents{kv: kv, logger: o.logger}},
		sync:    sync,
		pillars: pillars,
		events:  events,
		opts:    o,
	}
}

// GetOverdueTasks lists overdue tasks of every approved plan.
func (s *OverdueServiceImpl) GetOverdueTasks(ctx context.Context) []models.OverdueTask {
	plans := s.plans.all(ctx)
	return coreplan.FindOverdue(models.OrderedIDs(s.pillars, plans), plans, s.opts.now())
}

// MoveToCurrentWeek moves an overdue task into the plan's current week.
func (s *OverdueServiceImpl) MoveToCurrentWeek(ctx context.Context, ref primary.OverdueTaskRef) (*models.WeeklyTask, error) {
	plans, p, err := s.plan(ctx, ref.PillarID)
	if err != nil {
		return nil, err
	}

	current := calendar.CurrentWeekNumber(p.StartDate, s.opts.now())
	moved, err := coreplan.MoveTask(p, ref.TaskID, ref.WeekNumber, current,
		coreplan.MovedTaskID(ref.PillarID, current, s.opts.newID()))
	if err != nil {
		return nil, fmt.Errorf("failed to move task: %w", err)
	}

	if err := s.saveAndSync(ctx, plans, p); err != nil {
		return nil, err
	}

	track(ctx, s.events, s.opts.logger, secondary.EventOverdueMoved, map[string]any{
		"pillar": ref.PillarID,
		"count":  1,
	})
	return &moved, nil
}

// CompleteOverdue marks an overdue task complete in its original week.
func (s *OverdueServiceImpl) CompleteOverdue(ctx context.Context, ref primary.OverdueTaskRef) error {
	plans, p, err := s.plan(ctx, ref.PillarID)
	if err != nil {
		return err
	}
	if err := coreplan.CompleteTask(p, ref.TaskID, ref.WeekNumber); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	if err := s.plans.put(ctx, plans, p); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

// DiscardOverdue removes an overdue task from its plan.
func (s *OverdueServiceImpl) DiscardOverdue(ctx context.Context, ref primary.OverdueTaskRef) error {
	plans, p, err := s.plan(ctx, ref.PillarID)
	if err != nil {
		return err
	}
	if err := coreplan.DiscardTask(p, ref.TaskID, ref.WeekNumber); err != nil {
		return fmt.Errorf("failed to discard task: %w", err)
	}
	if err := s.plans.put(ctx, plans, p); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

// MoveAllOverdue moves every overdue task into its plan's current week.
// Each pillar is read, saved and synced once. Tasks that can no longer be
// found are skipped. A failed save stops the batch and returns the count so far.
func (s *OverdueServiceImpl) MoveAllOverdue(ctx context.Context) (int, error) {
	overdue := s.GetOverdueTasks(ctx)

	var order []string
	byPillar := make(map[string][]models.OverdueTask)
	for _, ot := range overdue {
		if _, ok := byPillar[ot.PillarID]; !ok {
			order = append(order, ot.PillarID)
		}
		byPillar[ot.PillarID] = append(byPillar[ot.PillarID], ot)
	}

	moved := 0
	for _, pillarID := range order {
		plans := s.plans.all(ctx)
		p := plans[pillarID]
		if p == nil {
			continue
		}

		current := calendar.CurrentWeekNumber(p.StartDate, s.opts.now())
		coreplan.EnsureWeek(p, current)

		count := 0
		for _, ot := range byPillar[pillarID] {
			newID := coreplan.MovedTaskID(pillarID, current, s.opts.newID())
			if _, err := coreplan.MoveTask(p, ot.Task.ID, ot.WeekNumber, current, newID); err != nil {
				s.opts.logger.WarnContext(ctx, "overdue task skipped",
					"pillar", pillarID, "task", ot.Task.ID, "week", ot.WeekNumber, "error", err)
				continue
			}
			count++
		}

		if err := s.saveAndSync(ctx, plans, p); err != nil {
			return moved, err
		}
		moved += count

		track(ctx, s.events, s.opts.logger, secondary.EventOverdueMoved, map[string]any{
			"pillar": pillarID,
			"count":  count,
		})
	}
	return moved, nil
}

// plan reads the plans document once and returns it with the pillar's plan.
// Callers mutate the plan and write the same map back with put.
func (s *OverdueServiceImpl) plan(ctx context.Context, pillarID string) (map[string]*models.TwelveWeekPlan, *models.TwelveWeekPlan, error) {
	plans := s.plans.all(ctx)
	p := plans[pillarID]
	if p == nil {
		return nil, nil, fmt.Errorf("pillar %s: %w", pillarID, models.ErrPlanNotFound)
	}
	return plans, p, nil
}

func (s *OverdueServiceImpl) saveAndSync(ctx context.Context, plans map[string]*models.TwelveWeekPlan, p *models.TwelveWeekPlan) error {
	if err := s.plans.put(ctx, plans, p); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	if err := s.sync.SyncPlanToWeeklyTasks(ctx, p.PillarID, p); err != nil {
		return fmt.Errorf("plan saved but not synced: %w", err)
	}
	return nil
}

// Ensure OverdueServiceImpl implements the interface
var _ primary.OverdueService = (*OverdueServiceImpl)(nil)
