package app

import (
	"context"
	"fmt"
	"strings"

	coreplan "github.com/example/doze/internal/core/plan"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// PlanServiceImpl implements the PlanService interface.
type PlanServiceImpl struct {
	plans   planStore
	goals   primary.GoalService
	sync    primary.SyncService
	pillars *models.PillarRegistry
	events  secondary.EventSink
	opts    options
}

// NewPlanService creates a new PlanService with injected dependencies.
func NewPlanService(
	kv secondary.KVStore,
	goals primary.GoalService,
	sync primary.SyncService,
	pillars *models.PillarRegistry,
	events secondary.EventSink,
	opts ...Option,
) *PlanServiceImpl {
	o := buildOptions(opts)
	return &PlanServiceImpl{
		plans:   planStore{docs: documents{kv: kv, logger: o.logger}},
		goals:   goals,
		sync:    sync,
		pillars: pillars,
		events:  events,
		opts:    o,
	}
}

// GetPlans returns every stored plan.
func (s *PlanServiceImpl) GetPlans(ctx context.Context) map[string]*models.TwelveWeekPlan {
	return s.plans.all(ctx)
}

// GetPlan returns the plan of a pillar, or nil.
func (s *PlanServiceImpl) GetPlan(ctx context.Context, pillarID string) *models.TwelveWeekPlan {
	return s.plans.all(ctx)[pillarID]
}

// SavePlan upserts a plan.
func (s *PlanServiceImpl) SavePlan(ctx context.Context, plan *models.TwelveWeekPlan) error {
	if err := s.plans.save(ctx, plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

// GeneratePlan builds an unapproved plan from generated text.
func (s *PlanServiceImpl) GeneratePlan(ctx context.Context, req primary.GeneratePlanRequest) (*primary.GeneratePlanResponse, error) {
	_, known := s.pillars.Lookup(req.PillarID)
	goal := s.goals.GetGoal(ctx, req.PillarID)

	goalText := goal.OKRText()
	if goalText == "" && goal != nil {
		goalText = goal.Desire
	}
	guard := coreplan.CanGeneratePlan(coreplan.GeneratePlanContext{
		PillarID:    req.PillarID,
		PillarKnown: known,
		HasGoal:     goal != nil,
		GoalText:    goalText,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	weeks, parsed := coreplan.ParseGeneratedPlan(req.Text)
	if !parsed {
		s.opts.logger.WarnContext(ctx, "generated plan has no week markers, using empty weeks",
			"pillar", req.PillarID)
	}

	p := coreplan.BuildPlan(req.PillarID, goal, weeks, s.opts.now())
	if err := s.SavePlan(ctx, p); err != nil {
		return nil, err
	}

	track(ctx, s.events, s.opts.logger, secondary.EventPlanGenerated, map[string]any{
		"pillar": req.PillarID,
		"tasks":  p.TotalTasks(),
		"parsed": parsed,
	})

	return &primary.GeneratePlanResponse{Plan: p, Parsed: parsed}, nil
}

// ApprovePlan approves a pending plan and syncs its current week.
func (s *PlanServiceImpl) ApprovePlan(ctx context.Context, pillarID string) (*models.TwelveWeekPlan, error) {
	plans := s.plans.all(ctx)
	p := plans[pillarID]

	guard := coreplan.CanApprovePlan(coreplan.ApprovePlanContext{
		PillarID:   pillarID,
		PlanExists: p != nil,
		Approved:   p != nil && p.Approved(),
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	p.IsApproved = models.BoolPtr(true)
	if err := s.plans.put(ctx, plans, p); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}
	if err := s.sync.SyncPlanToWeeklyTasks(ctx, pillarID, p); err != nil {
		return nil, fmt.Errorf("plan approved but not synced: %w", err)
	}

	track(ctx, s.events, s.opts.logger, secondary.EventPlanApproved, map[string]any{
		"pillar": pillarID,
		"tasks":  p.TotalTasks(),
	})
	return p, nil
}

// UpdateTaskTitle renames a task of a plan week and re-syncs approved plans.
func (s *PlanServiceImpl) UpdateTaskTitle(ctx context.Context, req primary.UpdateTaskTitleRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fmt.Errorf("task title is required")
	}

	plans := s.plans.all(ctx)
	p := plans[req.PillarID]
	if p == nil {
		return fmt.Errorf("pillar %s: %w", req.PillarID, models.ErrPlanNotFound)
	}
	week := p.Week(req.WeekNumber)
	if week == nil {
		return fmt.Errorf("week %d of %s: %w", req.WeekNumber, req.PillarID, models.ErrWeekNotFound)
	}
	if req.TaskIndex < 0 || req.TaskIndex >= len(week.Tasks) {
		return fmt.Errorf("task #%d in week %d: %w", req.TaskIndex+1, req.WeekNumber, models.ErrTaskNotFound)
	}

	week.Tasks[req.TaskIndex].Title = title
	if err := s.plans.put(ctx, plans, p); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}

	if p.Approved() {
		if err := s.sync.SyncPlanToWeeklyTasks(ctx, req.PillarID, p); err != nil {
			return fmt.Errorf("task renamed but not synced: %w", err)
		}
	}
	return nil
}

// Ensure PlanServiceImpl implements the interface
var _ primary.PlanService = (*PlanServiceImpl)(nil)
