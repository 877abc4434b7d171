package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// OnboardingServiceImpl implements the OnboardingService interface.
type OnboardingServiceImpl struct {
	kv       secondary.KVStore
	goals    primary.GoalService
	tasks    primary.TaskService
	oneThing primary.OneThingService
	opts     options
}

// NewOnboardingService creates a new OnboardingService with injected dependencies.
func NewOnboardingService(
	kv secondary.KVStore,
	goals primary.GoalService,
	tasks primary.TaskService,
	oneThing primary.OneThingService,
	opts ...Option,
) *OnboardingServiceImpl {
	return &OnboardingServiceImpl{
		kv:       kv,
		goals:    goals,
		tasks:    tasks,
		oneThing: oneThing,
		opts:     buildOptions(opts),
	}
}

// HasCompletedOnboarding reports whether the onboarding flag is set.
func (s *OnboardingServiceImpl) HasCompletedOnboarding(ctx context.Context) bool {
	raw, found, err := s.kv.Get(ctx, secondary.KeyOnboardingCompleted)
	if err != nil {
		s.opts.logger.WarnContext(ctx, "onboarding flag read failed", "error", err)
		return false
	}
	return found && raw == "true"
}

// SetOnboardingCompleted records the onboarding flag.
func (s *OnboardingServiceImpl) SetOnboardingCompleted(ctx context.Context, completed bool) error {
	if err := s.kv.Set(ctx, secondary.KeyOnboardingCompleted, strconv.FormatBool(completed)); err != nil {
		return fmt.Errorf("failed to save onboarding flag: %w", err)
	}
	return nil
}

// SaveGeneratedPlan stores the goals, starter tasks and One Thing of an onboarding result.
func (s *OnboardingServiceImpl) SaveGeneratedPlan(ctx context.Context, data primary.GeneratedPlanData) error {
	ts := calendar.FormatTimestamp(s.opts.now())

	goals := make([]models.Goal, 0, len(data.Pillars))
	for _, p := range data.Pillars {
		okr := p.OKR
		goals = append(goals, models.Goal{
			PillarID:  p.ID,
			OKR:       &okr,
			CreatedAt: ts,
			UpdatedAt: ts,
		})
	}
	if err := s.goals.BulkSaveGoals(ctx, goals); err != nil {
		return fmt.Errorf("failed to save onboarding goals: %w", err)
	}

	tasks := make([]models.WeeklyTask, 0, len(data.Tasks))
	for _, t := range data.Tasks {
		tasks = append(tasks, models.WeeklyTask{
			ID:        "onboarding-task-" + s.opts.newID(),
			PillarID:  t.PillarID,
			Title:     t.Title,
			CreatedAt: ts,
		})
	}
	if err := s.tasks.BulkAddTasks(ctx, tasks); err != nil {
		return fmt.Errorf("failed to save onboarding tasks: %w", err)
	}

	if data.OneThing != "" {
		if _, err := s.oneThing.SaveOneThing(ctx, data.OneThing); err != nil {
			return fmt.Errorf("failed to save onboarding one thing: %w", err)
		}
	}
	return nil
}

// ClearAllData removes every document the application owns.
func (s *OnboardingServiceImpl) ClearAllData(ctx context.Context) error {
	if err := s.kv.MultiRemove(ctx, secondary.AllKeys...); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	return nil
}

// Ensure OnboardingServiceImpl implements the interface
var _ primary.OnboardingService = (*OnboardingServiceImpl)(nil)
