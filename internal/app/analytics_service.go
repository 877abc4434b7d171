package app

import (
	"context"
	"fmt"

	coreplan "github.com/example/doze/internal/core/plan"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// AnalyticsServiceImpl implements the AnalyticsService interface.
type AnalyticsServiceImpl struct {
	plans   planStore
	pillars *models.PillarRegistry
	opts    options
}

// NewAnalyticsService creates a new AnalyticsService with injected dependencies.
func NewAnalyticsService(
	kv secondary.KVStore,
	pillars *models.PillarRegistry,
	opts ...Option,
) *AnalyticsServiceImpl {
	o := buildOptions(opts)
	return &AnalyticsServiceImpl{
		plans:   planStore{docs: documents{kv: kv, logger: o.logger}},
		pillars: pillars,
		opts:    o,
	}
}

// GetAnalytics computes execution metrics over active plans.
func (s *AnalyticsServiceImpl) GetAnalytics(ctx context.Context) models.Analytics {
	a := coreplan.BuildAnalytics(s.active(ctx), s.opts.now())
	for i := range a.Pillars {
		a.Pillars[i].PillarName = s.pillars.Name(a.Pillars[i].PillarID)
	}
	return a
}

// GetWeeklyReview scores the current week and lists next week's tasks.
func (s *AnalyticsServiceImpl) GetWeeklyReview(ctx context.Context) models.WeeklyReview {
	r := coreplan.Review(s.active(ctx), s.opts.now())
	for i := range r.NextWeek {
		r.NextWeek[i].PillarName = s.pillars.Name(r.NextWeek[i].PillarID)
	}
	return r
}

// GetWeekStatuses returns the week statuses of a pillar's plan, approved or not.
func (s *AnalyticsServiceImpl) GetWeekStatuses(ctx context.Context, pillarID string) ([]models.WeekStatus, error) {
	p := s.plans.all(ctx)[pillarID]
	if p == nil {
		return nil, fmt.Errorf("pillar %s: %w", pillarID, models.ErrPlanNotFound)
	}
	return coreplan.WeekStatuses(p, s.opts.now()), nil
}

func (s *AnalyticsServiceImpl) active(ctx context.Context) []*models.TwelveWeekPlan {
	plans := s.plans.all(ctx)
	return coreplan.ActivePlans(models.OrderedIDs(s.pillars, plans), plans)
}

// Ensure AnalyticsServiceImpl implements the interface
var _ primary.AnalyticsService = (*AnalyticsServiceImpl)(nil)
