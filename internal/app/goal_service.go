package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// GoalServiceImpl implements the GoalService interface.
type GoalServiceImpl struct {
	goals   goalStore
	pillars *models.PillarRegistry
	opts    options
}

// NewGoalService creates a new GoalService with injected dependencies.
func NewGoalService(kv secondary.KVStore, pillars *models.PillarRegistry, opts ...Option) *GoalServiceImpl {
	o := buildOptions(opts)
	return &GoalServiceImpl{
		goals:   goalStore{docs: documents{kv: kv, logger: o.logger}},
		pillars: pillars,
		opts:    o,
	}
}

// GetGoals returns every stored goal.
func (s *GoalServiceImpl) GetGoals(ctx context.Context) map[string]*models.Goal {
	return s.goals.all(ctx)
}

// GetGoal returns the goal of a pillar, or nil.
func (s *GoalServiceImpl) GetGoal(ctx context.Context, pillarID string) *models.Goal {
	return s.goals.all(ctx)[pillarID]
}

// SaveGoal creates or overwrites the goal of a pillar.
func (s *GoalServiceImpl) SaveGoal(ctx context.Context, req primary.SaveGoalRequest) (*models.Goal, error) {
	if err := s.checkPillar(req.PillarID); err != nil {
		return nil, err
	}

	goals := s.goals.all(ctx)
	ts := calendar.FormatTimestamp(s.opts.now())

	goal := &models.Goal{
		PillarID:  req.PillarID,
		Desire:    strings.TrimSpace(req.Desire),
		OKR:       req.OKR,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if existing := goals[req.PillarID]; existing != nil && existing.CreatedAt != "" {
		goal.CreatedAt = existing.CreatedAt
	}
	goals[req.PillarID] = goal

	if err := s.goals.save(ctx, goals); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	return goal, nil
}

// BulkSaveGoals overwrites several goals with a single write.
func (s *GoalServiceImpl) BulkSaveGoals(ctx context.Context, goals []models.Goal) error {
	for _, g := range goals {
		if err := s.checkPillar(g.PillarID); err != nil {
			return err
		}
	}

	stored := s.goals.all(ctx)
	for i := range goals {
		g := goals[i]
		stored[g.PillarID] = &g
	}

	if err := s.goals.save(ctx, stored); err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	return nil
}

func (s *GoalServiceImpl) checkPillar(pillarID string) error {
	if pillarID == "" {
		return fmt.Errorf("goal requires a pillar: %w", models.ErrUnknownPillar)
	}
	if _, ok := s.pillars.Lookup(pillarID); !ok {
		return fmt.Errorf("pillar %s: %w", pillarID, models.ErrUnknownPillar)
	}
	return nil
}

// Ensure GoalServiceImpl implements the interface
var _ primary.GoalService = (*GoalServiceImpl)(nil)
