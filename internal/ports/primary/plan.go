package primary

import (
	"context"

	"github.com/example/doze/internal/models"
)

// PlanService defines the primary port for twelve-week plans.
type PlanService interface {
	// GetPlans returns every stored plan keyed by pillar. Read failures yield an empty map.
	GetPlans(ctx context.Context) map[string]*models.TwelveWeekPlan

	// GetPlan returns the plan of a pillar, or nil.
	GetPlan(ctx context.Context, pillarID string) *models.TwelveWeekPlan

	// SavePlan upserts a plan and verifies the write by reading it back.
	SavePlan(ctx context.Context, plan *models.TwelveWeekPlan) error

	// GeneratePlan builds an unapproved plan from generated text and saves it.
	GeneratePlan(ctx context.Context, req GeneratePlanRequest) (*GeneratePlanResponse, error)

	// ApprovePlan approves a pending plan and projects its current week to the dashboard.
	ApprovePlan(ctx context.Context, pillarID string) (*models.TwelveWeekPlan, error)

	// UpdateTaskTitle renames a task of a plan week.
	UpdateTaskTitle(ctx context.Context, req UpdateTaskTitleRequest) error
}

// GeneratePlanRequest contains parameters for generating a plan.
type GeneratePlanRequest struct {
	PillarID string
	Text     string // free text with "Week N" / "Semana N" headers
}

// GeneratePlanResponse contains the result of generating a plan.
type GeneratePlanResponse struct {
	Plan *models.TwelveWeekPlan
	// Parsed is false when no week markers were found and every week is empty.
	Parsed bool
}

// UpdateTaskTitleRequest identifies a plan task by position.
type UpdateTaskTitleRequest struct {
	PillarID   string
	WeekNumber int
	TaskIndex  int
	Title      string
}
