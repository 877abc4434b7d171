package primary

import "context"

// OnboardingService manages first-run state and bulk imports.
type OnboardingService interface {
	// HasCompletedOnboarding reports whether onboarding finished.
	HasCompletedOnboarding(ctx context.Context) bool

	// SetOnboardingCompleted records the onboarding flag.
	SetOnboardingCompleted(ctx context.Context, completed bool) error

	// SaveGeneratedPlan stores goals, tasks and One Thing produced during onboarding.
	SaveGeneratedPlan(ctx context.Context, data GeneratedPlanData) error

	// ClearAllData removes every stored document.
	ClearAllData(ctx context.Context) error
}

// GeneratedPlanData is the structured result of the onboarding conversation.
type GeneratedPlanData struct {
	Pillars  []GeneratedPillar `json:"pillars"`
	Tasks    []GeneratedTask   `json:"tasks"`
	OneThing string            `json:"oneThing,omitempty"`
}

// GeneratedPillar is a pillar OKR from onboarding.
type GeneratedPillar struct {
	ID  string `json:"id"`
	OKR string `json:"okr"`
}

// GeneratedTask is a starter task from onboarding.
type GeneratedTask struct {
	Title    string `json:"title"`
	PillarID string `json:"pillarId"`
}
