// Package primary defines the primary ports (driving adapters) of the application.
// The CLI and any other front end talk to the engine only through these interfaces.
package primary

import (
	"context"

	"github.com/example/doze/internal/models"
)

// GoalService defines the primary port for pillar goals.
type GoalService interface {
	// GetGoals returns every stored goal keyed by pillar. Read failures yield an empty map.
	GetGoals(ctx context.Context) map[string]*models.Goal

	// GetGoal returns the goal of a pillar, or nil.
	GetGoal(ctx context.Context, pillarID string) *models.Goal

	// SaveGoal creates or overwrites the goal of a pillar.
	SaveGoal(ctx context.Context, req SaveGoalRequest) (*models.Goal, error)

	// BulkSaveGoals overwrites several goals with a single write.
	BulkSaveGoals(ctx context.Context, goals []models.Goal) error
}

// SaveGoalRequest contains parameters for saving a goal.
type SaveGoalRequest struct {
	PillarID string
	Desire   string
	OKR      *string // nil leaves the goal without an OKR
}
