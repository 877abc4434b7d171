package primary

import (
	"context"

	"github.com/example/doze/internal/models"
)

// RitualService tracks the weekly governance checklist.
type RitualService interface {
	// GetRituals returns this week's state, resetting a stale state first.
	GetRituals(ctx context.Context) models.GovernanceRitualState

	// ToggleRitual flips a ritual and returns the new state.
	ToggleRitual(ctx context.Context, name models.Ritual) (models.GovernanceRitualState, error)
}
