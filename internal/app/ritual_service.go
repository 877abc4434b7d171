package app

import (
	"context"
	"fmt"

	"github.com/example/doze/internal/core/ritual"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// RitualServiceImpl implements the RitualService interface.
type RitualServiceImpl struct {
	docs documents
	opts options
}

// NewRitualService creates a new RitualService with injected dependencies.
func NewRitualService(kv secondary.KVStore, opts ...Option) *RitualServiceImpl {
	o := buildOptions(opts)
	return &RitualServiceImpl{docs: documents{kv: kv, logger: o.logger}, opts: o}
}

// GetRituals returns this week's state. A state left over from another
// calendar week is reset and persisted before it is returned.
func (s *RitualServiceImpl) GetRituals(ctx context.Context) models.GovernanceRitualState {
	now := s.opts.now()

	var stored models.GovernanceRitualState
	if !s.docs.read(ctx, secondary.KeyGovernanceRituals, &stored) {
		return ritual.Fresh(now)
	}

	state, changed := ritual.Refresh(stored, now)
	if changed {
		if err := s.docs.write(ctx, secondary.KeyGovernanceRituals, state); err != nil {
			s.opts.logger.WarnContext(ctx, "ritual reset not saved", "error", err)
		}
	}
	return state
}

// ToggleRitual flips a ritual and persists the new state.
func (s *RitualServiceImpl) ToggleRitual(ctx context.Context, name models.Ritual) (models.GovernanceRitualState, error) {
	state, err := ritual.Toggle(s.GetRituals(ctx), name, s.opts.now())
	if err != nil {
		return models.GovernanceRitualState{}, err
	}
	if err := s.docs.write(ctx, secondary.KeyGovernanceRituals, state); err != nil {
		return models.GovernanceRitualState{}, fmt.Errorf("failed to save rituals: %w", err)
	}
	return state, nil
}

// Ensure RitualServiceImpl implements the interface
var _ primary.RitualService = (*RitualServiceImpl)(nil)
