package primary

import (
	"context"

	"github.com/example/doze/internal/models"
)

// OneThingService manages the weekly One Thing.
type OneThingService interface {
	// GetOneThing returns the stored One Thing, or nil.
	GetOneThing(ctx context.Context) *models.OneThing

	// SaveOneThing stores a One Thing for the current calendar week.
	SaveOneThing(ctx context.Context, title string) (*models.OneThing, error)
}
