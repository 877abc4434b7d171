// Package cli provides CLI commands for the doze application.
package cli

import (
	"context"

	"github.com/example/doze/internal/ctxutil"
)

// actorID identifies this surface in recorded analytics events.
const actorID = "cli"

// NewContext creates a context.Background() with the CLI actor embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() context.Context {
	return ctxutil.WithActorID(context.Background(), actorID)
}
