package ctxutil

import (
	"context"
	"testing"
)

func TestActorFromContext(t *testing.T) {
	if got := ActorFromContext(context.Background()); got != "" {
		t.Errorf("empty context actor = %q", got)
	}

	ctx := WithActorID(context.Background(), "cli")
	if got := ActorFromContext(ctx); got != "cli" {
		t.Errorf("actor = %q, want cli", got)
	}

	ctx = context.WithValue(context.Background(), ActorKey{}, 42)
	if got := ActorFromContext(ctx); got != "" {
		t.Errorf("non-string actor = %q, want empty", got)
	}
}
