package primary

import (
	"context"

	"github.com/example/doze/internal/models"
)

// MentorService aggregates progress for the mentor.
type MentorService interface {
	// GetMentorContext builds a snapshot without mutating any store
	// beyond the ritual week reset.
	GetMentorContext(ctx context.Context) models.MentorContext

	// GetMentorInsights classifies the current snapshot.
	GetMentorInsights(ctx context.Context) models.MentorInsights
}
