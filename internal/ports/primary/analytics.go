package primary

import (
	"context"

	"github.com/example/doze/internal/models"
)

// AnalyticsService derives execution metrics from approved plans that have weeks.
type AnalyticsService interface {
	// GetAnalytics computes the weekly score, burn-up, pillar ranking,
	// weekly history and high-performance streak.
	GetAnalytics(ctx context.Context) models.Analytics

	// GetWeeklyReview scores the current week and previews the next one.
	GetWeeklyReview(ctx context.Context) models.WeeklyReview

	// GetWeekStatuses returns the status of weeks 1 to 12 of a pillar's plan.
	GetWeekStatuses(ctx context.Context, pillarID string) ([]models.WeekStatus, error)
}
