package plan

import (
	"math"
	"time"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
)

// Progress summarizes a plan at a moment in time.
type Progress struct {
	CurrentWeek     int
	TotalTasks      int
	CompletedTasks  int
	Percent         int
	HasDelayedWeeks bool
}

// PlanProgress computes the progress of p as of now.
func PlanProgress(p *models.TwelveWeekPlan, now time.Time) Progress {
	total := p.TotalTasks()
	completed := p.CompletedTasks()
	return Progress{
		CurrentWeek:     calendar.CurrentWeekNumber(p.StartDate, now),
		TotalTasks:      total,
		CompletedTasks:  completed,
		Percent:         Percent(completed, total),
		HasDelayedWeeks: HasDelayedWeeks(p, now),
	}
}

// Percent returns part/total as a whole percentage rounded half up, or 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(part)*100/float64(total) + 0.5))
}
