package plan

import (
	"time"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
)

// ProjectWeeklyTasks computes the weekly-task list that results from syncing
// plan into existing for pillarID.
//
// Tasks of other pillars are kept in their original order. The pillar's own
// entries are replaced by the tasks of the plan's current week, or dropped
// entirely when the plan is unapproved, nil, or has no current-week entry.
// A completion flag already present on an execution copy wins over the plan copy.
func ProjectWeeklyTasks(existing []models.WeeklyTask, pillarID string, p *models.TwelveWeekPlan, now time.Time) []models.WeeklyTask {
	others := make([]models.WeeklyTask, 0, len(existing))
	mine := make(map[string]bool)
	for _, t := range existing {
		if t.PillarID != pillarID {
			others = append(others, t)
			continue
		}
		mine[t.ID] = t.Completed
	}

	if p == nil || !p.Approved() {
		return others
	}

	week := p.Week(calendar.CurrentWeekNumber(p.StartDate, now))
	if week == nil {
		return others
	}

	out := others
	for _, pt := range week.Tasks {
		completed, seen := mine[pt.ID]
		if !seen {
			completed = pt.Completed
		}
		out = append(out, models.WeeklyTask{
			ID:        pt.ID,
			PillarID:  pillarID,
			Title:     pt.Title,
			Completed: completed,
			DueDate:   pt.DueDate,
			CreatedAt: pt.CreatedAt,
		})
	}
	return out
}

// SetTaskStatus sets the completion flag of the first task with taskID in p.
// It reports whether the task was found.
func SetTaskStatus(p *models.TwelveWeekPlan, taskID string, completed bool) bool {
	for wi := range p.Weeks {
		for ti := range p.Weeks[wi].Tasks {
			if p.Weeks[wi].Tasks[ti].ID == taskID {
				p.Weeks[wi].Tasks[ti].Completed = completed
				return true
			}
		}
	}
	return false
}
