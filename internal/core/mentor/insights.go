// Package mentor derives coaching insights from a progress snapshot.
package mentor

import (
	"fmt"

	"github.com/example/doze/internal/models"
)

// Thresholds for weekly completion and pillar pacing, in percentage points.
const (
	celebrateWeekRate = 80
	lowWeekRate       = 50
	lowWeekMinTasks   = 2
	behindMargin      = 20
	aheadMargin       = 10
)

// Insights classifies the snapshot into urgent issues, suggestions and celebrations.
func Insights(ctx models.MentorContext) models.MentorInsights {
	var out models.MentorInsights

	if ctx.Overdue.Count > 0 {
		out.UrgentIssues = append(out.UrgentIssues,
			fmt.Sprintf("You have %d overdue task(s) that need attention.", ctx.Overdue.Count))
	}

	if ctx.Rituals.AllDone() {
		out.Celebrations = append(out.Celebrations, "All governance rituals for this week are done.")
	} else {
		if !ctx.Rituals.WeeklyReview {
			out.Suggestions = append(out.Suggestions, "The weekly plan review is still pending.")
		}
		if !ctx.Rituals.WeeklyPlanning {
			out.Suggestions = append(out.Suggestions, "Planning for next week is still pending.")
		}
	}

	if ctx.OneThing == "" {
		out.Suggestions = append(out.Suggestions, "Set your One Thing for this week.")
	}

	if w := ctx.CurrentWeekTasks; w.Total > 0 {
		switch {
		case w.CompletionRate >= celebrateWeekRate:
			out.Celebrations = append(out.Celebrations,
				fmt.Sprintf("%d%% of this week's tasks are done.", w.CompletionRate))
		case w.CompletionRate < lowWeekRate && w.Total > lowWeekMinTasks:
			out.Suggestions = append(out.Suggestions,
				fmt.Sprintf("Weekly completion is at %d%%. Review your priorities.", w.CompletionRate))
		}
	}

	for _, p := range ctx.ActivePlans {
		expected := ExpectedProgress(p.CurrentWeek)
		switch {
		case p.ProgressPercent < expected-behindMargin:
			out.UrgentIssues = append(out.UrgentIssues,
				fmt.Sprintf("Pillar %q is %d%% behind schedule.", p.PillarName, expected-p.ProgressPercent))
		case p.ProgressPercent >= expected+aheadMargin:
			out.Celebrations = append(out.Celebrations,
				fmt.Sprintf("Pillar %q is ahead of schedule: %d%% vs %d%% expected.", p.PillarName, p.ProgressPercent, expected))
		}
	}

	return out
}

// ExpectedProgress is the linear share of the plan that should be done by week.
func ExpectedProgress(week int) int {
	return (week*100 + models.PlanWeeks/2) / models.PlanWeeks
}
