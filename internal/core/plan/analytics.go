package plan

import (
	"cmp"
	"slices"
	"time"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
)

// highPerformance is the weekly percentage that counts toward a streak.
const highPerformance = 80

// ActivePlans returns the approved plans that have weeks, in order.
func ActivePlans(order []string, plans map[string]*models.TwelveWeekPlan) []*models.TwelveWeekPlan {
	out := []*models.TwelveWeekPlan{}
	for _, pillarID := range order {
		p := plans[pillarID]
		if p == nil || !p.Approved() || len(p.Weeks) == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SharedCurrentWeek is the current week of the earliest-starting plan.
// Plans without a parseable start date are ignored; with none left it is week 1.
func SharedCurrentWeek(plans []*models.TwelveWeekPlan, now time.Time) int {
	var earliest time.Time
	found := false
	for _, p := range plans {
		start, ok := calendar.ParseTimestamp(p.StartDate)
		if !ok {
			continue
		}
		if !found || start.Before(earliest) {
			earliest, found = start, true
		}
	}
	if !found {
		return 1
	}
	return calendar.CurrentWeekNumber(calendar.FormatTimestamp(earliest), now)
}

// ScoreWeek totals week n across plans.
func ScoreWeek(plans []*models.TwelveWeekPlan, n int) models.WeekScore {
	s := models.WeekScore{WeekNumber: n}
	for _, p := range plans {
		w := p.Week(n)
		if w == nil {
			continue
		}
		s.Total += len(w.Tasks)
		s.Completed += completedCount(w.Tasks)
	}
	s.Percent = Percent(s.Completed, s.Total)
	return s
}

// LabelScore grades a weekly percentage.
func LabelScore(percent int) models.ScoreLabel {
	switch {
	case percent >= highPerformance:
		return models.ScoreUnstoppable
	case percent >= 60:
		return models.ScoreOnTrack
	case percent >= 40:
		return models.ScoreNeedsFocus
	default:
		return models.ScoreUrgent
	}
}

// BurnUp returns cumulative planned and completed task counts for weeks 1 to 12.
// Completed counts stop at the current week.
func BurnUp(plans []*models.TwelveWeekPlan, current int) []models.BurnUpPoint {
	points := make([]models.BurnUpPoint, 0, models.PlanWeeks)
	planned, completed := 0, 0
	for n := 1; n <= models.PlanWeeks; n++ {
		s := ScoreWeek(plans, n)
		planned += s.Total
		pt := models.BurnUpPoint{WeekNumber: n, Planned: planned}
		if n <= current {
			completed += s.Completed
			pt.Completed = completed
		}
		points = append(points, pt)
	}
	return points
}

// History scores weeks 1 to 12.
func History(plans []*models.TwelveWeekPlan) []models.WeekScore {
	history := make([]models.WeekScore, 0, models.PlanWeeks)
	for n := 1; n <= models.PlanWeeks; n++ {
		history = append(history, ScoreWeek(plans, n))
	}
	return history
}

// HighPerformanceStreak counts consecutive weeks at 80% or more, walking back
// from the current week. A week without tasks ends the streak.
func HighPerformanceStreak(history []models.WeekScore, current int) int {
	streak := 0
	for n := min(current, len(history)); n >= 1; n-- {
		s := history[n-1]
		if s.Total == 0 || s.Percent < highPerformance {
			break
		}
		streak++
	}
	return streak
}

// PillarPerformances scores each plan over all of its weeks, best first.
// Ties keep plan order. PillarName is left for the caller.
func PillarPerformances(plans []*models.TwelveWeekPlan) []models.PillarPerformance {
	out := make([]models.PillarPerformance, 0, len(plans))
	for _, p := range plans {
		total, completed := p.TotalTasks(), p.CompletedTasks()
		out = append(out, models.PillarPerformance{
			PillarID:  p.PillarID,
			Completed: completed,
			Total:     total,
			Percent:   Percent(completed, total),
		})
	}
	slices.SortStableFunc(out, func(a, b models.PillarPerformance) int {
		return cmp.Compare(b.Percent, a.Percent)
	})
	return out
}

// BuildAnalytics computes every execution metric over active plans.
func BuildAnalytics(plans []*models.TwelveWeekPlan, now time.Time) models.Analytics {
	current := SharedCurrentWeek(plans, now)
	score := ScoreWeek(plans, current)
	history := History(plans)

	total, completed := 0, 0
	for _, p := range plans {
		total += p.TotalTasks()
		completed += p.CompletedTasks()
	}

	return models.Analytics{
		CurrentWeek: current,
		Score:       score,
		Label:       LabelScore(score.Percent),
		BurnUp:      BurnUp(plans, current),
		Pillars:     PillarPerformances(plans),
		Overall:     Percent(completed, total),
		History:     history,
		Streak:      HighPerformanceStreak(history, current),
	}
}

// NextWeekTasks lists, per plan, the tasks planned for the week after current.
// Plans with nothing planned for that week are left out.
func NextWeekTasks(plans []*models.TwelveWeekPlan, current int) []models.PillarWeekTasks {
	out := []models.PillarWeekTasks{}
	for _, p := range plans {
		w := p.Week(current + 1)
		if w == nil || len(w.Tasks) == 0 {
			continue
		}
		out = append(out, models.PillarWeekTasks{
			PillarID: p.PillarID,
			Tasks:    slices.Clone(w.Tasks),
		})
	}
	return out
}

// Review builds the weekly review over active plans.
func Review(plans []*models.TwelveWeekPlan, now time.Time) models.WeeklyReview {
	current := SharedCurrentWeek(plans, now)
	score := ScoreWeek(plans, current)
	return models.WeeklyReview{
		CurrentWeek: current,
		Score:       score,
		Label:       LabelScore(score.Percent),
		NextWeek:    NextWeekTasks(plans, current),
	}
}

// WeekStatuses returns the status of weeks 1 to 12 of p as of now.
// A past week is completed when every task is done or it has no tasks.
func WeekStatuses(p *models.TwelveWeekPlan, now time.Time) []models.WeekStatus {
	current := calendar.CurrentWeekNumber(p.StartDate, now)
	statuses := make([]models.WeekStatus, 0, models.PlanWeeks)
	for n := 1; n <= models.PlanWeeks; n++ {
		switch {
		case n > current:
			statuses = append(statuses, models.WeekUpcoming)
		case n == current:
			statuses = append(statuses, models.WeekCurrent)
		default:
			status := models.WeekCompleted
			if w := p.Week(n); w != nil && completedCount(w.Tasks) < len(w.Tasks) {
				status = models.WeekDelayed
			}
			statuses = append(statuses, status)
		}
	}
	return statuses
}

func completedCount(tasks []models.WeeklyTask) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}
