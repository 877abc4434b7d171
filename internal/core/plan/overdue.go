package plan

import (
	"fmt"
	"sort"
	"time"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
)

// FindOverdue collects incomplete tasks of past weeks from every approved plan.
// Plans are visited in order; weeks ascending; tasks in stored order.
func FindOverdue(order []string, plans map[string]*models.TwelveWeekPlan, now time.Time) []models.OverdueTask {
	var out []models.OverdueTask
	for _, pillarID := range order {
		p := plans[pillarID]
		if p == nil || !p.Approved() {
			continue
		}
		current := calendar.CurrentWeekNumber(p.StartDate, now)

		weeks := append([]models.WeekPlan(nil), p.Weeks...)
		sort.SliceStable(weeks, func(i, j int) bool { return weeks[i].WeekNumber < weeks[j].WeekNumber })

		for _, w := range weeks {
			if w.WeekNumber >= current {
				continue
			}
			for _, t := range w.Tasks {
				if t.Completed {
					continue
				}
				out = append(out, models.OverdueTask{
					Task:          t,
					WeekNumber:    w.WeekNumber,
					PillarID:      pillarID,
					PlanStartDate: p.StartDate,
				})
			}
		}
	}
	return out
}

// HasDelayedWeeks reports whether any past week of p holds an incomplete task.
func HasDelayedWeeks(p *models.TwelveWeekPlan, now time.Time) bool {
	current := calendar.CurrentWeekNumber(p.StartDate, now)
	for _, w := range p.Weeks {
		if w.WeekNumber >= current {
			continue
		}
		for _, t := range w.Tasks {
			if !t.Completed {
				return true
			}
		}
	}
	return false
}

// EnsureWeek returns week n of p, appending an empty week and re-sorting
// p.Weeks ascending when it does not exist yet.
func EnsureWeek(p *models.TwelveWeekPlan, n int) *models.WeekPlan {
	if w := p.Week(n); w != nil {
		return w
	}
	p.Weeks = append(p.Weeks, models.WeekPlan{WeekNumber: n, Tasks: []models.WeeklyTask{}})
	sort.SliceStable(p.Weeks, func(i, j int) bool { return p.Weeks[i].WeekNumber < p.Weeks[j].WeekNumber })
	return p.Week(n)
}

// MovedTaskID is the id given to a task moved into targetWeek.
func MovedTaskID(pillarID string, targetWeek int, unique string) string {
	return fmt.Sprintf("%s-w%d-moved-%s", pillarID, targetWeek, unique)
}

// MoveTask removes taskID from fromWeek and appends it, reset to incomplete
// and under newID, to targetWeek (created if absent).
func MoveTask(p *models.TwelveWeekPlan, taskID string, fromWeek, targetWeek int, newID string) (models.WeeklyTask, error) {
	task, err := removeTask(p, taskID, fromWeek)
	if err != nil {
		return models.WeeklyTask{}, err
	}

	task.ID = newID
	task.Completed = false

	target := EnsureWeek(p, targetWeek)
	target.Tasks = append(target.Tasks, task)
	return task, nil
}

// CompleteTask marks taskID complete inside its original week.
func CompleteTask(p *models.TwelveWeekPlan, taskID string, week int) error {
	w := p.Week(week)
	if w == nil {
		return fmt.Errorf("week %d of %s: %w", week, p.PillarID, models.ErrWeekNotFound)
	}
	for i := range w.Tasks {
		if w.Tasks[i].ID == taskID {
			w.Tasks[i].Completed = true
			return nil
		}
	}
	return fmt.Errorf("task %s in week %d: %w", taskID, week, models.ErrTaskNotFound)
}

// DiscardTask removes taskID from its week.
func DiscardTask(p *models.TwelveWeekPlan, taskID string, week int) error {
	_, err := removeTask(p, taskID, week)
	return err
}

func removeTask(p *models.TwelveWeekPlan, taskID string, week int) (models.WeeklyTask, error) {
	w := p.Week(week)
	if w == nil {
		return models.WeeklyTask{}, fmt.Errorf("week %d of %s: %w", week, p.PillarID, models.ErrWeekNotFound)
	}
	for i, t := range w.Tasks {
		if t.ID == taskID {
			w.Tasks = append(w.Tasks[:i:i], w.Tasks[i+1:]...)
			return t, nil
		}
	}
	return models.WeeklyTask{}, fmt.Errorf("task %s in week %d: %w", taskID, week, models.ErrTaskNotFound)
}
