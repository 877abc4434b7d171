package plan

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
)

var (
	weekHeader  = regexp.MustCompile(`(?i)(?:semana|week)\s*(\d+)`)
	bulletTrash = regexp.MustCompile(`^[-•*\d.)\s]+`)
)

// GeneratedWeek is one week of task titles extracted from generated text.
type GeneratedWeek struct {
	WeekNumber int
	Tasks      []string
}

// ParseGeneratedPlan extracts week-by-week task titles from free text.
//
// A line mentioning "week N" or "semana N" opens week N; following lines are
// tasks with their bullet or numbering stripped. Weeks outside 1..12 are
// ignored and repeated headers merge into the same week. The result always
// holds weeks 1..12 in order. The second return value is false when no week
// marker with tasks was found, in which case every week is empty.
func ParseGeneratedPlan(text string) ([]GeneratedWeek, bool) {
	byWeek := make(map[int][]string)
	current := 0

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if m := weekHeader.FindStringSubmatch(line); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil || n < 1 || n > models.PlanWeeks {
				current = 0
				continue
			}
			current = n
			continue
		}
		if current == 0 {
			continue
		}
		task := strings.TrimSpace(bulletTrash.ReplaceAllString(line, ""))
		if task == "" || strings.HasPrefix(strings.ToLower(task), "semana") {
			continue
		}
		byWeek[current] = append(byWeek[current], task)
	}

	weeks := make([]GeneratedWeek, 0, models.PlanWeeks)
	for n := 1; n <= models.PlanWeeks; n++ {
		weeks = append(weeks, GeneratedWeek{WeekNumber: n, Tasks: byWeek[n]})
	}
	return weeks, len(byWeek) > 0
}

// BuildPlan assembles an unapproved plan for pillarID from generated weeks.
// The objective is the first OKR line (or the desire); key results are the
// remaining OKR lines.
func BuildPlan(pillarID string, goal *models.Goal, weeks []GeneratedWeek, now time.Time) *models.TwelveWeekPlan {
	ts := calendar.FormatTimestamp(now)

	objective, keyResults := splitOKR(goal)

	p := &models.TwelveWeekPlan{
		PillarID:   pillarID,
		Objective:  objective,
		KeyResults: keyResults,
		Weeks:      make([]models.WeekPlan, 0, len(weeks)),
		StartDate:  ts,
		CreatedAt:  ts,
		IsApproved: models.BoolPtr(false),
	}

	for _, gw := range weeks {
		wp := models.WeekPlan{WeekNumber: gw.WeekNumber, Tasks: make([]models.WeeklyTask, 0, len(gw.Tasks))}
		for i, title := range gw.Tasks {
			wp.Tasks = append(wp.Tasks, models.WeeklyTask{
				ID:        models.SeededTaskID(pillarID, gw.WeekNumber, i),
				PillarID:  pillarID,
				Title:     title,
				CreatedAt: ts,
			})
		}
		p.Weeks = append(p.Weeks, wp)
	}
	calendar.WeekDates(p)
	return p
}

func splitOKR(goal *models.Goal) (string, []string) {
	if goal == nil {
		return "", []string{}
	}
	okr := goal.OKRText()
	if okr == "" {
		return goal.Desire, []string{}
	}
	lines := strings.Split(okr, "\n")
	return lines[0], append([]string{}, lines[1:]...)
}
