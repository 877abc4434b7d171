package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
)

// AnalyticsAdapter translates CLI operations to AnalyticsService calls.
type AnalyticsAdapter struct {
	service primary.AnalyticsService
	pillars *models.PillarRegistry
	out     io.Writer
}

// NewAnalyticsAdapter creates a new AnalyticsAdapter with the given service.
func NewAnalyticsAdapter(service primary.AnalyticsService, pillars *models.PillarRegistry, out io.Writer) *AnalyticsAdapter {
	return &AnalyticsAdapter{
		service: service,
		pillars: pillars,
		out:     out,
	}
}

// Show prints the weekly score, burn-up and pillar ranking.
func (a *AnalyticsAdapter) Show(ctx context.Context) error {
	an := a.service.GetAnalytics(ctx)
	if len(an.Pillars) == 0 {
		fmt.Fprintln(a.out, "No active plans")
		return nil
	}

	fmt.Fprintf(a.out, "\nWeek %d score: %s (%d/%d) %s\n",
		an.CurrentWeek, scoreColor(an.Score.Percent).Sprintf("%d%%", an.Score.Percent),
		an.Score.Completed, an.Score.Total, an.Label)
	fmt.Fprintf(a.out, "Overall: %d%% · streak: %d week(s) at 80%%+\n", an.Overall, an.Streak)

	fmt.Fprintf(a.out, "\n%-5s %-8s %-8s %s\n", "WEEK", "PLANNED", "DONE", "SCORE")
	fmt.Fprintln(a.out, "────────────────────────────────")
	for i, pt := range an.BurnUp {
		done := "-"
		if pt.WeekNumber <= an.CurrentWeek {
			done = fmt.Sprint(pt.Completed)
		}
		score := ""
		if h := an.History[i]; h.Total > 0 {
			score = fmt.Sprintf("%d%%", h.Percent)
		}
		fmt.Fprintf(a.out, "%-5d %-8d %-8s %s\n", pt.WeekNumber, pt.Planned, done, score)
	}

	fmt.Fprintf(a.out, "\n%-20s %-8s %s\n", "PILLAR", "DONE", "PROGRESS")
	fmt.Fprintln(a.out, "────────────────────────────────")
	for _, p := range an.Pillars {
		fmt.Fprintf(a.out, "%-20s %-8s %s\n",
			p.PillarName, fmt.Sprintf("%d/%d", p.Completed, p.Total),
			scoreColor(p.Percent).Sprintf("%d%%", p.Percent))
	}
	fmt.Fprintln(a.out)
	return nil
}

// Review prints the current week's score and next week's tasks.
func (a *AnalyticsAdapter) Review(ctx context.Context) error {
	r := a.service.GetWeeklyReview(ctx)

	fmt.Fprintf(a.out, "\nWeek %d: %s (%d/%d) %s\n",
		r.CurrentWeek, scoreColor(r.Score.Percent).Sprintf("%d%%", r.Score.Percent),
		r.Score.Completed, r.Score.Total, r.Label)

	if len(r.NextWeek) == 0 {
		fmt.Fprintln(a.out, "Nothing planned for next week")
		return nil
	}
	fmt.Fprintf(a.out, "\nNext week (%d):\n", r.CurrentWeek+1)
	for _, pt := range r.NextWeek {
		fmt.Fprintf(a.out, "  %s\n", pt.PillarName)
		for _, t := range pt.Tasks {
			fmt.Fprintf(a.out, "    • %s\n", t.Title)
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// Weeks prints the status of every week of a pillar's plan.
func (a *AnalyticsAdapter) Weeks(ctx context.Context, pillarID string) error {
	statuses, err := a.service.GetWeekStatuses(ctx, pillarID)
	if err != nil {
		return err
	}

	cells := make([]string, 0, len(statuses))
	for i, s := range statuses {
		cells = append(cells, fmt.Sprintf("%d:%s", i+1, statusColor(s).Sprint(s)))
	}
	fmt.Fprintf(a.out, "%s\n  %s\n", a.pillars.Name(pillarID), strings.Join(cells, " "))
	return nil
}

func scoreColor(percent int) *color.Color {
	switch {
	case percent >= 80:
		return color.New(color.FgGreen)
	case percent >= 40:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func statusColor(s models.WeekStatus) *color.Color {
	switch s {
	case models.WeekCompleted:
		return color.New(color.FgGreen)
	case models.WeekDelayed:
		return color.New(color.FgRed)
	case models.WeekCurrent:
		return color.New(color.FgHiMagenta)
	default:
		return color.New(color.Faint)
	}
}
