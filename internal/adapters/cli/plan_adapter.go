// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/example/doze/internal/core/calendar"
	coreplan "github.com/example/doze/internal/core/plan"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
)

// PlanAdapter translates CLI operations to PlanService calls.
type PlanAdapter struct {
	service primary.PlanService
	pillars *models.PillarRegistry
	out     io.Writer
	now     func() time.Time
}

// NewPlanAdapter creates a new PlanAdapter with the given service.
func NewPlanAdapter(service primary.PlanService, pillars *models.PillarRegistry, out io.Writer, now func() time.Time) *PlanAdapter {
	return &PlanAdapter{
		service: service,
		pillars: pillars,
		out:     out,
		now:     now,
	}
}

// Generate saves a pending plan built from generated text.
func (a *PlanAdapter) Generate(ctx context.Context, pillarID, text string) error {
	resp, err := a.service.GeneratePlan(ctx, primary.GeneratePlanRequest{
		PillarID: pillarID,
		Text:     text,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Generated plan for %s: %d tasks\n", a.pillars.Name(pillarID), resp.Plan.TotalTasks())
	if !resp.Parsed {
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("  No week headers found; the plan starts with 12 empty weeks"))
	}
	fmt.Fprintf(a.out, "  Review it with 'doze plan show %s', then 'doze plan approve %s'\n", pillarID, pillarID)
	return nil
}

// List prints one line per plan.
func (a *PlanAdapter) List(ctx context.Context) error {
	plans := a.service.GetPlans(ctx)
	if len(plans) == 0 {
		fmt.Fprintln(a.out, "No plans found")
		return nil
	}

	now := a.now()
	fmt.Fprintf(a.out, "\n%-12s %-20s %-10s %-6s %s\n", "PILLAR", "NAME", "STATUS", "WEEK", "PROGRESS")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, id := range models.OrderedIDs(a.pillars, plans) {
		p := plans[id]
		progress := coreplan.PlanProgress(p, now)
		fmt.Fprintf(a.out, "%-12s %-20s %-10s %-6d %d/%d (%d%%)\n",
			id, a.pillars.Name(id), planStatus(p), progress.CurrentWeek,
			progress.CompletedTasks, progress.TotalTasks, progress.Percent)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Show prints a plan week by week.
func (a *PlanAdapter) Show(ctx context.Context, pillarID string) (*models.TwelveWeekPlan, error) {
	p := a.service.GetPlan(ctx, pillarID)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", models.ErrPlanNotFound, pillarID)
	}

	current := calendar.CurrentWeekNumber(p.StartDate, a.now())
	fmt.Fprintf(a.out, "\nPlan:      %s (%s)\n", a.pillars.Name(pillarID), planStatus(p))
	if p.Objective != "" {
		fmt.Fprintf(a.out, "Objective: %s\n", p.Objective)
	}
	for _, kr := range p.KeyResults {
		fmt.Fprintf(a.out, "  • %s\n", kr)
	}
	fmt.Fprintf(a.out, "Started:   %s\n", p.StartDate)

	for _, w := range p.Weeks {
		marker := ""
		if w.WeekNumber == current {
			marker = color.New(color.FgHiMagenta).Sprint(" ←")
		}
		fmt.Fprintf(a.out, "\nWeek %d%s\n", w.WeekNumber, marker)
		if len(w.Tasks) == 0 {
			fmt.Fprintln(a.out, "  (no tasks)")
		}
		for i, t := range w.Tasks {
			fmt.Fprintf(a.out, "  %d. %s %s\n", i, checkbox(t.Completed), t.Title)
		}
	}
	fmt.Fprintln(a.out)

	return p, nil
}

// Approve approves a pending plan.
func (a *PlanAdapter) Approve(ctx context.Context, pillarID string) error {
	p, err := a.service.ApprovePlan(ctx, pillarID)
	if err != nil {
		return err
	}

	week := calendar.CurrentWeekNumber(p.StartDate, a.now())
	fmt.Fprintf(a.out, "✓ Plan %s approved; week %d tasks are on the dashboard\n", pillarID, week)
	return nil
}

// RenameTask changes the title of a plan task.
func (a *PlanAdapter) RenameTask(ctx context.Context, pillarID string, week, index int, title string) error {
	err := a.service.UpdateTaskTitle(ctx, primary.UpdateTaskTitleRequest{
		PillarID:   pillarID,
		WeekNumber: week,
		TaskIndex:  index,
		Title:      title,
	})
	if err != nil {
		return fmt.Errorf("failed to rename task: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Week %d task %d of %s renamed\n", week, index, pillarID)
	return nil
}

func planStatus(p *models.TwelveWeekPlan) string {
	if p.Approved() {
		return "approved"
	}
	return "pending"
}

func checkbox(done bool) string {
	if done {
		return color.New(color.FgGreen).Sprint("[x]")
	}
	return "[ ]"
}
