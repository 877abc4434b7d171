package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
)

// OverdueAdapter translates CLI operations to OverdueService calls.
type OverdueAdapter struct {
	service primary.OverdueService
	pillars *models.PillarRegistry
	out     io.Writer
}

// NewOverdueAdapter creates a new OverdueAdapter with the given service.
func NewOverdueAdapter(service primary.OverdueService, pillars *models.PillarRegistry, out io.Writer) *OverdueAdapter {
	return &OverdueAdapter{
		service: service,
		pillars: pillars,
		out:     out,
	}
}

// List prints every overdue task.
func (a *OverdueAdapter) List(ctx context.Context) error {
	tasks := a.service.GetOverdueTasks(ctx)
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "✓ No overdue tasks")
		return nil
	}

	fmt.Fprintf(a.out, "\n%s\n", color.New(color.FgRed).Sprintf("%d overdue", len(tasks)))
	fmt.Fprintf(a.out, "%-12s %-5s %-28s %s\n", "PILLAR", "WEEK", "ID", "TITLE")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, o := range tasks {
		fmt.Fprintf(a.out, "%-12s %-5d %-28s %s\n", o.PillarID, o.WeekNumber, o.Task.ID, o.Task.Title)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Move moves one overdue task into the current week.
func (a *OverdueAdapter) Move(ctx context.Context, ref primary.OverdueTaskRef) error {
	moved, err := a.service.MoveToCurrentWeek(ctx, ref)
	if err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Moved %q to this week as %s\n", moved.Title, moved.ID)
	return nil
}

// Complete marks an overdue task done in its original week.
func (a *OverdueAdapter) Complete(ctx context.Context, ref primary.OverdueTaskRef) error {
	if err := a.service.CompleteOverdue(ctx, ref); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Task %s completed in week %d\n", ref.TaskID, ref.WeekNumber)
	return nil
}

// Discard removes an overdue task from its plan.
func (a *OverdueAdapter) Discard(ctx context.Context, ref primary.OverdueTaskRef) error {
	if err := a.service.DiscardOverdue(ctx, ref); err != nil {
		return fmt.Errorf("failed to discard task: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Task %s discarded from %s\n", ref.TaskID, a.pillars.Name(ref.PillarID))
	return nil
}

// MoveAll moves every overdue task into the current week.
func (a *OverdueAdapter) MoveAll(ctx context.Context) error {
	moved, err := a.service.MoveAllOverdue(ctx)
	if err != nil {
		return fmt.Errorf("moved %d tasks before failing: %w", moved, err)
	}

	if moved == 0 {
		fmt.Fprintln(a.out, "✓ No overdue tasks")
		return nil
	}
	fmt.Fprintf(a.out, "✓ Moved %d overdue tasks to this week\n", moved)
	return nil
}
