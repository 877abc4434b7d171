package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/doze/internal/ports/primary"
)

// TaskAdapter translates CLI operations on the execution list to service calls.
type TaskAdapter struct {
	tasks     primary.TaskService
	reminders primary.ReminderService
	logger    *slog.Logger
	out       io.Writer
}

// NewTaskAdapter creates a new TaskAdapter with the given services.
func NewTaskAdapter(tasks primary.TaskService, reminders primary.ReminderService, logger *slog.Logger, out io.Writer) *TaskAdapter {
	return &TaskAdapter{
		tasks:     tasks,
		reminders: reminders,
		logger:    logger,
		out:       out,
	}
}

// List re-checks the mid-week alert and prints the execution list.
// A failed alert check is logged and never blocks the list.
func (a *TaskAdapter) List(ctx context.Context) error {
	scheduled, err := a.reminders.CheckMidWeekAlert(ctx)
	if err != nil {
		a.logger.WarnContext(ctx, "mid-week alert not checked", "error", err)
	}

	tasks := a.tasks.GetTasks(ctx)
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks this week")
	} else {
		done := 0
		w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPILLAR\tTITLE\tDONE")
		fmt.Fprintln(w, "--\t------\t-----\t----")
		for _, t := range tasks {
			mark := ""
			if t.Completed {
				done++
				mark = color.New(color.FgGreen).Sprint("✓")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.PillarID, t.Title, mark)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "\n%d/%d done\n", done, len(tasks))
	}

	if scheduled {
		fmt.Fprintln(a.out, color.New(color.FgYellow).Sprint("Mid-week alert scheduled for overdue tasks"))
	}
	return nil
}
