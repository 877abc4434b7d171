package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/wire"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Scheduled local reminders",
}

var remindersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scheduled reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !wire.Config().Notifications.Enabled {
			fmt.Println("Notifications are disabled in config.yaml")
		}

		reminders, err := wire.Reminders().List(NewContext())
		if err != nil {
			return fmt.Errorf("failed to list reminders: %w", err)
		}
		if len(reminders) == 0 {
			fmt.Println("No reminders scheduled")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWHEN\tTITLE\tBODY")
		fmt.Fprintln(w, "--\t----\t-----\t----")
		for _, r := range reminders {
			day := "daily"
			if r.Weekday >= 0 {
				day = time.Weekday(r.Weekday).String()
			}
			fmt.Fprintf(w, "%s\t%s %02d:%02d\t%s\t%s\n", r.Identifier, day, r.Hour, r.Minute, r.Title, r.Body)
		}
		return w.Flush()
	},
}

var remindersCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Refresh the weekly review and mid-week overdue reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		reminders := wire.ReminderService()

		if err := reminders.ScheduleWeeklyReview(ctx); err != nil {
			return fmt.Errorf("failed to schedule weekly review: %w", err)
		}
		scheduled, err := reminders.CheckMidWeekAlert(ctx)
		if err != nil {
			return fmt.Errorf("failed to check mid-week alert: %w", err)
		}

		fmt.Println("✓ Weekly review reminder scheduled")
		if scheduled {
			fmt.Println("✓ Mid-week alert scheduled for overdue tasks")
		} else {
			fmt.Println("  No mid-week alert needed")
		}
		return nil
	},
}

func init() {
	remindersCmd.AddCommand(remindersListCmd)
	remindersCmd.AddCommand(remindersCheckCmd)
}

// RemindersCmd returns the reminders command
func RemindersCmd() *cobra.Command {
	return remindersCmd
}
