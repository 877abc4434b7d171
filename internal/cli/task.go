package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/wire"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage this week's execution list",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List this week's tasks",
	Long: `List this week's tasks.

Listing also re-checks the Wednesday alert for overdue plan tasks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.TaskAdapter().List(NewContext())
	},
}

var taskAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a manual task to this week",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pillar, _ := cmd.Flags().GetString("pillar")
		due, _ := cmd.Flags().GetString("due")

		task, err := wire.TaskService().AddTask(NewContext(), primary.AddTaskRequest{
			PillarID: pillar,
			Title:    strings.Join(args, " "),
			DueDate:  due,
		})
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Printf("✓ Added task %s: %s\n", task.ID, task.Title)
		return nil
	},
}

var taskToggleCmd = &cobra.Command{
	Use:   "toggle [task-id]",
	Short: "Toggle a task and mirror it into its plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID := args[0]

		tasks, err := wire.SyncService().ToggleTask(NewContext(), taskID)
		if err != nil {
			return fmt.Errorf("failed to toggle task: %w", err)
		}

		for _, t := range tasks {
			if t.ID == taskID {
				state := "pending"
				if t.Completed {
					state = "done"
				}
				fmt.Printf("✓ Task %s marked %s\n", taskID, state)
				return nil
			}
		}
		return fmt.Errorf("task %s not on this week's list", taskID)
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Project every approved plan's current week onto the dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		if err := wire.SyncService().SyncAllPlans(ctx); err != nil {
			return fmt.Errorf("failed to sync plans: %w", err)
		}

		fmt.Printf("✓ Synced plans (%d tasks on the dashboard)\n", len(wire.TaskService().GetTasks(ctx)))
		return nil
	},
}

func init() {
	taskAddCmd.Flags().StringP("pillar", "p", models.PillarBusiness, "Pillar of the task")
	taskAddCmd.Flags().String("due", "", "Due date (ISO-8601)")

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskToggleCmd)
}

// TaskCmd returns the task command
func TaskCmd() *cobra.Command {
	return taskCmd
}

// SyncCmd returns the sync command
func SyncCmd() *cobra.Command {
	return syncCmd
}
