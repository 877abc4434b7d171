package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/wire"
)

var overdueCmd = &cobra.Command{
	Use:   "overdue",
	Short: "Resolve incomplete tasks from past weeks",
	Long: `List and resolve overdue tasks of approved plans.

Task references take the form: [pillar] [week] [task-id], as shown by 'doze overdue list'.`,
}

var overdueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List overdue tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.OverdueAdapter().List(NewContext())
	},
}

var overdueMoveCmd = &cobra.Command{
	Use:   "move [pillar] [week] [task-id]",
	Short: "Move an overdue task into the current week",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseOverdueRef(args)
		if err != nil {
			return err
		}
		return wire.OverdueAdapter().Move(NewContext(), ref)
	},
}

var overdueCompleteCmd = &cobra.Command{
	Use:   "complete [pillar] [week] [task-id]",
	Short: "Mark an overdue task done in its original week",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseOverdueRef(args)
		if err != nil {
			return err
		}
		return wire.OverdueAdapter().Complete(NewContext(), ref)
	},
}

var overdueDiscardCmd = &cobra.Command{
	Use:   "discard [pillar] [week] [task-id]",
	Short: "Remove an overdue task from its plan",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseOverdueRef(args)
		if err != nil {
			return err
		}
		return wire.OverdueAdapter().Discard(NewContext(), ref)
	},
}

var overdueMoveAllCmd = &cobra.Command{
	Use:   "move-all",
	Short: "Move every overdue task into the current week",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.OverdueAdapter().MoveAll(NewContext())
	},
}

func parseOverdueRef(args []string) (primary.OverdueTaskRef, error) {
	week, err := strconv.Atoi(args[1])
	if err != nil || week < 1 {
		return primary.OverdueTaskRef{}, fmt.Errorf("invalid week %q", args[1])
	}
	return primary.OverdueTaskRef{PillarID: args[0], WeekNumber: week, TaskID: args[2]}, nil
}

func init() {
	overdueCmd.AddCommand(overdueListCmd)
	overdueCmd.AddCommand(overdueMoveCmd)
	overdueCmd.AddCommand(overdueCompleteCmd)
	overdueCmd.AddCommand(overdueDiscardCmd)
	overdueCmd.AddCommand(overdueMoveAllCmd)
}

// OverdueCmd returns the overdue command
func OverdueCmd() *cobra.Command {
	return overdueCmd
}
