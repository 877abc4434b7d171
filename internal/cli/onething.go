package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/wire"
)

var oneThingCmd = &cobra.Command{
	Use:   "onething",
	Short: "The single most important focus of the week",
}

var oneThingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show this week's One Thing",
	RunE: func(cmd *cobra.Command, args []string) error {
		ot := wire.OneThingService().GetOneThing(NewContext())
		if ot == nil {
			fmt.Println("No One Thing set")
			return nil
		}

		fmt.Printf("%s\n", ot.Title)
		fmt.Printf("  Week %d (%s → %s)\n", ot.WeekNumber, ot.StartDate, ot.EndDate)
		return nil
	},
}

var oneThingSetCmd = &cobra.Command{
	Use:   "set [title]",
	Short: "Set this week's One Thing and its morning reminder",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ot, err := wire.OneThingService().SaveOneThing(NewContext(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("failed to save One Thing: %w", err)
		}

		fmt.Printf("✓ One Thing for week %d: %s\n", ot.WeekNumber, ot.Title)
		return nil
	},
}

func init() {
	oneThingCmd.AddCommand(oneThingShowCmd)
	oneThingCmd.AddCommand(oneThingSetCmd)
}

// OneThingCmd returns the onething command
func OneThingCmd() *cobra.Command {
	return oneThingCmd
}
