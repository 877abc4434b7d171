package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/wire"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage pillar goals (desire and OKR)",
}

var goalSetCmd = &cobra.Command{
	Use:   "set [pillar]",
	Short: "Set the desire and OKR of a pillar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desire, _ := cmd.Flags().GetString("desire")

		req := primary.SaveGoalRequest{PillarID: args[0], Desire: desire}
		if cmd.Flags().Changed("okr") {
			okr, _ := cmd.Flags().GetString("okr")
			req.OKR = &okr
		}

		goal, err := wire.GoalService().SaveGoal(NewContext(), req)
		if err != nil {
			return fmt.Errorf("failed to save goal: %w", err)
		}

		fmt.Printf("✓ Goal saved for %s\n", wire.Pillars().Name(goal.PillarID))
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pillar goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		goals := wire.GoalService().GetGoals(NewContext())
		if len(goals) == 0 {
			fmt.Println("No goals found")
			return nil
		}

		pillars := wire.Pillars()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PILLAR\tDESIRE\tOKR")
		fmt.Fprintln(w, "------\t------\t---")
		for _, p := range pillars.All() {
			g, ok := goals[p.ID]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, g.Desire, firstLine(g.OKRText()))
		}
		return w.Flush()
	},
}

func init() {
	goalSetCmd.Flags().String("desire", "", "What you want for this pillar")
	goalSetCmd.Flags().String("okr", "", "Objective and key results, one per line")

	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalListCmd)
}

// GoalCmd returns the goal command
func GoalCmd() *cobra.Command {
	return goalCmd
}
