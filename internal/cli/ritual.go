package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/wire"
)

var ritualCmd = &cobra.Command{
	Use:   "ritual",
	Short: "Weekly governance checklist",
}

var ritualShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show this week's rituals",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := wire.RitualService().GetRituals(NewContext())

		fmt.Printf("Week %d rituals\n", state.WeekNumber)
		fmt.Printf("  %s %s\n", checkmark(state.WeeklyReview), models.RitualWeeklyReview)
		fmt.Printf("  %s %s\n", checkmark(state.WeeklyPlanning), models.RitualWeeklyPlanning)
		return nil
	},
}

var ritualToggleCmd = &cobra.Command{
	Use:       "toggle [weeklyReview|weeklyPlanning]",
	Short:     "Toggle a ritual",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(models.RitualWeeklyReview), string(models.RitualWeeklyPlanning)},
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := wire.RitualService().ToggleRitual(NewContext(), models.Ritual(args[0]))
		if err != nil {
			return fmt.Errorf("failed to toggle ritual: %w", err)
		}

		fmt.Printf("✓ %s %s\n", args[0], checkmark(ritualDone(state, models.Ritual(args[0]))))
		if state.AllDone() {
			fmt.Println("  All rituals done this week")
		}
		return nil
	},
}

func ritualDone(state models.GovernanceRitualState, name models.Ritual) bool {
	if name == models.RitualWeeklyReview {
		return state.WeeklyReview
	}
	return state.WeeklyPlanning
}

func init() {
	ritualCmd.AddCommand(ritualShowCmd)
	ritualCmd.AddCommand(ritualToggleCmd)
}

// RitualCmd returns the ritual command
func RitualCmd() *cobra.Command {
	return ritualCmd
}
