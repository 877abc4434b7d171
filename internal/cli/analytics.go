package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/doze/internal/wire"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Weekly score, burn-up and pillar ranking of approved plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AnalyticsAdapter().Show(NewContext())
	},
}

var analyticsReviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Score this week and preview next week's tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AnalyticsAdapter().Review(NewContext())
	},
}

var analyticsWeeksCmd = &cobra.Command{
	Use:   "weeks [pillar]",
	Short: "Show the status of every week of a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AnalyticsAdapter().Weeks(NewContext(), args[0])
	},
}

func init() {
	analyticsCmd.AddCommand(analyticsReviewCmd)
	analyticsCmd.AddCommand(analyticsWeeksCmd)
}

// AnalyticsCmd returns the analytics command
func AnalyticsCmd() *cobra.Command {
	return analyticsCmd
}
