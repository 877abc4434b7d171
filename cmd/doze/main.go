package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/cli"
	"github.com/example/doze/internal/version"
	"github.com/example/doze/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "doze",
		Short:   "doze - 12 Week Year planning from the terminal",
		Version: version.String(),
		Long: `doze manages pillar goals, twelve-week plans and the weekly execution list.

Approved plans feed this week's dashboard; completing a task on the dashboard
is mirrored back into its plan.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			dir, _ := cmd.Flags().GetString("config-dir")
			verbose, _ := cmd.Flags().GetBool("verbose")
			wire.Configure(dir, verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			wire.Close()
		},
	}
	rootCmd.PersistentFlags().String("config-dir", "", "Config directory (default ~/.doze)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log storage warnings and debug detail")

	// Planning
	rootCmd.AddCommand(cli.GoalCmd())
	rootCmd.AddCommand(cli.PlanCmd())
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.SyncCmd())
	rootCmd.AddCommand(cli.OverdueCmd())
	rootCmd.AddCommand(cli.OneThingCmd())

	// Coaching
	rootCmd.AddCommand(cli.RitualCmd())
	rootCmd.AddCommand(cli.MentorCmd())
	rootCmd.AddCommand(cli.AnalyticsCmd())
	rootCmd.AddCommand(cli.ChatCmd())
	rootCmd.AddCommand(cli.OnboardingCmd())
	rootCmd.AddCommand(cli.RemindersCmd())
	rootCmd.AddCommand(cli.EventsCmd())

	// Setup and developer tools
	rootCmd.AddCommand(cli.ConfigCmd())
	rootCmd.AddCommand(cli.DevCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
