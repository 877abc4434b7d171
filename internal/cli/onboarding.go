package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/wire"
)

var onboardingCmd = &cobra.Command{
	Use:   "onboarding",
	Short: "First-run state and data import",
}

var onboardingStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether onboarding is complete",
	RunE: func(cmd *cobra.Command, args []string) error {
		if wire.OnboardingService().HasCompletedOnboarding(NewContext()) {
			fmt.Println("✓ Onboarding complete")
		} else {
			fmt.Println("Onboarding not completed")
		}
		return nil
	},
}

var onboardingCompleteCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark onboarding as complete (or not, with --undo)",
	RunE: func(cmd *cobra.Command, args []string) error {
		undo, _ := cmd.Flags().GetBool("undo")

		if err := wire.OnboardingService().SetOnboardingCompleted(NewContext(), !undo); err != nil {
			return fmt.Errorf("failed to save onboarding state: %w", err)
		}

		fmt.Printf("✓ Onboarding completed: %t\n", !undo)
		return nil
	},
}

var onboardingImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import goals, tasks and One Thing from an onboarding JSON document",
	Long: `Import the structured plan produced by the onboarding conversation.

The document has the shape:
  {"pillars": [{"id": "business", "okr": "..."}],
   "tasks": [{"title": "...", "pillarId": "business"}],
   "oneThing": "..."}

Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			raw []byte
			err error
		)
		if len(args) == 1 {
			raw, err = os.ReadFile(args[0])
		} else {
			raw, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("failed to read onboarding data: %w", err)
		}

		var data primary.GeneratedPlanData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("failed to parse onboarding data: %w", err)
		}

		ctx := NewContext()
		if err := wire.OnboardingService().SaveGeneratedPlan(ctx, data); err != nil {
			return fmt.Errorf("failed to import onboarding data: %w", err)
		}
		if err := wire.OnboardingService().SetOnboardingCompleted(ctx, true); err != nil {
			return fmt.Errorf("failed to save onboarding state: %w", err)
		}

		fmt.Printf("✓ Imported %d goals and %d tasks\n", len(data.Pillars), len(data.Tasks))
		return nil
	},
}

var onboardingResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every stored document",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			fmt.Println("This will delete all goals, plans, tasks, chats and rituals.")
			fmt.Print("Continue? [y/N] ")
			var response string
			fmt.Scanln(&response)
			if response != "y" && response != "Y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := wire.OnboardingService().ClearAllData(NewContext()); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}

		fmt.Println("✓ All data cleared")
		return nil
	},
}

func init() {
	onboardingCompleteCmd.Flags().Bool("undo", false, "Mark onboarding as not completed")
	onboardingResetCmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	onboardingCmd.AddCommand(onboardingStatusCmd)
	onboardingCmd.AddCommand(onboardingCompleteCmd)
	onboardingCmd.AddCommand(onboardingImportCmd)
	onboardingCmd.AddCommand(onboardingResetCmd)
}

// OnboardingCmd returns the onboarding command
func OnboardingCmd() *cobra.Command {
	return onboardingCmd
}
