package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/wire"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage twelve-week plans",
	Long: `Generate, review and approve twelve-week plans.

A generated plan stays pending until approved. Only approved plans feed
the weekly dashboard.`,
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate [pillar]",
	Short: "Create a pending plan from generated text",
	Long: `Create a pending plan from free text with "Semana N" or "Week N" headers.

The text is read from --file, or from stdin when no file is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		var (
			text []byte
			err  error
		)
		if file != "" {
			text, err = os.ReadFile(file)
		} else {
			text, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("failed to read plan text: %w", err)
		}

		return wire.PlanAdapter().Generate(NewContext(), args[0], string(text))
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plans with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.PlanAdapter().List(NewContext())
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show [pillar]",
	Short: "Show a plan week by week",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := wire.PlanAdapter().Show(NewContext(), args[0])
		return err
	},
}

var planApproveCmd = &cobra.Command{
	Use:   "approve [pillar]",
	Short: "Approve a pending plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.PlanAdapter().Approve(NewContext(), args[0])
	},
}

var planRenameTaskCmd = &cobra.Command{
	Use:   "rename-task [pillar] [week] [index] [title]",
	Short: "Rename a task of a plan week",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		week, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid week %q", args[1])
		}
		index, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid task index %q", args[2])
		}

		return wire.PlanAdapter().RenameTask(NewContext(), args[0], week, index, args[3])
	},
}

func init() {
	planGenerateCmd.Flags().StringP("file", "f", "", "File with the generated plan text")

	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planApproveCmd)
	planCmd.AddCommand(planRenameTaskCmd)
}

// PlanCmd returns the plan command
func PlanCmd() *cobra.Command {
	return planCmd
}
