package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/doze/internal/wire"
)

var mentorCmd = &cobra.Command{
	Use:   "mentor",
	Short: "Progress snapshot and insights",
}

var mentorContextCmd = &cobra.Command{
	Use:   "context",
	Short: "Show the progress snapshot used by the mentor",
	RunE: func(cmd *cobra.Command, args []string) error {
		mc := wire.MentorService().GetMentorContext(NewContext())
		pillars := wire.Pillars()

		fmt.Printf("\nCalendar week %d · overall progress %d%%\n", mc.CalendarWeekNumber, mc.OverallProgress)
		if mc.OneThing != "" {
			fmt.Printf("One Thing: %s\n", mc.OneThing)
		}

		fmt.Println("\nActive plans:")
		if len(mc.ActivePlans) == 0 {
			fmt.Println("  (none)")
		}
		for _, p := range mc.ActivePlans {
			delayed := ""
			if p.HasDelayedWeeks {
				delayed = color.New(color.FgYellow).Sprint(" [delayed]")
			}
			fmt.Printf("  %-20s week %-2d %d/%d (%d%%)%s\n",
				p.PillarName, p.CurrentWeek, p.CompletedTasks, p.TotalTasks, p.ProgressPercent, delayed)
		}

		wt := mc.CurrentWeekTasks
		fmt.Printf("\nThis week: %d/%d done (%d%%), %d pending\n", wt.Completed, wt.Total, wt.CompletionRate, wt.Pending)

		if mc.Overdue.Count > 0 {
			parts := make([]string, 0, len(mc.Overdue.ByPillar))
			for _, pc := range mc.Overdue.ByPillar {
				parts = append(parts, fmt.Sprintf("%s %d", pillars.Name(pc.PillarID), pc.Count))
			}
			fmt.Printf("Overdue: %s (%s)\n", color.New(color.FgRed).Sprint(mc.Overdue.Count), strings.Join(parts, ", "))
		}

		fmt.Printf("Rituals: review %s planning %s\n", checkmark(mc.Rituals.WeeklyReview), checkmark(mc.Rituals.WeeklyPlanning))

		if len(mc.Goals) > 0 {
			fmt.Println("\nGoals:")
			for _, g := range mc.Goals {
				fmt.Printf("  %-20s %s\n", pillars.Name(g.PillarID), firstLine(g.OKR))
			}
		}
		fmt.Println()
		return nil
	},
}

var mentorInsightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show urgent issues, suggestions and celebrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := wire.MentorService().GetMentorInsights(NewContext())

		if len(in.UrgentIssues)+len(in.Suggestions)+len(in.Celebrations) == 0 {
			fmt.Println("Nothing to report")
			return nil
		}
		printInsights(color.New(color.FgRed).Sprint("!"), in.UrgentIssues)
		printInsights(color.New(color.FgYellow).Sprint("→"), in.Suggestions)
		printInsights(color.New(color.FgGreen).Sprint("★"), in.Celebrations)
		return nil
	},
}

func printInsights(marker string, lines []string) {
	for _, l := range lines {
		fmt.Printf("%s %s\n", marker, l)
	}
}

func checkmark(done bool) string {
	if done {
		return color.New(color.FgGreen).Sprint("✓")
	}
	return "·"
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func init() {
	mentorCmd.AddCommand(mentorContextCmd)
	mentorCmd.AddCommand(mentorInsightsCmd)
}

// MentorCmd returns the mentor command
func MentorCmd() *cobra.Command {
	return mentorCmd
}
