package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/wire"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recently recorded analytics events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		events, err := wire.Events().Recent(NewContext(), limit)
		if err != nil {
			return fmt.Errorf("failed to list events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No events recorded")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tEVENT\tACTOR\tPROPERTIES")
		fmt.Fprintln(w, "----\t-----\t-----\t----------")
		for _, e := range events {
			props, _ := json.Marshal(e.Properties)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Name, e.Actor, props)
		}
		return w.Flush()
	},
}

func init() {
	eventsCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
}

// EventsCmd returns the events command
func EventsCmd() *cobra.Command {
	return eventsCmd
}
