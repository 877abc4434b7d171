package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/doze/internal/adapters/sqlite"
	"github.com/example/doze/internal/config"
	"github.com/example/doze/internal/db"
	"github.com/example/doze/internal/wire"
)

// DevCmd returns the dev command group for development utilities.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Development utilities",
	}

	cmd.AddCommand(devSeedCmd())
	cmd.AddCommand(devDocsCmd())
	return cmd
}

func devDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "List the documents stored in the local database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			if cfg.Storage.Backend != config.BackendSQLite {
				return fmt.Errorf("dev docs only supports the sqlite backend (configured: %s)", cfg.Storage.Backend)
			}

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			store := sqlite.NewKVStore(database)
			ctx := NewContext()

			keys, err := store.Keys(ctx)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				fmt.Println("No documents stored")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tBYTES")
			fmt.Fprintln(w, "---\t-----")
			for _, k := range keys {
				value, _, err := store.Get(ctx, k)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\n", k, len(value))
			}
			return w.Flush()
		},
	}
}

func devSeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture data into the local database",
		Long: `Overwrite goals, plans, tasks and One Thing with a development data set:
an approved business plan in its third week with one overdue task.

Only the sqlite backend can be seeded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			if cfg.Storage.Backend != config.BackendSQLite {
				return fmt.Errorf("dev seed only supports the sqlite backend (configured: %s)", cfg.Storage.Backend)
			}

			if !force {
				fmt.Printf("This will overwrite documents in: %s\n", cfg.Storage.SQLitePath)
				fmt.Print("Continue? [y/N] ")
				var response string
				fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			if err := db.SeedFixtures(database, time.Now()); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}

			fmt.Println("✓ Seeded fixture data")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation")
	return cmd
}
