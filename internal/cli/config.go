package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/doze/internal/config"
	"github.com/example/doze/internal/wire"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize config.yaml",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *wire.Config()
		if cfg.Storage.PostgresDSN != "" {
			cfg.Storage.PostgresDSN = "(set)"
		}

		data, err := yaml.Marshal(&cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := configDirFlag(cmd)
		if err != nil {
			return err
		}

		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		if err := config.SaveConfig(dir, config.Default()); err != nil {
			return err
		}

		fmt.Printf("✓ Wrote %s\n", path)
		return nil
	},
}

func configDirFlag(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("config-dir")
	if dir != "" {
		return dir, nil
	}
	return config.DefaultDir()
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	return configCmd
}
