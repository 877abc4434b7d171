package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/doze/internal/models"
)

// Storage backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// EnvPostgresDSN overrides storage.postgres_dsn when set.
const EnvPostgresDSN = "DOZE_POSTGRES_DSN"

// Config represents .doze/config.yaml
type Config struct {
	Storage       StorageConfig       `yaml:"storage"`
	Notifications NotificationsConfig `yaml:"notifications"`
	CustomPillars []models.Pillar     `yaml:"custom_pillars,omitempty"`
}

// StorageConfig selects where documents are kept.
type StorageConfig struct {
	Backend     string `yaml:"backend"`                // "sqlite" or "postgres"
	SQLitePath  string `yaml:"sqlite_path,omitempty"`  // defaults to <dir>/doze.db
	PostgresDSN string `yaml:"postgres_dsn,omitempty"` // required for postgres
}

// NotificationsConfig toggles local reminders.
type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Storage:       StorageConfig{Backend: BackendSQLite},
		Notifications: NotificationsConfig{Enabled: true},
	}
}

// DefaultDir returns ~/.doze.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".doze"), nil
}

// LoadConfig reads config.yaml from dir.
// A missing file yields Default(). Environment overrides apply either way.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if dsn := os.Getenv(EnvPostgresDSN); dsn != "" {
		cfg.Storage.PostgresDSN = dsn
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendSQLite
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = filepath.Join(dir, "doze.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the storage selection.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		return nil
	case BackendPostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("storage.postgres_dsn is required for the postgres backend (or set %s)", EnvPostgresDSN)
		}
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
}

// SaveConfig writes config.yaml to dir
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
