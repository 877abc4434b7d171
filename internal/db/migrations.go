package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_kv_documents",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "drop_legacy_onboarding_flag",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_reminders_and_analytics_events",
		Up:      migrationV3,
	},
}

// LegacyOnboardingKey is the un-versioned onboarding flag replaced by
// doze_onboarding_completed_v2.
const LegacyOnboardingKey = "doze_onboarding_completed"

// RunMigrations executes all pending migrations
func RunMigrations(conn *sql.DB) error {
	if _, err := conn.Exec(schemaVersionSQL); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var currentVersion int
	err := conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		logger.Debug("running migration", "version", migration.Version, "name", migration.Name)

		tx, err := conn.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// migrationV1 creates the document table.
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS kv_documents (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// migrationV2 removes the onboarding flag written before the key was versioned,
// so every install goes through onboarding once under the new flow.
func migrationV2(tx *sql.Tx) error {
	_, err := tx.Exec("DELETE FROM kv_documents WHERE key = ?", LegacyOnboardingKey)
	return err
}

// migrationV3 adds reminder and analytics storage.
func migrationV3(tx *sql.Tx) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS reminders (
			identifier TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			weekday INTEGER NOT NULL DEFAULT -1 CHECK (weekday BETWEEN -1 AND 6),
			hour INTEGER NOT NULL CHECK (hour BETWEEN 0 AND 23),
			minute INTEGER NOT NULL DEFAULT 0 CHECK (minute BETWEEN 0 AND 59),
			scheduled_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS analytics_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			actor TEXT,
			properties TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analytics_events_name ON analytics_events(name)`,
		`CREATE INDEX IF NOT EXISTS idx_analytics_events_created ON analytics_events(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
