// Package sqlite_test contains integration tests for the SQLite adapters.
//
// All test databases are built from db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not declare tables in test files; use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/doze/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedDocument inserts a raw document.
func seedDocument(t *testing.T, testDB *sql.DB, key, value string) {
	t.Helper()
	if _, err := testDB.Exec("INSERT INTO kv_documents (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("failed to seed document %s: %v", key, err)
	}
}

// countRows returns the number of rows in table.
func countRows(t *testing.T, testDB *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := testDB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}
