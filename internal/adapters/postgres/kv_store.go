// Package postgres contains a PostgreSQL implementation of the document store
// for sharing one data set between devices.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/example/doze/internal/ports/secondary"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv_documents (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	version    BIGINT NOT NULL DEFAULT 1,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// KVStore implements secondary.KVStore with optimistic versioning.
//
// Each Get remembers the version it saw. A later Set of the same key only
// succeeds if the row still has that version, otherwise it returns
// secondary.ErrConcurrentWrite. A Set of a key that was never read is an
// unconditional upsert.
type KVStore struct {
	pool *pgxpool.Pool

	mu       sync.Mutex
	versions map[string]int64 // 0 means read as absent
}

// NewKVStore wraps an existing pool.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool, versions: make(map[string]int64)}
}

// Open connects to dsn and ensures the schema exists.
func Open(ctx context.Context, dsn string) (*KVStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	store := NewKVStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return store, nil
}

// EnsureSchema creates the documents table if needed.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close releases the pool.
func (s *KVStore) Close() {
	s.pool.Close()
}

// Get returns the document under key and remembers its version.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value   string
		version int64
	)
	err := s.pool.QueryRow(ctx, "SELECT value, version FROM kv_documents WHERE key = $1", key).Scan(&value, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		s.observe(key, 0)
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	s.observe(key, version)
	return value, true, nil
}

// Set writes value under key, checking the version seen by the last Get.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	seen, tracked := s.versions[key]
	s.mu.Unlock()

	var (
		version int64
		err     error
	)
	switch {
	case !tracked:
		err = s.pool.QueryRow(ctx,
			`INSERT INTO kv_documents (key, value) VALUES ($1, $2)
			 ON CONFLICT (key) DO UPDATE SET value = excluded.value,
				version = kv_documents.version + 1, updated_at = now()
			 RETURNING version`,
			key, value,
		).Scan(&version)
	case seen == 0:
		err = s.pool.QueryRow(ctx,
			`INSERT INTO kv_documents (key, value) VALUES ($1, $2)
			 ON CONFLICT (key) DO NOTHING
			 RETURNING version`,
			key, value,
		).Scan(&version)
	default:
		err = s.pool.QueryRow(ctx,
			`UPDATE kv_documents SET value = $2, version = version + 1, updated_at = now()
			 WHERE key = $1 AND version = $3
			 RETURNING version`,
			key, value, seen,
		).Scan(&version)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		s.forget(key)
		return fmt.Errorf("failed to write %s: %w", key, secondary.ErrConcurrentWrite)
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	s.observe(key, version)
	return nil
}

// Remove deletes the document under key.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, "DELETE FROM kv_documents WHERE key = $1", key); err != nil {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	s.observe(key, 0)
	return nil
}

// MultiRemove deletes every listed key in one statement.
func (s *KVStore) MultiRemove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.pool.Exec(ctx, "DELETE FROM kv_documents WHERE key = ANY($1)", keys); err != nil {
		return fmt.Errorf("failed to remove %d documents: %w", len(keys), err)
	}
	for _, k := range keys {
		s.observe(k, 0)
	}
	return nil
}

func (s *KVStore) observe(key string, version int64) {
	s.mu.Lock()
	s.versions[key] = version
	s.mu.Unlock()
}

func (s *KVStore) forget(key string) {
	s.mu.Lock()
	delete(s.versions, key)
	s.mu.Unlock()
}

// Ensure KVStore implements the interface
var _ secondary.KVStore = (*KVStore)(nil)
