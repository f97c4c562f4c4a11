// Package sqlite provides a store.KVStore backed by a local SQLite database
// using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/platform/migrations"
	"github.com/phrazzld/flashdeck/internal/store"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

const backend = "sqlite"

// KVStore stores entries in the kv_entries table.
type KVStore struct {
	db store.DBTX
}

var _ store.KVStore = (*KVStore)(nil)

// NewKVStore wraps an existing connection whose schema is already migrated.
func NewKVStore(db store.DBTX) *KVStore {
	return &KVStore{db: db}
}

// Open opens (creating if needed) the database at path, applies migrations
// and returns the store together with the underlying handle for closing.
func Open(ctx context.Context, path string, logger *slog.Logger) (*KVStore, *sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// SQLite allows a single writer; one connection also keeps :memory: databases intact.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := migrations.Up(ctx, db, migrations.DialectSQLite, logger); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return NewKVStore(db), db, nil
}

// Get implements store.KVStore.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, store.NewStoreError(backend, "get", key, err)
	}
	return []byte(value), nil
}

// Set implements store.KVStore.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value))
	if err != nil {
		return store.NewStoreError(backend, "set", key, err)
	}
	return nil
}

// Remove implements store.KVStore.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key)
	if err != nil {
		return store.NewStoreError(backend, "remove", key, err)
	}
	return nil
}
