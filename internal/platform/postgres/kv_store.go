package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/flashdeck/internal/platform/migrations"
	"github.com/phrazzld/flashdeck/internal/store"

	// Registers the "pgx" database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"
)

const backend = "postgres"

// KVStore stores entries in the kv_entries table.
type KVStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.KVStore = (*KVStore)(nil)

// NewKVStore wraps an existing connection whose schema is already migrated.
// A nil logger falls back to slog.Default().
func NewKVStore(db store.DBTX, logger *slog.Logger) *KVStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &KVStore{
		db:     db,
		logger: logger.With("component", "postgres_kv_store"),
	}
}

// Open connects to url, configures the pool, applies migrations and returns
// the store together with the handle for closing.
func Open(ctx context.Context, url string, logger *slog.Logger) (*KVStore, *sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrations.Up(ctx, db, migrations.DialectPostgres, logger); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return NewKVStore(db, logger), db, nil
}

// Get implements store.KVStore.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&value)
	if err != nil {
		return nil, s.mapError("get", key, err)
	}
	return []byte(value), nil
}

// Set implements store.KVStore.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, string(value))
	return s.mapError("set", key, err)
}

// Remove implements store.KVStore.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	return s.mapError("remove", key, err)
}

func (s *KVStore) mapError(operation, key string, err error) error {
	mapped := MapError(operation, key, err)
	if mapped == nil || store.IsNotFoundError(mapped) {
		return mapped
	}
	s.logger.Error("kv operation failed",
		"operation", operation,
		"key", key,
		"transient", IsTransient(err),
		"undefined_table", IsUndefinedTable(err),
		"error", err)
	return mapped
}
