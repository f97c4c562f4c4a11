// Package storage opens the key-value backend selected in configuration.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/platform/memory"
	"github.com/phrazzld/flashdeck/internal/platform/migrations"
	"github.com/phrazzld/flashdeck/internal/platform/postgres"
	"github.com/phrazzld/flashdeck/internal/platform/s3store"
	"github.com/phrazzld/flashdeck/internal/platform/sqlite"
	"github.com/phrazzld/flashdeck/internal/store"
)

// Backend names accepted in storage.backend.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendS3       = "s3"
)

// ErrNotSQL is returned by Migrate for backends without a schema.
var ErrNotSQL = errors.New("migrations only apply to SQL storage backends")

// Backend is an opened key-value store plus the resources behind it.
type Backend struct {
	Name string
	KV   store.KVStore

	// DB and Dialect are set for SQL backends only.
	DB      *sql.DB
	Dialect string
}

// newS3Client is a seam for tests.
var newS3Client = func(ctx context.Context, cfg s3store.Config) (s3store.API, error) {
	return s3store.NewClient(ctx, cfg)
}

// Open connects to the configured backend. SQL backends are migrated to the
// latest schema before use.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "storage", "backend", cfg.Backend)

	switch cfg.Backend {
	case BackendMemory:
		log.Warn("using in-memory storage; data is lost on exit")
		return &Backend{Name: BackendMemory, KV: memory.NewKVStore()}, nil

	case BackendSQLite:
		kv, db, err := sqlite.Open(ctx, cfg.Path, log)
		if err != nil {
			return nil, err
		}
		log.Info("sqlite storage ready", "path", cfg.Path)
		return &Backend{Name: BackendSQLite, KV: kv, DB: db, Dialect: migrations.DialectSQLite}, nil

	case BackendPostgres:
		kv, db, err := postgres.Open(ctx, cfg.URL, log)
		if err != nil {
			return nil, err
		}
		log.Info("postgres storage ready")
		return &Backend{Name: BackendPostgres, KV: kv, DB: db, Dialect: migrations.DialectPostgres}, nil

	case BackendS3:
		client, err := newS3Client(ctx, s3store.Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			Prefix:          cfg.S3.Prefix,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		log.Info("s3 storage ready", "bucket", cfg.S3.Bucket, "prefix", cfg.S3.Prefix)
		return &Backend{Name: BackendS3, KV: s3store.NewKVStore(client, cfg.S3.Bucket, cfg.S3.Prefix)}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Migrate runs a goose command against a SQL backend.
func (b *Backend) Migrate(ctx context.Context, command string, logger *slog.Logger) error {
	if b.DB == nil {
		return fmt.Errorf("%w: %s", ErrNotSQL, b.Name)
	}
	return migrations.Run(ctx, b.DB, b.Dialect, command, logger)
}

// Close releases the backend's resources.
func (b *Backend) Close() error {
	if b.DB == nil {
		return nil
	}
	if err := b.DB.Close(); err != nil {
		return fmt.Errorf("failed to close %s storage: %w", b.Name, err)
	}
	return nil
}
