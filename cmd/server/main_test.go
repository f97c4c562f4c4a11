package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/platform/memory"
	"github.com/phrazzld/flashdeck/internal/platform/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-config", "cfg.yaml", "-migrate", "status"})
	require.NoError(t, err)
	assert.Equal(t, options{configPath: "cfg.yaml", migrateCmd: "status"}, opts)

	opts, err = parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, options{}, opts)

	_, err = parseFlags([]string{"-unknown"})
	assert.Error(t, err)
}

func TestLoadAppConfig_RequiresJWTSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvPrefix+"_AUTH_JWT_SECRET", "")

	_, err := loadAppConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET is required")

	t.Setenv(config.EnvPrefix+"_AUTH_JWT_SECRET", testJWTSecret)
	cfg, err := loadAppConfig("")
	require.NoError(t, err)
	assert.Equal(t, testJWTSecret, cfg.Auth.JWTSecret)
}

func TestHandleMigrations(t *testing.T) {
	_, l := logger.NewTestLogger(t)
	ctx := context.Background()

	mem := &storage.Backend{Name: storage.BackendMemory, KV: memory.NewKVStore()}
	err := handleMigrations(ctx, mem, "up", l)
	assert.ErrorIs(t, err, storage.ErrNotSQL)

	err = handleMigrations(ctx, mem, "sideways", l)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")

	backend, err := storage.Open(ctx, config.StorageConfig{
		Backend: storage.BackendSQLite,
		Path:    filepath.Join(t.TempDir(), "flashcards.db"),
	}, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	assert.NoError(t, handleMigrations(ctx, backend, "status", l))
	assert.NoError(t, handleMigrations(ctx, backend, "version", l))
}
