package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no config.yaml or .env
// from the repository is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "flashcards.db", cfg.Storage.Path)
	assert.Equal(t, "remote", cfg.Content.Strategy)
	assert.Equal(t, "combine", cfg.Content.Merge)
	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.Content.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Content.Timeout())
	assert.Equal(t, 800*time.Millisecond, cfg.Content.PacingDelay())
	assert.Equal(t, 12, cfg.Content.MaxItems)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenLifetime())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Empty(t, cfg.Auth.JWTSecret)
	assert.Equal(t, "flashdeck", cfg.Telemetry.ServiceName)
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("FLASHDECK_SERVER_PORT", "9090")
	t.Setenv("FLASHDECK_SERVER_LOG_LEVEL", "debug")
	t.Setenv("FLASHDECK_STORAGE_BACKEND", "s3")
	t.Setenv("FLASHDECK_STORAGE_S3_BUCKET", "cards")
	t.Setenv("FLASHDECK_AUTH_JWT_SECRET", "thisisasecretkeythatis32charslong!!")
	t.Setenv("FLASHDECK_CONTENT_STRATEGY", "offline")
	t.Setenv("FLASHDECK_CONTENT_PACING_DELAY_MS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Equal(t, "cards", cfg.Storage.S3.Bucket)
	assert.Equal(t, "thisisasecretkeythatis32charslong!!", cfg.Auth.JWTSecret)
	assert.Equal(t, "offline", cfg.Content.Strategy)
	assert.Zero(t, cfg.Content.PacingDelay())
}

func TestLoadFromDotEnvFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FLASHDECK_CONTENT_MERGE=replace\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("FLASHDECK_CONTENT_MERGE") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "replace", cfg.Content.Merge)
}

func TestLoadFromFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "flashdeck.yaml")
	yaml := []byte(`
server:
  port: 7070
storage:
  backend: memory
content:
  max_items: 5
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, 5, cfg.Content.MaxItems)

	_, err = LoadFrom(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name:           "port out of range",
			envVars:        map[string]string{"FLASHDECK_SERVER_PORT": "999999"},
			errorSubstring: "Port",
		},
		{
			name:           "invalid log level",
			envVars:        map[string]string{"FLASHDECK_SERVER_LOG_LEVEL": "invalid-level"},
			errorSubstring: "LogLevel",
		},
		{
			name:           "short jwt secret",
			envVars:        map[string]string{"FLASHDECK_AUTH_JWT_SECRET": "tooshort"},
			errorSubstring: "JWTSecret",
		},
		{
			name:           "unknown strategy",
			envVars:        map[string]string{"FLASHDECK_CONTENT_STRATEGY": "web"},
			errorSubstring: "Strategy",
		},
		{
			name:           "postgres without url",
			envVars:        map[string]string{"FLASHDECK_STORAGE_BACKEND": "postgres"},
			errorSubstring: "URL",
		},
		{
			name:           "s3 without bucket",
			envVars:        map[string]string{"FLASHDECK_STORAGE_BACKEND": "s3"},
			errorSubstring: "storage.s3.bucket",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			chdirTemp(t)
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorSubstring)
			assert.Nil(t, cfg)
		})
	}
}
