// Package main implements the entry point for the flashdeck API server,
// which exposes the study session, account and flashcard catalogue over
// HTTP/JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/platform/otel"
	"github.com/phrazzld/flashdeck/internal/platform/storage"
)

// options holds the command-line flags.
type options struct {
	configPath string
	migrateCmd string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "Path to a config file (defaults to ./config.yaml when present)")
	fs.StringVar(&opts.migrateCmd, "migrate", "",
		"Run a storage migration command (up, down, reset, status, version) and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run wires the application together and blocks until ctx is cancelled or
// the server fails.
func run(ctx context.Context, opts options) error {
	cfg, err := loadAppConfig(opts.configPath)
	if err != nil {
		return err
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	backend, err := storage.Open(ctx, cfg.Storage, l)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	if opts.migrateCmd != "" {
		defer closeBackend(backend, l)
		return handleMigrations(ctx, backend, opts.migrateCmd, l)
	}

	shutdownTracing, err := otel.Setup(ctx, cfg.Telemetry)
	if err != nil {
		closeBackend(backend, l)
		return fmt.Errorf("failed to set up tracing: %w", err)
	}

	app, err := newApplication(ctx, cfg, l, backend)
	if err != nil {
		_ = shutdownTracing(context.Background())
		closeBackend(backend, l)
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	app.shutdownTracing = shutdownTracing

	return app.Run(ctx)
}

// loadAppConfig loads configuration and checks the settings only the
// server needs.
func loadAppConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("failed to load configuration: %s_AUTH_JWT_SECRET is required", config.EnvPrefix)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"storage_backend", cfg.Storage.Backend,
		"content_strategy", cfg.Content.Strategy)
	return cfg, nil
}

func closeBackend(backend *storage.Backend, l *slog.Logger) {
	if err := backend.Close(); err != nil {
		l.Error("Error closing storage backend", "error", err)
	}
}
