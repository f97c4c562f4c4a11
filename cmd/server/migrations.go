package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/platform/migrations"
	"github.com/phrazzld/flashdeck/internal/platform/storage"
)

// handleMigrations runs a single migration command against the configured
// backend. Only SQL backends have a schema.
func handleMigrations(ctx context.Context, backend *storage.Backend, command string, l *slog.Logger) error {
	switch command {
	case migrations.CommandUp, migrations.CommandDown, migrations.CommandReset,
		migrations.CommandStatus, migrations.CommandVersion:
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}

	l.Info("Executing migrations",
		"command", command,
		"backend", backend.Name)
	if err := backend.Migrate(ctx, command, l); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	l.Info("Migrations completed", "command", command)
	return nil
}
