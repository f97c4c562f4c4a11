package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/events"
	"github.com/phrazzld/flashdeck/internal/platform/placeholder"
	"github.com/phrazzld/flashdeck/internal/platform/storage"
	"github.com/phrazzld/flashdeck/internal/service/auth"
	"github.com/phrazzld/flashdeck/internal/service/content"
	"github.com/phrazzld/flashdeck/internal/session"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	backend *storage.Backend

	jwtService  auth.JWTService
	authService *auth.Service
	provider    *content.Provider

	// One session per server process.
	session      *session.Store
	eventEmitter *events.InMemoryEventEmitter

	shutdownTracing func(context.Context) error
}

// newApplication creates a new application instance with all dependencies
// initialized. The session is restored from the persisted current user.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	backend *storage.Backend,
) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		backend: backend,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.authService = auth.NewService(backend.KV, auth.NewBcryptHasher(cfg.Auth.BcryptCost), logger)

	opts, err := content.OptionsFromConfig(cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to read content options: %w", err)
	}
	var source content.Source
	if opts.Strategy == content.StrategyRemote {
		source = placeholder.NewClient(placeholder.Config{
			BaseURL: cfg.Content.BaseURL,
			Timeout: cfg.Content.Timeout(),
		}, logger)
	}
	app.provider, err = content.NewProvider(source, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create content provider: %w", err)
	}
	logger.Info("Content provider initialized",
		"strategy", opts.Strategy,
		"merge", opts.Merge)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewLoggingHandler(logger))
	app.session = session.NewStore(app.eventEmitter, logger)

	app.session.Hydrate(ctx, app.authService)
	if users, err := app.authService.Users(ctx); err != nil {
		logger.Warn("failed to load registered users", "error", err)
	} else {
		app.session.Dispatch(ctx, session.SetUsers{Users: users})
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.shutdownTracing != nil {
		if err := app.shutdownTracing(context.Background()); err != nil {
			app.logger.Error("Error shutting down tracing", "error", err)
		}
	}

	if app.backend != nil {
		if err := app.backend.Close(); err != nil {
			app.logger.Error("Error closing storage backend", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
