// Command flashcards is the command-line client for studying flashcards on
// this device. Accounts and the current user live in the configured storage
// backend (a local SQLite file by default).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/phrazzld/flashdeck/internal/cli"
	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/events"
	"github.com/phrazzld/flashdeck/internal/platform/i18n"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/platform/placeholder"
	"github.com/phrazzld/flashdeck/internal/platform/storage"
	"github.com/phrazzld/flashdeck/internal/service/auth"
	"github.com/phrazzld/flashdeck/internal/service/content"
	"github.com/phrazzld/flashdeck/internal/session"
)

type options struct {
	configPath string
	lang       string
	offline    bool
	verbose    bool
	args       []string
}

func parseFlags(args []string, out io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("flashcards", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.configPath, "config", "", "Path to a config file (defaults to ./config.yaml when present)")
	fs.StringVar(&opts.lang, "lang", "", "Display language for category names (en, pt-BR)")
	fs.BoolVar(&opts.offline, "offline", false, "Use the built-in flashcards instead of fetching remote ones")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log at the configured level instead of warn")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts.args = fs.Args()
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "flashcards: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdin *os.File, stdout io.Writer) error {
	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyOverrides(cfg, opts)

	l, err := logger.SetupWithWriter(cfg.Server, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	backend, err := storage.Open(ctx, cfg.Storage, l)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			l.Error("Error closing storage backend", "error", err)
		}
	}()

	provider, err := newProvider(cfg, l)
	if err != nil {
		return err
	}

	emitter := events.NewInMemoryEventEmitter(l)
	emitter.RegisterHandler(events.NewLoggingHandler(l))

	tag := i18n.Default()
	if opts.lang != "" {
		tag, _ = i18n.ParseTag(opts.lang)
	}

	app := cli.NewApp(cli.Deps{
		Auth:     auth.NewService(backend.KV, auth.NewBcryptHasher(cfg.Auth.BcryptCost), l),
		Provider: provider,
		Session:  session.NewStore(emitter, l),
		In:       stdin,
		Out:      stdout,
		StdinFd:  int(stdin.Fd()),
		Language: tag,
		Logger:   l,
	})
	return app.Run(ctx, opts.args)
}

// applyOverrides layers command-line flags over the loaded configuration.
func applyOverrides(cfg *config.Config, opts options) {
	if !opts.verbose {
		cfg.Server.LogLevel = "warn"
	}
	if opts.offline {
		cfg.Content.Strategy = string(content.StrategyOffline)
	}
}

func newProvider(cfg *config.Config, l *slog.Logger) (*content.Provider, error) {
	opts, err := content.OptionsFromConfig(cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to read content options: %w", err)
	}

	var source content.Source
	if opts.Strategy == content.StrategyRemote {
		source = placeholder.NewClient(placeholder.Config{
			BaseURL: cfg.Content.BaseURL,
			Timeout: cfg.Content.Timeout(),
		}, l)
	}

	provider, err := content.NewProvider(source, opts, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create content provider: %w", err)
	}
	return provider, nil
}
