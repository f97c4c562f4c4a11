package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/i18n"
	"github.com/phrazzld/flashdeck/internal/service/auth"
	"github.com/phrazzld/flashdeck/internal/session"
	"golang.org/x/text/language"
)

var (
	// ErrUsage is returned for unknown commands and bad flags.
	ErrUsage = errors.New("usage error")

	// ErrNotLoggedIn is returned by commands that need a current user.
	ErrNotLoggedIn = errors.New("not logged in")
)

// AuthService is the subset of *auth.Service used by the commands.
type AuthService interface {
	Register(ctx context.Context, in auth.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) *domain.User
	Users(ctx context.Context) ([]domain.User, error)
}

// FlashcardProvider is the subset of *content.Provider used by the commands.
type FlashcardProvider interface {
	GetFlashcards(ctx context.Context) []domain.Flashcard
	GetFlashcardsByCategory(ctx context.Context, category string) []domain.Flashcard
	GetFlashcardsByDifficulty(ctx context.Context, level domain.Difficulty) []domain.Flashcard
	GetFlashcardsStats(ctx context.Context) domain.FlashcardStats
}

var _ AuthService = (*auth.Service)(nil)

// Deps are the collaborators of an App. StdinFd is checked with
// term.IsTerminal before reading passwords.
type Deps struct {
	Auth     AuthService
	Provider FlashcardProvider
	Session  *session.Store
	In       io.Reader
	Out      io.Writer
	StdinFd  int
	Language language.Tag
	Logger   *slog.Logger
}

// App runs a single CLI command.
type App struct {
	auth     AuthService
	provider FlashcardProvider
	session  *session.Store
	in       *bufio.Reader
	out      io.Writer
	stdinFd  int
	lang     language.Tag
	logger   *slog.Logger
}

// NewApp creates an App. Auth, Provider and Session are required.
func NewApp(d Deps) *App {
	if d.Auth == nil || d.Provider == nil || d.Session == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cli.NewApp requires Auth, Provider and Session")
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Language == language.Und {
		d.Language = i18n.Default()
	}
	return &App{
		auth:     d.Auth,
		provider: d.Provider,
		session:  d.Session,
		in:       bufio.NewReader(d.In),
		out:      d.Out,
		stdinFd:  d.StdinFd,
		lang:     d.Language,
		logger:   d.Logger.With("component", "cli"),
	}
}

// Run executes the command named by args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Usage()
		return fmt.Errorf("%w: missing command", ErrUsage)
	}

	a.session.Hydrate(ctx, a.auth)

	cmd, rest := args[0], args[1:]
	a.logger.DebugContext(ctx, "running command", "command", cmd)

	switch cmd {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "categories":
		return a.categories(ctx)
	case "cards":
		return a.cards(ctx, rest)
	case "stats":
		return a.stats(ctx)
	case "study":
		return a.study(ctx, rest)
	case "help":
		a.Usage()
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
	}
}

// Usage prints the command summary.
func (a *App) Usage() {
	fmt.Fprint(a.out, `Usage: flashcards [flags] <command>

Commands:
  register                          create an account
  login                             sign in and remember the user on this device
  logout                            forget the current user
  whoami                            show the current user
  categories                        list categories with card counts
  cards [-category c] [-difficulty d]
                                    list flashcards
  stats                             summarize the flashcard set
  study [-category c]               study cards interactively
                                    (Enter reveals, q quits, c clears progress)
`)
}
