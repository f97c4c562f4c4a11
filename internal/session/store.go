package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/events"
)

// CurrentUserSource supplies the persisted current user used to hydrate a
// new session. It returns nil when no user is persisted or the record
// cannot be read.
type CurrentUserSource interface {
	CurrentUser(ctx context.Context) *domain.User
}

// Store owns the session state of one application instance. It is safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	state   State
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewStore returns a Store in InitialState. emitter may be nil, in which
// case no change events are published.
func NewStore(emitter events.EventEmitter, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		state:   InitialState(),
		emitter: emitter,
		logger:  logger.With("component", "session_store"),
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Dispatch applies a and returns a copy of the resulting state. Observers are
// notified after the state has been updated; their failures are logged and
// do not affect the transition.
func (s *Store) Dispatch(ctx context.Context, a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state.Clone()
	s.mu.Unlock()

	name := ActionName(a)
	s.logger.DebugContext(ctx, "dispatched action",
		"action", name,
		"flashcard_count", len(next.Flashcards),
		"category", next.CurrentCategory)

	if s.emitter != nil && name != "unknown" {
		userID := ""
		if next.User != nil {
			userID = next.User.ID
		}
		event := events.NewStateChangedEvent(name, userID, len(next.Flashcards), next.CurrentCategory, len(next.Users))
		if err := s.emitter.EmitEvent(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "state change observer failed",
				"action", name,
				"error", err)
		}
	}

	return next
}

// Hydrate restores the logged-in user from src. A missing or unreadable
// record leaves the session logged out; it is logged, never returned.
func (s *Store) Hydrate(ctx context.Context, src CurrentUserSource) State {
	user := src.CurrentUser(ctx)
	if user == nil {
		s.logger.InfoContext(ctx, "no persisted user found, starting logged out")
		return s.State()
	}

	s.logger.InfoContext(ctx, "restored persisted user", "user_id", user.ID)
	return s.Dispatch(ctx, SetUser{User: user})
}

// CountByCategory returns the number of loaded cards in category.
// domain.CategoryAll counts every card.
func (s *Store) CountByCategory(category string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CountInCategory(s.state.Flashcards, category)
}

// Progress summarizes the loaded cards for the profile view.
func (s *Store) Progress() domain.ProgressStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ComputeProgress(s.state.Flashcards)
}

// CurrentFlashcards returns the loaded cards in the selected category,
// preserving order.
func (s *Store) CurrentFlashcards() []domain.Flashcard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FilterByCategory(s.state.Flashcards, s.state.CurrentCategory)
}
