package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// StateChangedEvent reports a completed session transition.
// It carries a summary of the resulting state, never the user record itself.
type StateChangedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Action names the transition that produced the state, e.g. "set_user"
	Action string `json:"action"`

	// UserID is the logged-in user after the transition, empty when logged out
	UserID string `json:"user_id,omitempty"`

	FlashcardCount int    `json:"flashcard_count"`
	Category       string `json:"category"`
	UserCount      int    `json:"user_count"`

	OccurredAt time.Time `json:"occurred_at"`
}

// NewStateChangedEvent creates a StateChangedEvent stamped with a fresh ID and the current time.
func NewStateChangedEvent(action, userID string, flashcardCount int, category string, userCount int) *StateChangedEvent {
	return &StateChangedEvent{
		ID:             uuid.New(),
		Action:         action,
		UserID:         userID,
		FlashcardCount: flashcardCount,
		Category:       category,
		UserCount:      userCount,
		OccurredAt:     time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that react to session changes.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *StateChangedEvent) error
}

// EventHandlerFunc adapts an ordinary function to EventHandler.
type EventHandlerFunc func(ctx context.Context, event *StateChangedEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *StateChangedEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows the session store to publish changes without knowing its observers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *StateChangedEvent) error
}

// NewLoggingHandler returns a handler that records every state change at info level.
func NewLoggingHandler(logger *slog.Logger) EventHandler {
	logger = logger.With("component", "session_events")
	return EventHandlerFunc(func(ctx context.Context, event *StateChangedEvent) error {
		logger.InfoContext(ctx, "session state changed",
			"event_id", event.ID,
			"action", event.Action,
			"user_id", event.UserID,
			"flashcard_count", event.FlashcardCount,
			"category", event.Category,
			"user_count", event.UserCount)
		return nil
	})
}
