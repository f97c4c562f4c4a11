package api

import (
	"context"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/service/auth"
	"github.com/phrazzld/flashdeck/internal/session"
)

// AuthService is the subset of *auth.Service used by the handlers.
type AuthService interface {
	Register(ctx context.Context, in auth.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) *domain.User
	UserByID(ctx context.Context, id string) *domain.User
	Users(ctx context.Context) ([]domain.User, error)
}

// FlashcardProvider is the subset of *content.Provider used by the handlers.
type FlashcardProvider interface {
	GetFlashcards(ctx context.Context) []domain.Flashcard
	GetFlashcardsByCategory(ctx context.Context, category string) []domain.Flashcard
	GetFlashcardsByDifficulty(ctx context.Context, level domain.Difficulty) []domain.Flashcard
	GetFlashcardsStats(ctx context.Context) domain.FlashcardStats
}

// SessionStore is the subset of *session.Store used by the handlers.
type SessionStore interface {
	State() session.State
	Dispatch(ctx context.Context, a session.Action) session.State
	Progress() domain.ProgressStats
}

var (
	_ AuthService  = (*auth.Service)(nil)
	_ SessionStore = (*session.Store)(nil)
)
