package api

import (
	"time"

	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/session"
)

// RegisterRequest defines the payload for the user registration endpoint.
// Field rules beyond presence are enforced by the auth service so that API
// and CLI users see the same messages.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	User domain.User `json:"user"`

	// Token is the JWT used for API authorization
	Token string `json:"token"`

	// ExpiresAt is the ISO 8601 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// SetCategoryRequest defines the payload for selecting a study category.
type SetCategoryRequest struct {
	Category string `json:"category" validate:"required"`
}

// FlashcardsResponse wraps a list of cards.
type FlashcardsResponse struct {
	Flashcards []domain.Flashcard `json:"flashcards"`
	Count      int                `json:"count"`
}

// CategoriesResponse lists the browsable categories.
type CategoriesResponse struct {
	Language   string            `json:"language"`
	Categories []domain.Category `json:"categories"`
}

// UserSummary is the directory entry for a registered user. Emails stay
// out of session responses.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SessionResponse is the public view of the session state.
type SessionResponse struct {
	User            *domain.User       `json:"user"`
	Flashcards      []domain.Flashcard `json:"flashcards"`
	CurrentCategory string             `json:"current_category"`
	CurrentCount    int                `json:"current_count"`
	Users           []UserSummary      `json:"users"`
}

func sessionToResponse(s session.State) SessionResponse {
	users := make([]UserSummary, 0, len(s.Users))
	for _, u := range s.Users {
		users = append(users, UserSummary{ID: u.ID, Name: u.Name})
	}
	return SessionResponse{
		User:            s.User,
		Flashcards:      s.Flashcards,
		CurrentCategory: s.CurrentCategory,
		CurrentCount:    domain.CountInCategory(s.Flashcards, s.CurrentCategory),
		Users:           users,
	}
}

func newAuthResponse(user *domain.User, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		User:      user.Sanitized(),
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}
}
