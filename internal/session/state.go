package session

import "github.com/phrazzld/flashdeck/internal/domain"

// State is a snapshot of the session.
type State struct {
	// User is the logged-in user; nil means logged out.
	User *domain.User `json:"user"`

	// Flashcards is the loaded card set. Never nil.
	Flashcards []domain.Flashcard `json:"flashcards"`

	// CurrentCategory is the selected category id, domain.CategoryAll by default.
	CurrentCategory string `json:"currentCategory"`

	// Users is the registered-user list. Never nil.
	Users []domain.User `json:"users"`
}

// InitialState returns the logged-out session.
func InitialState() State {
	return State{
		User:            nil,
		Flashcards:      []domain.Flashcard{},
		CurrentCategory: domain.CategoryAll,
		Users:           []domain.User{},
	}
}

// Clone returns a deep copy of s that shares no memory with it.
func (s State) Clone() State {
	return State{
		User:            cloneUser(s.User),
		Flashcards:      cloneFlashcards(s.Flashcards),
		CurrentCategory: s.CurrentCategory,
		Users:           cloneUsers(s.Users),
	}
}

// LoggedIn reports whether a user is set.
func (s State) LoggedIn() bool {
	return s.User != nil
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// cloneFlashcards copies cards, normalizing nil to an empty slice.
func cloneFlashcards(cards []domain.Flashcard) []domain.Flashcard {
	out := make([]domain.Flashcard, len(cards))
	copy(out, cards)
	return out
}

// cloneUsers copies users, normalizing nil to an empty slice.
func cloneUsers(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	copy(out, users)
	return out
}
