package session

import "github.com/phrazzld/flashdeck/internal/domain"

// Action is a session transition. The set of actions is closed: only the
// types in this package implement it.
type Action interface {
	actionName() string
}

// SetUser replaces the logged-in user. A nil User logs out without
// clearing the rest of the state.
type SetUser struct {
	User *domain.User
}

// SetFlashcards replaces the loaded card set. A nil slice loads an empty set.
type SetFlashcards struct {
	Flashcards []domain.Flashcard
}

// SetCategory changes the selected category.
type SetCategory struct {
	Category string
}

// SetUsers replaces the registered-user list. A nil slice stores an empty list.
type SetUsers struct {
	Users []domain.User
}

// Logout resets the whole session to InitialState.
type Logout struct{}

func (SetUser) actionName() string       { return "set_user" }
func (SetFlashcards) actionName() string { return "set_flashcards" }
func (SetCategory) actionName() string   { return "set_category" }
func (SetUsers) actionName() string      { return "set_users" }
func (Logout) actionName() string        { return "logout" }

// ActionName returns the snake_case name of a, or "unknown" for nil.
func ActionName(a Action) string {
	a = normalize(a)
	if a == nil {
		return "unknown"
	}
	return a.actionName()
}
