// Package session holds the in-memory session of one application instance:
// the logged-in user, the loaded flashcards, the selected category and the
// registered-user list.
//
// State changes only through actions. Reduce is a pure function from a state
// and an action to the next state; Store wraps it with a mutex, hydration
// from the persisted current user and change notifications.
package session
