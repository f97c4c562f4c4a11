// Package cli implements the flashcards command-line client: account
// commands, catalogue browsing and an interactive study loop. Each
// invocation restores the session from the persisted current user.
package cli
