// Package domain contains the core entities of the flashcards application:
// users, flashcards, study categories and the statistics derived from them,
// together with the validation rules and error values shared by every layer.
// It has no dependencies on storage or transport.
package domain
