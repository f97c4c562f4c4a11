// Package content retrieves the flashcard set.
//
// A Provider either serves the fixed fallback set directly (StrategyOffline)
// or tries one remote fetch through a Source and degrades to the fallback set
// on any failure (StrategyRemote). Callers never see remote errors; they are
// classified as NetworkError, logged and swallowed.
package content
