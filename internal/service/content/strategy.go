package content

import "fmt"

// Strategy selects whether the provider may use the network.
type Strategy string

const (
	// StrategyRemote tries the remote source first.
	StrategyRemote Strategy = "remote"
	// StrategyOffline serves the fallback set without touching the network.
	// Used where cross-origin requests are blocked.
	StrategyOffline Strategy = "offline"
)

// MergePolicy decides how remote cards relate to the fallback set.
type MergePolicy string

const (
	// MergeCombine returns the fallback set followed by the mapped remote cards.
	MergeCombine MergePolicy = "combine"
	// MergeReplace returns only the mapped remote cards.
	MergeReplace MergePolicy = "replace"
)

// ParseStrategy converts a configuration value into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyRemote, StrategyOffline:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown content strategy %q", s)
}

// ParseMergePolicy converts a configuration value into a MergePolicy.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch MergePolicy(s) {
	case MergeCombine, MergeReplace:
		return MergePolicy(s), nil
	}
	return "", fmt.Errorf("unknown merge policy %q", s)
}
