package store

import "context"

// KVStore is a durable string-keyed blob store.
//
// Each key is updated atomically on its own; there are no multi-key
// transactions. Values are opaque to the store.
type KVStore interface {
	// Get returns the value stored under key.
	// Returns ErrNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
