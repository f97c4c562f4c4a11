// Package memory provides an in-process store.KVStore used in tests and for
// ephemeral server runs.
package memory

import (
	"context"
	"sync"

	"github.com/phrazzld/flashdeck/internal/store"
)

// KVStore is a map-backed store.KVStore safe for concurrent use.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ store.KVStore = (*KVStore)(nil)

// NewKVStore returns an empty KVStore.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

// Get implements store.KVStore.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, store.NewStoreError("memory", "get", key, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements store.KVStore.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return store.NewStoreError("memory", "set", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Remove implements store.KVStore.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return store.NewStoreError("memory", "remove", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
