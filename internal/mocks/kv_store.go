package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/flashdeck/internal/store"
)

// MockKVStore implements store.KVStore. Unset function fields fall back to
// an internal map, so a zero MockKVStore behaves like an empty store.
type MockKVStore struct {
	GetFn    func(ctx context.Context, key string) ([]byte, error)
	SetFn    func(ctx context.Context, key string, value []byte) error
	RemoveFn func(ctx context.Context, key string) error

	mu    sync.Mutex
	data  map[string][]byte
	calls []string
}

var _ store.KVStore = (*MockKVStore)(nil)

// Get implements store.KVStore.
func (m *MockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.record("get " + key)
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements store.KVStore.
func (m *MockKVStore) Set(ctx context.Context, key string, value []byte) error {
	m.record("set " + key)
	if m.SetFn != nil {
		return m.SetFn(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Remove implements store.KVStore.
func (m *MockKVStore) Remove(ctx context.Context, key string) error {
	m.record("remove " + key)
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Calls returns the operations performed so far, e.g. "get flashcards:users".
func (m *MockKVStore) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockKVStore) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}
