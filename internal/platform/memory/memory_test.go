package memory

import (
	"context"
	"testing"

	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/phrazzld/flashdeck/internal/testutils/kvtest"
	"github.com/stretchr/testify/assert"
)

func TestKVStoreContract(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) store.KVStore {
		return NewKVStore()
	})
}

func TestKVStoreCanceledContext(t *testing.T) {
	s := NewKVStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrStorage)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Set(ctx, "k", nil), store.ErrStorage)
	assert.ErrorIs(t, s.Remove(ctx, "k"), store.ErrStorage)
}
