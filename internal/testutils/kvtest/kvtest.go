// Package kvtest provides a behavioural test suite shared by every
// store.KVStore implementation.
package kvtest

import (
	"context"
	"testing"

	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises the KVStore contract against the store returned by newStore.
// newStore is called once per subtest and must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) store.KVStore) {
	t.Helper()

	t.Run("get absent key", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(context.Background(), "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrNotFound)
		assert.NotErrorIs(t, err, store.ErrStorage)
	})

	t.Run("set then get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "flashcards:users", []byte(`[{"id":"1"}]`)))

		got, err := s.Get(ctx, "flashcards:users")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"1"}]`, string(got))
	})

	t.Run("set overwrites", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "k", []byte(`"first"`)))
		require.NoError(t, s.Set(ctx, "k", []byte(`"second"`)))

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, `"second"`, string(got))
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "a", []byte(`1`)))
		require.NoError(t, s.Set(ctx, "b", []byte(`2`)))
		require.NoError(t, s.Remove(ctx, "a"))

		_, err := s.Get(ctx, "a")
		assert.ErrorIs(t, err, store.ErrNotFound)

		got, err := s.Get(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, `2`, string(got))
	})

	t.Run("remove absent key", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Remove(context.Background(), "never-set"))
	})

	t.Run("returned value is not shared", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "k", []byte(`abc`)))
		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		got[0] = 'z'

		again, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, `abc`, string(again))
	})
}
