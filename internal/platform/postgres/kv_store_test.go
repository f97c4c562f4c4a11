//go:build integration

package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/flashdeck/internal/ciutil"
	"github.com/phrazzld/flashdeck/internal/platform/postgres"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/phrazzld/flashdeck/internal/testutils/kvtest"
	"github.com/stretchr/testify/require"
)

func TestKVStoreContract(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	url := ciutil.GetTestDatabaseURL(logger)
	if url == "" {
		t.Skip(ciutil.EnvTestDatabaseURL + " not set")
	}

	kv, db, err := postgres.Open(context.Background(), url, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	kvtest.Run(t, func(t *testing.T) store.KVStore {
		_, err := db.ExecContext(context.Background(), `DELETE FROM kv_entries`)
		require.NoError(t, err)
		return kv
	})
}
