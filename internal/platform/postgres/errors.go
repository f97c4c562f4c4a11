package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/flashdeck/internal/store"
)

// PostgreSQL error codes and classes
const (
	// undefinedTableCode is returned when kv_entries has not been migrated yet
	undefinedTableCode = "42P01"

	// connectionExceptionClass is the SQLSTATE class for connection failures
	connectionExceptionClass = "08"

	// insufficientResourcesClass covers out-of-disk and too-many-connections
	insufficientResourcesClass = "53"
)

// MapError converts a database error into the store error taxonomy.
// sql.ErrNoRows becomes store.ErrNotFound; everything else becomes a
// *store.StoreError wrapping the original cause.
func MapError(operation, key string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return store.NewStoreError(backend, operation, key, err)
}

// IsUndefinedTable reports whether err means the schema has not been migrated.
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTableCode
}

// IsTransient reports whether err is a PostgreSQL failure that may succeed
// if the operation is attempted again later, such as a dropped connection.
func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) < 2 {
		return false
	}
	switch pgErr.Code[:2] {
	case connectionExceptionClass, insufficientResourcesClass:
		return true
	}
	return false
}
