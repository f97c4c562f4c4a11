// Package postgres provides a store.KVStore backed by PostgreSQL through the
// pgx database/sql driver. Entries live in the kv_entries table created by
// the embedded goose migrations.
package postgres
