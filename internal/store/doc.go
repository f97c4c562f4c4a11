// Package store defines the persistence abstraction used by the application.
//
// All durable state lives in a KVStore: string keys mapping to opaque byte
// values, each rewritten as a whole on every mutation. Implementations exist
// for memory, SQLite, PostgreSQL and S3 under internal/platform.
package store
