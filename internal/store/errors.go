package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all backends.
var (
	// ErrNotFound is returned when a requested key does not exist.
	ErrNotFound = errors.New("key not found")

	// ErrStorage is wrapped by every StoreError. Callers use it to tell a
	// failing backend apart from an absent key.
	ErrStorage = errors.New("storage failure")
)

// IsNotFoundError reports whether err is, or wraps, ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError describes a failed backend operation.
type StoreError struct {
	Backend   string // memory, sqlite, postgres, s3
	Operation string // get, set, remove
	Key       string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s %q failed: %v", e.Backend, e.Operation, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s %q failed", e.Backend, e.Operation, e.Key)
}

// Unwrap exposes both ErrStorage and the underlying cause to errors.Is/As.
func (e *StoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStorage}
	}
	return []error{ErrStorage, e.Err}
}

// NewStoreError creates a new StoreError.
func NewStoreError(backend, operation, key string, err error) *StoreError {
	return &StoreError{
		Backend:   backend,
		Operation: operation,
		Key:       key,
		Err:       err,
	}
}
