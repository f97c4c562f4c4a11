// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input or a domain entity fails validation.
	// It is usually wrapped by a ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when an operation would violate a uniqueness rule.
	ErrConflict = errors.New("conflict")

	// ErrEmailExists is returned when registering an email that is already taken.
	ErrEmailExists = fmt.Errorf("%w: email already registered", ErrConflict)

	// ErrAuth is returned when credentials cannot be verified.
	ErrAuth = errors.New("authentication failed")

	// ErrInvalidCredentials is returned when no user matches the given email and password.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrAuth)
)

// ValidationError describes malformed input for a single field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error, ErrValidation unless overridden.
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// NewValidationError creates a ValidationError for field. A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsValidationError reports whether err is, or wraps, a validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
