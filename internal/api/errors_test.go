package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/flashdeck/internal/api/shared"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/service/auth"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.ErrEmptyEmail, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("register: %w", domain.ErrPasswordMismatch), http.StatusBadRequest},
		{"empty body", shared.ErrEmptyBody, http.StatusBadRequest},
		{"conflict", domain.ErrEmailExists, http.StatusConflict},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"storage", store.NewStoreError("sqlite", "get", "k", errors.New("locked")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "Email already exists", GetSafeErrorMessage(domain.ErrEmailExists))
	assert.Equal(t, "Invalid email or password", GetSafeErrorMessage(domain.ErrInvalidCredentials))
	assert.Equal(t, "Forbidden", GetSafeErrorMessage(ErrForbidden))
	assert.Equal(t, "email cannot be empty", GetSafeErrorMessage(fmt.Errorf("x: %w", domain.ErrEmptyEmail)))

	storageErr := store.NewStoreError("postgres", "get", "flashcards:users",
		errors.New("password=hunter2 host=db.internal"))
	msg := GetSafeErrorMessage(storageErr)
	assert.Equal(t, "An unexpected error occurred", msg)
	assert.NotContains(t, msg, "hunter2")
}

func TestSanitizeValidationError(t *testing.T) {
	type payload struct {
		Category string `validate:"required"`
		Email    string `validate:"omitempty,email"`
	}
	v := validator.New()

	assert.Equal(t, "Invalid category: required field", SanitizeValidationError(v.Struct(payload{})))
	assert.Equal(t, "Invalid email: invalid email format",
		SanitizeValidationError(v.Struct(payload{Category: "x", Email: "nope"})))
	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("plain")))
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "confirm_password", toSnakeCase("ConfirmPassword"))
	assert.Equal(t, "email", toSnakeCase("Email"))
}
