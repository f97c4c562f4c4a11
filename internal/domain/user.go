package domain

import (
	"errors"
	"time"
	"unicode/utf8"
)

// Password length limits. The minimum counts characters; the maximum counts
// bytes because bcrypt truncates its input at 72 bytes.
const (
	MinPasswordLength = 6
	MaxPasswordBytes  = 72
)

// User validation errors
var (
	ErrEmptyName          = NewValidationError("name", "cannot be empty", nil)
	ErrEmptyEmail         = NewValidationError("email", "cannot be empty", nil)
	ErrEmptyPassword      = NewValidationError("password", "cannot be empty", nil)
	ErrPasswordMismatch   = NewValidationError("confirm_password", "does not match password", nil)
	ErrPasswordTooShort   = NewValidationError("password", "must be at least 6 characters long", nil)
	ErrPasswordTooLong    = NewValidationError("password", "must be at most 72 bytes", nil)
	errMissingUserID      = errors.New("user ID cannot be empty")
	errMissingUserCreated = errors.New("user creation time cannot be zero")
)

// User represents a registered user of the flashcards application.
//
// Password is only populated on records held in persistent storage, where it
// carries the password hash. Every value handed to callers outside the auth
// service goes through Sanitized first.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized returns a copy of the user without the password field.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Validate checks the invariants of a persisted user record.
func (u *User) Validate() error {
	if u.ID == "" {
		return errMissingUserID
	}
	if u.Name == "" {
		return ErrEmptyName
	}
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.CreatedAt.IsZero() {
		return errMissingUserCreated
	}
	return nil
}

// ValidateRegistration checks registration input in the order users see the
// messages: required fields, confirmation, then length.
func ValidateRegistration(name, email, password, confirmPassword string) error {
	switch {
	case name == "":
		return ErrEmptyName
	case email == "":
		return ErrEmptyEmail
	case password == "":
		return ErrEmptyPassword
	case password != confirmPassword:
		return ErrPasswordMismatch
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}

// ValidateCredentials checks that login input is present.
func ValidateCredentials(email, password string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}
