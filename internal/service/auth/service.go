package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/store"
)

// Storage keys. Each holds one whole JSON value that is rewritten on every mutation.
const (
	UsersKey       = "flashcards:users"
	CurrentUserKey = "flashcards:current_user"
)

// RegisterInput carries the fields of a registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Service registers users, verifies credentials and tracks the current user
// on top of a key-value store.
//
// Registration reads the user list, appends and writes it back. Two
// concurrent registrations with the same email can both succeed; the KV
// store only guarantees per-key atomicity.
type Service struct {
	kv     store.KVStore
	hasher PasswordHasher
	now    func() time.Time
	newID  func() (uuid.UUID, error)
	logger *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces the user ID generator.
func WithIDGenerator(gen func() (uuid.UUID, error)) Option {
	return func(s *Service) { s.newID = gen }
}

// NewService creates an auth Service.
func NewService(kv store.KVStore, hasher PasswordHasher, logger *slog.Logger, opts ...Option) *Service {
	if kv == nil {
		panic("kv store cannot be nil") // ALLOW-PANIC
	}
	if hasher == nil {
		panic("password hasher cannot be nil") // ALLOW-PANIC
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		kv:     kv,
		hasher: hasher,
		now:    time.Now,
		newID:  uuid.NewV7,
		logger: logger.With("component", "auth_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register validates the input, rejects an already registered email and
// appends the new user to the persisted list. The returned user carries no
// password.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := domain.ValidateRegistration(in.Name, in.Email, in.Password, in.ConfirmPassword); err != nil {
		return nil, err
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	for _, u := range users {
		if u.Email == in.Email {
			s.logger.Debug("registration rejected: email already registered", "email", in.Email)
			return nil, domain.ErrEmailExists
		}
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	user := domain.User{
		ID:        id.String(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  hashed,
		CreatedAt: s.now().UTC(),
	}
	users = append(users, user)

	if err := s.saveUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)

	out := user.Sanitized()
	return &out, nil
}

// Login checks the credentials against the registered users and, on
// success, persists the matching user as the current user.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if err := domain.ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	var match *domain.User
	for i := range users {
		if users[i].Email != email {
			continue
		}
		if err := s.hasher.Compare(users[i].Password, password); err == nil {
			match = &users[i]
			break
		}
	}
	if match == nil {
		s.logger.Debug("login rejected: invalid credentials", "email", email)
		return nil, domain.ErrInvalidCredentials
	}

	current := match.Sanitized()
	data, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode current user: %w", err)
	}
	if err := s.kv.Set(ctx, CurrentUserKey, data); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.Info("user logged in", "user_id", current.ID)
	return &current, nil
}

// Logout removes the current-user record. Storage failures are logged and
// otherwise ignored.
func (s *Service) Logout(ctx context.Context) {
	if err := s.kv.Remove(ctx, CurrentUserKey); err != nil {
		s.logger.Error("failed to remove current user", "error", err)
		return
	}
	s.logger.Info("user logged out")
}

// CurrentUser returns the persisted current user, or nil when there is none
// or the record cannot be read.
func (s *Service) CurrentUser(ctx context.Context) *domain.User {
	data, err := s.kv.Get(ctx, CurrentUserKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error("failed to read current user", "error", err)
		}
		return nil
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Error("failed to decode current user", "error", err)
		return nil
	}
	user = user.Sanitized()
	return &user
}

// UserByID returns the registered user with the given ID, or nil when no such
// user exists or the user list cannot be read.
func (s *Service) UserByID(ctx context.Context, id string) *domain.User {
	users, err := s.loadUsers(ctx)
	if err != nil {
		s.logger.Error("failed to look up user", "error", err, "user_id", id)
		return nil
	}
	for _, u := range users {
		if u.ID == id {
			out := u.Sanitized()
			return &out
		}
	}
	return nil
}

// Users returns every registered user without passwords.
func (s *Service) Users(ctx context.Context) ([]domain.User, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	out := make([]domain.User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	return out, nil
}

// loadUsers reads the persisted user list. An absent key is an empty list.
func (s *Service) loadUsers(ctx context.Context) ([]domain.User, error) {
	data, err := s.kv.Get(ctx, UsersKey)
	if errors.Is(err, store.ErrNotFound) {
		return []domain.User{}, nil
	}
	if err != nil {
		return nil, err
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, store.NewStoreError("json", "decode", UsersKey, err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *Service) saveUsers(ctx context.Context, users []domain.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return store.NewStoreError("json", "encode", UsersKey, err)
	}
	return s.kv.Set(ctx, UsersKey, data)
}
