package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ayurtrack/authd/internal/auth/domain"
	"github.com/ayurtrack/authd/internal/auth/store"
	"github.com/ayurtrack/authd/pkg/cryptox"
	"github.com/ayurtrack/authd/pkg/idx"
	"github.com/ayurtrack/authd/pkg/slogx"
)

var (
	// ErrUsernameTaken reports a signup against an existing username.
	ErrUsernameTaken = errors.New("username_taken")

	// ErrUnknownUsername reports a signin for a username with no record.
	ErrUnknownUsername = errors.New("unknown_username")

	// ErrPasswordIncorrect reports a signin with a wrong password.
	ErrPasswordIncorrect = errors.New("password_incorrect")
)

// UserService implements signup and credential verification on top of the
// store and the password hasher.
type UserService struct {
	Store store.Store
}

// Signup hashes the password and inserts a new user. Uniqueness is enforced
// by the store's atomic insert, so concurrent signups for the same username
// resolve to exactly one winner.
func (s *UserService) Signup(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)
	username = strings.TrimSpace(username)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("signup: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("signup: %w", err)
	}

	l.Info("user created", slog.String("user_id", user.ID), slog.String("username", username))
	return user, nil
}

// Authenticate verifies a username/password pair against the stored
// credential record.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnknownUsername
		}
		return domain.User{}, fmt.Errorf("authenticate: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, ErrPasswordIncorrect
		}
		// Malformed stored hash; surface as internal, not as bad credentials
		return domain.User{}, fmt.Errorf("authenticate: %w", err)
	}

	return user, nil
}

// ResolveUsername fetches the user record for a verified token's identity
// claim. The middleware calls this on every protected request so a token
// whose user has vanished stops working immediately.
func (s *UserService) ResolveUsername(ctx context.Context, username string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnknownUsername
		}
		return domain.User{}, fmt.Errorf("resolve username: %w", err)
	}
	return user, nil
}
