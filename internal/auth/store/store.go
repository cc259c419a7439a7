package store

import (
	"context"
	"errors"

	"github.com/ayurtrack/authd/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is the lookup used by signin and by the auth
	// middleware when re-resolving a token's identity claim.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username is taken; the uniqueness
	// check is atomic at the storage layer, so two concurrent inserts for
	// the same username can never both succeed.
	CreateUser(ctx context.Context, u domain.User) error

	// CountUsers returns the total number of user records.
	CountUsers(ctx context.Context) (int64, error)
}
