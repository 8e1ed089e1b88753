package store

import (
	"context"
	"errors"

	"github.com/verdantlabs/identity/internal/identity/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface for the user directory.
// Concrete drivers (sqlite today) implement this. Any error other than
// ErrNotFound / ErrAlreadyExists is an infrastructure failure and must be
// propagated as such, never converted into an authentication failure.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// UserPatch carries a sparse update: nil fields are left untouched.
// A nil Roles slice means "keep the current role set".
type UserPatch struct {
	Username       *string
	Email          *string
	HashedPassword *string
	IsActive       *bool
	Roles          []domain.Role
}

// Users is the directory contract the identity core depends on.
// Uniqueness of email and username is enforced by the storage layer;
// Create and updates report a violated constraint as ErrAlreadyExists.
type Users interface {
	// GetByID returns a user by id.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByEmail returns a user by email. Email is the token subject, so
	// this is the hot path for authentication and principal resolution.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// GetByUsername returns a user by username.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// Create inserts a new user (id is provided by the app via ULID).
	Create(ctx context.Context, u domain.User) error

	// Patch applies only the supplied fields and returns the updated
	// record, or ErrNotFound when id is absent.
	Patch(ctx context.Context, id string, p UserPatch) (domain.User, error)

	// Replace overwrites every mutable field of the record identified by
	// u.ID; unset optional fields are cleared. Returns ErrNotFound when
	// the id is absent.
	Replace(ctx context.Context, u domain.User) (domain.User, error)

	// Delete removes a record. Reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// List returns users ordered by id, skipping offset and returning at
	// most limit records.
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
}
