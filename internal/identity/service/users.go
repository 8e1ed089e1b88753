package service

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/verdantlabs/identity/internal/identity/domain"
	"github.com/verdantlabs/identity/internal/identity/store"
	"github.com/verdantlabs/identity/pkg/cryptox"
	"github.com/verdantlabs/identity/pkg/idx"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 500
)

// UsersService is the administrative surface over the user directory.
// Authorization happens before these methods are called; they assume
// the caller has already been admitted by the Guard.
type UsersService struct {
	Store  store.Store
	Hasher cryptox.Hasher
}

// CreateUserInput is the admin-facing creation payload. Unlike
// self-service registration it may set roles and the active flag
// directly.
type CreateUserInput struct {
	Email    string   `json:"email"`
	Username string   `json:"username,omitempty"`
	Password string   `json:"password"`
	IsActive *bool    `json:"is_active,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

func (in CreateUserInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&in.Username, validation.Length(3, 64)),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 128)),
	)
}

// UpdateUserInput is a sparse update; absent fields are left untouched.
// A present Roles slice replaces the whole role set.
type UpdateUserInput struct {
	Email    *string  `json:"email,omitempty"`
	Username *string  `json:"username,omitempty"`
	Password *string  `json:"password,omitempty"`
	IsActive *bool    `json:"is_active,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

func (in UpdateUserInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Length(3, 254), is.Email),
		validation.Field(&in.Username, validation.Length(0, 64)),
		validation.Field(&in.Password, validation.Length(8, 128)),
	)
}

// ReplaceUserInput overwrites every mutable field of a record. Omitted
// optional fields are cleared, not kept.
type ReplaceUserInput struct {
	Email    string   `json:"email"`
	Username string   `json:"username,omitempty"`
	Password string   `json:"password"`
	IsActive bool     `json:"is_active"`
	Roles    []string `json:"roles"`
}

func (in ReplaceUserInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&in.Username, validation.Length(3, 64)),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 128)),
		validation.Field(&in.Roles, validation.Required),
	)
}

// Create inserts a directory record with explicit roles. Roles outside
// the closed set fail the whole request before anything is written.
func (s *UsersService) Create(ctx context.Context, in CreateUserInput) (domain.User, error) {
	if err := in.Validate(); err != nil {
		return domain.User{}, err
	}

	roles := domain.DefaultRoles()
	if len(in.Roles) > 0 {
		parsed, err := domain.ParseRoles(in.Roles)
		if err != nil {
			return domain.User{}, err
		}
		roles = parsed
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	user := domain.User{
		ID:             idx.New().String(),
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: hash,
		IsActive:       active,
		Roles:          roles,
	}

	if err := s.Store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateIdentity
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return s.Store.Users().GetByID(ctx, user.ID)
}

// GetByID returns a single directory record.
func (s *UsersService) GetByID(ctx context.Context, id string) (domain.User, error) {
	user, err := s.Store.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// List pages through the directory ordered by id. A non-positive limit
// falls back to the default page size; oversized limits are clamped.
func (s *UsersService) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	users, err := s.Store.Users().List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Patch applies a sparse update. A supplied password is rehashed; a
// supplied role set replaces the current one after strict validation.
func (s *UsersService) Patch(ctx context.Context, id string, in UpdateUserInput) (domain.User, error) {
	if err := in.Validate(); err != nil {
		return domain.User{}, err
	}

	p := store.UserPatch{
		Username: in.Username,
		Email:    in.Email,
		IsActive: in.IsActive,
	}

	if in.Password != nil {
		hash, err := s.Hasher.Hash(*in.Password)
		if err != nil {
			return domain.User{}, fmt.Errorf("patch user: %w", err)
		}
		p.HashedPassword = &hash
	}

	if in.Roles != nil {
		roles, err := domain.ParseRoles(in.Roles)
		if err != nil {
			return domain.User{}, err
		}
		p.Roles = roles
	}

	user, err := s.Store.Users().Patch(ctx, id, p)
	if err != nil {
		return domain.User{}, mapDirectoryError("patch user", err)
	}
	return user, nil
}

// Replace overwrites the full record identified by id. An empty
// username clears the stored one.
func (s *UsersService) Replace(ctx context.Context, id string, in ReplaceUserInput) (domain.User, error) {
	if err := in.Validate(); err != nil {
		return domain.User{}, err
	}

	roles, err := domain.ParseRoles(in.Roles)
	if err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("replace user: %w", err)
	}

	user, err := s.Store.Users().Replace(ctx, domain.User{
		ID:             id,
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: hash,
		IsActive:       in.IsActive,
		Roles:          roles,
	})
	if err != nil {
		return domain.User{}, mapDirectoryError("replace user", err)
	}
	return user, nil
}

// SetRoles replaces a user's role set. An unknown tag fails the whole
// request and leaves the stored set untouched.
func (s *UsersService) SetRoles(ctx context.Context, id string, tags []string) (domain.User, error) {
	roles, err := domain.ParseRoles(tags)
	if err != nil {
		return domain.User{}, err
	}
	if len(roles) == 0 {
		return domain.User{}, fmt.Errorf("%w: empty role set", domain.ErrUnknownRole)
	}

	user, err := s.Store.Users().Patch(ctx, id, store.UserPatch{Roles: roles})
	if err != nil {
		return domain.User{}, mapDirectoryError("set roles", err)
	}
	return user, nil
}

// SetActive flips a user's active flag. Deactivation takes effect on
// the user's next guarded request; no tokens are revoked.
func (s *UsersService) SetActive(ctx context.Context, id string, active bool) (domain.User, error) {
	user, err := s.Store.Users().Patch(ctx, id, store.UserPatch{IsActive: &active})
	if err != nil {
		return domain.User{}, mapDirectoryError("set active", err)
	}
	return user, nil
}

// Delete removes a record. Deleting an absent id reports ErrNotFound.
func (s *UsersService) Delete(ctx context.Context, id string) error {
	removed, err := s.Store.Users().Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func mapDirectoryError(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrDuplicateIdentity
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
