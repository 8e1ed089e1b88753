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
	"github.com/verdantlabs/identity/pkg/jwtx"
	"github.com/verdantlabs/identity/pkg/slogx"
)

// AuthService implements the credential lifecycle: self-service
// registration, password login and token refresh. It owns no state of
// its own; everything lives in the injected Store and Codec.
type AuthService struct {
	Store  store.Store
	Hasher cryptox.Hasher
	Codec  *jwtx.Codec
}

// RegisterInput is the self-service registration payload. Username is
// optional; roles are never accepted here, every new registration
// starts with the default role set.
type RegisterInput struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&in.Username, validation.Length(3, 64)),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 128)),
	)
}

// Register creates a new account with the default role set and returns
// the stored record. An email or username collision, including one lost
// to a concurrent registration, surfaces as ErrDuplicateIdentity so the
// response never confirms which identities exist.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if err := in.Validate(); err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("register: %w", err)
	}

	user := domain.User{
		ID:             idx.New().String(),
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: hash,
		IsActive:       true,
		Roles:          domain.DefaultRoles(),
	}

	if err := s.Store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("registration rejected, identity taken")
			return domain.User{}, ErrDuplicateIdentity
		}
		return domain.User{}, fmt.Errorf("register: %w", err)
	}

	return s.Store.Users().GetByID(ctx, user.ID)
}

// Authenticate verifies an email/password pair and mints a token pair.
// Unknown email and wrong password are indistinguishable to the caller.
// The inactive check runs only after the password verifies, so the
// inactive response never leaks whether the credential was correct for
// a different account state.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (domain.TokenPair, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.TokenPair{}, fmt.Errorf("authenticate: %w", err)
	}

	if !s.Hasher.Verify(password, user.HashedPassword) {
		log.Info("login rejected, password mismatch", "user_id", user.ID)
		return domain.TokenPair{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Info("login rejected, inactive account", "user_id", user.ID)
		return domain.TokenPair{}, ErrInactiveAccount
	}

	access, err := s.Codec.MintAccess(user.Email)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("authenticate: mint access: %w", err)
	}
	refresh, err := s.Codec.MintRefresh(user.Email)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("authenticate: mint refresh: %w", err)
	}

	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    s.Codec.AccessTTL(),
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
// Access tokens are rejected here even though they share the signing
// secret; only a token minted for refresh use passes. The subject must
// still resolve to an active account at exchange time.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	log := slogx.FromContext(ctx)

	claims, err := s.Codec.DecodeUse(refreshToken, jwtx.TokenUseRefresh)
	if err != nil {
		log.Info("refresh rejected", "error", err)
		return domain.TokenPair{}, ErrUnauthenticated
	}

	user, err := s.Store.Users().GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrUnauthenticated
		}
		return domain.TokenPair{}, fmt.Errorf("refresh: %w", err)
	}

	if !user.IsActive {
		return domain.TokenPair{}, ErrInactiveAccount
	}

	access, err := s.Codec.MintAccess(user.Email)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("refresh: mint access: %w", err)
	}

	return domain.TokenPair{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   s.Codec.AccessTTL(),
	}, nil
}
