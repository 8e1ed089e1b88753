package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/verdantlabs/identity/internal/identity/domain"
	"github.com/verdantlabs/identity/internal/identity/store"
	"github.com/verdantlabs/identity/pkg/jwtx"
	"github.com/verdantlabs/identity/pkg/slogx"
)

// Guard turns bearer tokens into authorization decisions. Every check
// re-reads the directory, so deactivating or deleting a user takes
// effect on their very next request regardless of outstanding tokens.
//
// Checks always run in order: resolve the principal, require an active
// account, then require roles. An inactive admin is rejected with the
// inactive error, never the missing-role one.
type Guard struct {
	Store store.Store
	Codec *jwtx.Codec
}

// ResolvePrincipal decodes an access token and loads the live directory
// record it names. Any token defect (bad signature, expiry, wrong use)
// and a vanished subject all collapse into ErrUnauthenticated; a
// directory outage does not.
func (g *Guard) ResolvePrincipal(ctx context.Context, accessToken string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	claims, err := g.Codec.DecodeUse(accessToken, jwtx.TokenUseAccess)
	if err != nil {
		log.Info("token rejected", "error", err)
		return domain.User{}, ErrUnauthenticated
	}

	user, err := g.Store.Users().GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnauthenticated
		}
		return domain.User{}, fmt.Errorf("resolve principal: %w", err)
	}

	return user, nil
}

// RequireActive rejects principals whose account has been deactivated.
func (g *Guard) RequireActive(user domain.User) error {
	if !user.IsActive {
		return ErrInactiveAccount
	}
	return nil
}

// RequireRoles rejects principals holding none of the wanted roles.
// An empty want set passes any principal.
func (g *Guard) RequireRoles(user domain.User, want ...domain.Role) error {
	if !domain.HasAnyRole(user.Roles, want...) {
		return ErrForbidden
	}
	return nil
}

// Authorize runs the full gate for an operation requiring any of the
// given roles and returns the admitted principal.
func (g *Guard) Authorize(ctx context.Context, accessToken string, want ...domain.Role) (domain.User, error) {
	user, err := g.ResolvePrincipal(ctx, accessToken)
	if err != nil {
		return domain.User{}, err
	}
	if err := g.RequireActive(user); err != nil {
		return domain.User{}, err
	}
	if err := g.RequireRoles(user, want...); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
