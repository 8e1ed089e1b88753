package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/identity/internal/identity/domain"
)

func (e *testEnv) login(t *testing.T, email, password string) domain.TokenPair {
	t.Helper()
	pair, err := e.Auth.Authenticate(context.Background(), email, password)
	require.NoError(t, err)
	return pair
}

func TestAuthorizeNoRoleRequirement(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	env.register(t, "alice@example.com", "super-secret")
	pair := env.login(t, "alice@example.com", "super-secret")

	principal, err := env.Guard.Authorize(ctx, pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", principal.Email)
}

func TestAuthorizeRequiredRole(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "mgr@example.com", "super-secret")
	pair := env.login(t, "mgr@example.com", "super-secret")

	// Default USER role does not satisfy a MANAGER requirement.
	_, err := env.Guard.Authorize(ctx, pair.AccessToken, domain.RoleManager)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = env.Users.SetRoles(ctx, user.ID, []string{"MANAGER", "USER"})
	require.NoError(t, err)

	// Role changes apply on the next check without a new token.
	principal, err := env.Guard.Authorize(ctx, pair.AccessToken, domain.RoleManager)
	require.NoError(t, err)
	require.Contains(t, principal.Roles, domain.RoleManager)
}

func TestAuthorizeAnyOfSeveralRoles(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	env.register(t, "plain@example.com", "super-secret")
	pair := env.login(t, "plain@example.com", "super-secret")

	principal, err := env.Guard.Authorize(ctx, pair.AccessToken, domain.RoleAdmin, domain.RoleUser)
	require.NoError(t, err)
	require.Contains(t, principal.Roles, domain.RoleUser)
}

func TestAuthorizeRejectsRefreshToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	env.register(t, "swap@example.com", "super-secret")
	pair := env.login(t, "swap@example.com", "super-secret")

	_, err := env.Guard.Authorize(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestAuthorizeRejectsGarbageToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.Guard.Authorize(context.Background(), "nope.nope.nope")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestDeactivationTakesImmediateEffect(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "sleepy@example.com", "super-secret")
	pair := env.login(t, "sleepy@example.com", "super-secret")

	_, err := env.Guard.Authorize(ctx, pair.AccessToken)
	require.NoError(t, err)

	_, err = env.Users.SetActive(ctx, user.ID, false)
	require.NoError(t, err)

	// The still-unexpired token no longer admits the principal.
	_, err = env.Guard.Authorize(ctx, pair.AccessToken)
	require.ErrorIs(t, err, ErrInactiveAccount)
}

func TestInactiveBeatsMissingRole(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "both@example.com", "super-secret")
	pair := env.login(t, "both@example.com", "super-secret")

	_, err := env.Users.SetActive(ctx, user.ID, false)
	require.NoError(t, err)

	_, err = env.Guard.Authorize(ctx, pair.AccessToken, domain.RoleAdmin)
	require.ErrorIs(t, err, ErrInactiveAccount)
}

func TestDeletedSubjectIsUnauthenticated(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "doomed@example.com", "super-secret")
	pair := env.login(t, "doomed@example.com", "super-secret")

	require.NoError(t, env.Users.Delete(ctx, user.ID))

	_, err := env.Guard.Authorize(ctx, pair.AccessToken)
	require.ErrorIs(t, err, ErrUnauthenticated)
}
