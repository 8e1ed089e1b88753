package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/identity/internal/identity/domain"
)

func TestUsersCreateWithExplicitRoles(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.Users.Create(ctx, CreateUserInput{
		Email:    "admin@example.com",
		Username: "admin",
		Password: "super-secret",
		Roles:    []string{"ADMIN"},
	})
	require.NoError(t, err)
	require.Equal(t, []domain.Role{domain.RoleAdmin}, user.Roles)
	require.True(t, user.IsActive)
}

func TestUsersCreateRejectsUnknownRole(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.Users.Create(context.Background(), CreateUserInput{
		Email:    "weird@example.com",
		Password: "super-secret",
		Roles:    []string{"ADMIN", "WIZARD"},
	})
	require.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestUsersCreateDuplicate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Users.Create(ctx, CreateUserInput{Email: "dup@example.com", Password: "super-secret"})
	require.NoError(t, err)

	_, err = env.Users.Create(ctx, CreateUserInput{Email: "dup@example.com", Password: "other-secret"})
	require.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestUsersGetByIDAbsent(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.Users.GetByID(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUsersListClampsLimit(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	env.register(t, "one@example.com", "super-secret")
	env.register(t, "two@example.com", "super-secret")

	users, err := env.Users.List(ctx, -5, 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestUsersPatchPasswordRehashes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "rotate@example.com", "old-password")

	newPassword := "new-password-1"
	_, err := env.Users.Patch(ctx, user.ID, UpdateUserInput{Password: &newPassword})
	require.NoError(t, err)

	_, err = env.Auth.Authenticate(ctx, "rotate@example.com", "old-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.Auth.Authenticate(ctx, "rotate@example.com", "new-password-1")
	require.NoError(t, err)
}

func TestUsersPatchAbsent(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	email := "ghost@example.com"
	_, err := env.Users.Patch(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV", UpdateUserInput{Email: &email})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUsersReplace(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "full@example.com", "super-secret")

	replaced, err := env.Users.Replace(ctx, user.ID, ReplaceUserInput{
		Email:    "renamed@example.com",
		Password: "fresh-secret",
		IsActive: false,
		Roles:    []string{"MANAGER"},
	})
	require.NoError(t, err)
	require.Equal(t, "renamed@example.com", replaced.Email)
	require.Empty(t, replaced.Username)
	require.False(t, replaced.IsActive)
	require.Equal(t, []domain.Role{domain.RoleManager}, replaced.Roles)
}

func TestUsersSetRolesRejectsUnknownTag(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "tags@example.com", "super-secret")

	_, err := env.Users.SetRoles(ctx, user.ID, []string{"USER", "WIZARD"})
	require.ErrorIs(t, err, domain.ErrUnknownRole)

	// The stored set is untouched by the failed update.
	got, err := env.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.Role{domain.RoleUser}, got.Roles)
}

func TestUsersSetRolesRejectsEmptySet(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	user := env.register(t, "empty@example.com", "super-secret")

	_, err := env.Users.SetRoles(context.Background(), user.ID, nil)
	require.Error(t, err)
}

func TestUsersDeleteAbsent(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	err := env.Users.Delete(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.ErrorIs(t, err, ErrNotFound)
}

// TestAccountLifecycle walks one account through registration, login,
// authorization, role checks, a failed login and deletion.
func TestAccountLifecycle(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	alice, err := env.Auth.Register(ctx, RegisterInput{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.Equal(t, []domain.Role{domain.RoleUser}, alice.Roles)

	pair := env.login(t, "alice@example.com", "correct-horse")

	// No role requirement admits any active principal.
	principal, err := env.Guard.Authorize(ctx, pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, alice.ID, principal.ID)

	// The default role satisfies a USER requirement but not ADMIN.
	_, err = env.Guard.Authorize(ctx, pair.AccessToken, domain.RoleUser)
	require.NoError(t, err)
	_, err = env.Guard.Authorize(ctx, pair.AccessToken, domain.RoleAdmin)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = env.Auth.Authenticate(ctx, "alice@example.com", "wrong-horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, env.Users.Delete(ctx, alice.ID))

	_, err = env.Guard.Authorize(ctx, pair.AccessToken)
	require.ErrorIs(t, err, ErrUnauthenticated)
}
