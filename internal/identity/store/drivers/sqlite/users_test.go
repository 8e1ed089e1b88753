package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/identity/internal/identity/domain"
	"github.com/verdantlabs/identity/internal/identity/store"
	"github.com/verdantlabs/identity/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func testUser(email, username string) domain.User {
	return domain.User{
		ID:             idx.New().String(),
		Username:       username,
		Email:          email,
		HashedPassword: "$2a$10$fakehashfakehashfakehash",
		IsActive:       true,
		Roles:          domain.DefaultRoles(),
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("alice@example.com", "alice")
	require.NoError(t, s.Users().Create(ctx, u))

	byID, err := s.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
	require.Equal(t, u.Username, byID.Username)
	require.Equal(t, []domain.Role{domain.RoleUser}, byID.Roles)
	require.True(t, byID.IsActive)
	require.False(t, byID.CreatedAt.IsZero())

	byEmail, err := s.Users().GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	byUsername, err := s.Users().GetByUsername(ctx, u.Username)
	require.NoError(t, err)
	require.Equal(t, u.ID, byUsername.ID)
}

func TestGetAbsentUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Users().GetByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetByEmail(ctx, "ghost@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateEnforcesUniqueEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().Create(ctx, testUser("dup@example.com", "first")))

	err := s.Users().Create(ctx, testUser("dup@example.com", "second"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestCreateEnforcesUniqueUsername(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().Create(ctx, testUser("a@example.com", "same")))

	err := s.Users().Create(ctx, testUser("b@example.com", "same"))
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestCreateAllowsMultipleEmptyUsernames(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().Create(ctx, testUser("a@example.com", "")))
	require.NoError(t, s.Users().Create(ctx, testUser("b@example.com", "")))
}

func TestPatchAppliesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("patch@example.com", "before")
	require.NoError(t, s.Users().Create(ctx, u))

	username := "after"
	updated, err := s.Users().Patch(ctx, u.ID, store.UserPatch{Username: &username})
	require.NoError(t, err)
	require.Equal(t, "after", updated.Username)
	require.Equal(t, u.Email, updated.Email)
	require.Equal(t, u.Roles, updated.Roles)
	require.True(t, updated.IsActive)
}

func TestPatchRoles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("roles@example.com", "roley")
	require.NoError(t, s.Users().Create(ctx, u))

	updated, err := s.Users().Patch(ctx, u.ID, store.UserPatch{
		Roles: []domain.Role{domain.RoleAdmin, domain.RoleUser},
	})
	require.NoError(t, err)
	require.Equal(t, []domain.Role{domain.RoleAdmin, domain.RoleUser}, updated.Roles)
}

func TestPatchAbsentUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	active := false
	_, err := s.Users().Patch(ctx, idx.New().String(), store.UserPatch{IsActive: &active})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPatchEmailCollision(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Users().Create(ctx, testUser("taken@example.com", "one")))
	u := testUser("free@example.com", "two")
	require.NoError(t, s.Users().Create(ctx, u))

	taken := "taken@example.com"
	_, err := s.Users().Patch(ctx, u.ID, store.UserPatch{Email: &taken})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestReplaceClearsUnsetFields(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("replace@example.com", "hadname")
	require.NoError(t, s.Users().Create(ctx, u))

	u.Username = ""
	u.Email = "replaced@example.com"
	updated, err := s.Users().Replace(ctx, u)
	require.NoError(t, err)
	require.Empty(t, updated.Username)
	require.Equal(t, "replaced@example.com", updated.Email)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := testUser("gone@example.com", "gone")
	require.NoError(t, s.Users().Create(ctx, u))

	removed, err := s.Users().Delete(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = s.Users().Delete(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, removed)

	_, err = s.Users().GetByID(ctx, u.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ids := make([]string, 5)
	for i := range ids {
		u := testUser(string(rune('a'+i))+"@example.com", "")
		u.ID = idx.NewAt(base.Add(time.Duration(i) * time.Second)).String()
		ids[i] = u.ID
		require.NoError(t, s.Users().Create(ctx, u))
	}

	page, err := s.Users().List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, ids[1], page[0].ID)
	require.Equal(t, ids[2], page[1].ID)

	empty, err := s.Users().List(ctx, 10, 2)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestReadFailsClosedOnUnknownRoleTag(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// Bypass the repo to simulate a corrupted roles column.
	_, err := s.db.ExecContext(ctx, `
INSERT INTO users (id, username, email, hashed_password, is_active, roles, created_at, updated_at)
VALUES (?, NULL, ?, ?, 1, ?, ?, ?)`,
		idx.New().String(), "corrupt@example.com", "hash", "WIZARD",
		time.Now().UTC(), time.Now().UTC())
	require.NoError(t, err)

	_, err = s.Users().GetByEmail(ctx, "corrupt@example.com")
	require.ErrorIs(t, err, domain.ErrUnknownRole)
}
