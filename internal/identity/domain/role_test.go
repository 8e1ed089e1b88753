package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Role
		wantErr bool
	}{
		{"admin", "ADMIN", RoleAdmin, false},
		{"manager", "MANAGER", RoleManager, false},
		{"user", "USER", RoleUser, false},
		{"lowercase normalized", "admin", RoleAdmin, false},
		{"padded normalized", "  USER ", RoleUser, false},
		{"unknown tag", "SUPERUSER", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseRolesFailsClosed(t *testing.T) {
	_, err := ParseRoles([]string{"USER", "WIZARD"})
	require.ErrorIs(t, err, ErrUnknownRole)
}

func TestParseRolesDeduplicates(t *testing.T) {
	roles, err := ParseRoles([]string{"USER", "ADMIN", "user"})
	require.NoError(t, err)
	require.Equal(t, []Role{RoleUser, RoleAdmin}, roles)
}

func TestHasAnyRole(t *testing.T) {
	have := []Role{RoleUser, RoleManager}

	t.Run("empty requirement always passes", func(t *testing.T) {
		require.True(t, HasAnyRole(have))
		require.True(t, HasAnyRole(nil))
	})

	t.Run("intersecting requirement passes", func(t *testing.T) {
		require.True(t, HasAnyRole(have, RoleManager))
		require.True(t, HasAnyRole(have, RoleAdmin, RoleUser))
	})

	t.Run("disjoint requirement fails", func(t *testing.T) {
		require.False(t, HasAnyRole(have, RoleAdmin))
		require.False(t, HasAnyRole(nil, RoleUser))
	})

	t.Run("no hierarchy between roles", func(t *testing.T) {
		admin := []Role{RoleAdmin}
		require.False(t, HasAnyRole(admin, RoleManager))
	})
}

func TestDefaultRoles(t *testing.T) {
	require.Equal(t, []Role{RoleUser}, DefaultRoles())
}
