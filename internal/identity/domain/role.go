package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Role is a closed-set tag granting membership in an authorization group.
// There is no hierarchy: ADMIN does not satisfy a MANAGER-only requirement.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// ErrUnknownRole reports a role tag outside the closed set. Decoding an
// unknown tag from storage is a data-integrity error, never silently
// ignorable: an unrecognized role must not survive into a principal.
var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole validates a single role tag.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleManager:
		return RoleManager, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// ParseRoles validates a set of role tags, deduplicating while preserving
// order. Any unknown tag fails the whole set.
func ParseRoles(tags []string) ([]Role, error) {
	seen := make(map[Role]struct{}, len(tags))
	out := make([]Role, 0, len(tags))
	for _, tag := range tags {
		role, err := ParseRole(tag)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		out = append(out, role)
	}
	return out, nil
}

// DefaultRoles is the role set assigned to newly registered users.
func DefaultRoles() []Role {
	return []Role{RoleUser}
}

// HasAnyRole reports whether have intersects want. An empty want set
// passes unconditionally; it is a no-op authorization gate.
func HasAnyRole(have []Role, want ...Role) bool {
	if len(want) == 0 {
		return true
	}
	set := make(map[Role]struct{}, len(have))
	for _, r := range have {
		set[r] = struct{}{}
	}
	for _, r := range want {
		if _, ok := set[r]; ok {
			return true
		}
	}
	return false
}

// RoleStrings converts roles to their string tags for serialization.
func RoleStrings(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}
