package domain

import "time"

// User is an identity record in the directory.
type User struct {
	ID             string // ULID, assigned on creation, immutable
	Username       string // unique when present; may be empty
	Email          string // unique; canonical identifier and token subject
	HashedPassword string // bcrypt encoded, never the plaintext
	IsActive       bool   // false permanently blocks authentication
	Roles          []Role // always a subset of the closed role set
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
