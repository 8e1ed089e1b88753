package service

import "errors"

// Sentinel errors returned by the identity services. HTTP handlers map
// these onto wire-level responses; anything not listed here is an
// infrastructure failure and surfaces as a 500, never as a credential
// or authorization failure.
var (
	// ErrDuplicateIdentity is returned when a registration or update
	// collides with an existing email or username. The message is kept
	// deliberately generic so responses do not confirm which identities
	// already exist.
	ErrDuplicateIdentity = errors.New("unable to register with provided information")

	// ErrInvalidCredentials covers both unknown identity and wrong
	// password. Callers must not be able to distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated is returned when a presented token is missing,
	// malformed, expired, mis-signed, of the wrong use, or names a
	// subject that no longer exists.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInactiveAccount is returned when an otherwise valid credential
	// or token resolves to a deactivated account.
	ErrInactiveAccount = errors.New("account is inactive")

	// ErrForbidden is returned when an authenticated, active principal
	// lacks every role an operation requires.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned by directory operations targeting an
	// absent user.
	ErrNotFound = errors.New("user not found")
)
