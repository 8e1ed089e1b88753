package identsdk

// UserResponse is the public shape of a user record. The stored password
// hash is never serialized.
type UserResponse struct {
	// ID is the user's ULID, assigned at creation and immutable.
	ID string `json:"id"`

	// Username is unique across users when present; may be empty.
	Username string `json:"username,omitempty"`

	// Email is unique across users and is the token subject.
	Email string `json:"email"`

	// IsActive is false for deactivated accounts. A deactivated account
	// cannot authenticate or use existing tokens.
	IsActive bool `json:"is_active"`

	// Roles are the user's role tags (ADMIN, MANAGER, USER).
	Roles []string `json:"roles"`
}

// TokenResponse is returned by the login and refresh endpoints.
type TokenResponse struct {
	// AccessToken is the JWT used to authenticate API requests.
	AccessToken string `json:"access_token"`

	// RefreshToken is the JWT used to obtain new access tokens.
	// Only the login endpoint returns one.
	RefreshToken string `json:"refresh_token,omitempty"`

	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int `json:"expires_in"`
}

// HealthResponse is returned by the /livez and /readyz endpoints.
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the user directory connection status
	Database string `json:"database"`
}
