package domain

import "time"

// TokenPair is what a successful login returns: the short-lived access
// token plus the longer-lived refresh token. Refresh responses reuse the
// shape with RefreshToken empty.
type TokenPair struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	TokenType    string        `json:"token_type,omitempty"` // typically "Bearer"
	ExpiresIn    time.Duration `json:"expires_in"`           // access token lifetime
}
