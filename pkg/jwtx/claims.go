package jwtx

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/golang-jwt/jwt/v5"
)

// Token use tags. Access tokens authenticate API requests; refresh tokens
// are only good for minting a new access token. A token minted for one use
// is never valid for the other.
const (
	TokenUseAccess  = "access"
	TokenUseRefresh = "refresh"
)

// Claims is the signed payload carried by every token: the registered
// claim set (subject, expiry, issuer, jti) plus the token use tag.
type Claims struct {
	jwt.RegisteredClaims

	// TokenUse distinguishes access tokens from refresh tokens.
	TokenUse string `json:"token_use,omitempty"`
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
