package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrTokenUse    = errors.New("jwtx: wrong token use")
)

// Codec mints and verifies HS256 tokens over a single shared secret.
// Validity is purely a function of signature, expiry and the current
// secret; nothing is persisted and there is no revocation.
//
// Construct one per process from configuration and inject it wherever
// tokens are minted or decoded.
type Codec struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewCodec returns a Codec signing with secret. Access and refresh tokens
// share the secret and algorithm but carry separately configured TTLs.
func NewCodec(secret []byte, issuer string, accessTTL, refreshTTL time.Duration) *Codec {
	return &Codec{
		secret:     secret,
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// AccessTTL reports the configured access token lifetime.
func (c *Codec) AccessTTL() time.Duration { return c.accessTTL }

// RefreshTTL reports the configured refresh token lifetime.
func (c *Codec) RefreshTTL() time.Duration { return c.refreshTTL }

// MintAccess signs a short-lived access token bound to subject.
func (c *Codec) MintAccess(subject string) (string, error) {
	return c.mint(subject, TokenUseAccess, c.accessTTL)
}

// MintRefresh signs a refresh token bound to subject. Refresh tokens are
// only accepted by DecodeUse(raw, TokenUseRefresh).
func (c *Codec) MintRefresh(subject string) (string, error) {
	return c.mint(subject, TokenUseRefresh, c.refreshTTL)
}

func (c *Codec) mint(subject, use string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		TokenUse: use,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies signature and expiry and returns the embedded claims.
// Signature, algorithm and structural failures map to ErrMalformed or
// ErrInvalidSig; an expired token maps to ErrExpired. Callers treat all of
// these as unauthenticated, the split is for diagnostics.
func (c *Codec) Decode(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	return claims, nil
}

// DecodeUse decodes raw and additionally requires its token use tag to
// match use. An access token presented where a refresh token is expected
// (or vice versa) fails with ErrTokenUse.
func (c *Codec) DecodeUse(raw, use string) (Claims, error) {
	claims, err := c.Decode(raw)
	if err != nil {
		return Claims{}, err
	}
	if claims.TokenUse != use {
		return Claims{}, ErrTokenUse
	}
	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	default:
		return ErrMalformed
	}
}
