package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher performs one-way password hashing and verification using bcrypt.
// The cost factor is fixed at construction time; callers never supply it.
// Construct one per process and inject it where passwords are handled.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. A cost outside the
// range bcrypt supports falls back to the library default.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

// Cost reports the configured bcrypt cost factor.
func (h Hasher) Cost() int { return h.cost }

// Hash returns a salted bcrypt hash of password. Two calls with the same
// input produce different encoded hashes; both verify.
func (h Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches encodedHash. A malformed stored
// hash is treated as a non-match, never as a fatal error.
func (h Hasher) Verify(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
