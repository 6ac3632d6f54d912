// Package crypto provides the bcrypt implementation of the password hasher.
package crypto

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/pizzanow/ordering-system/internal/core/ports"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a ports.PasswordHasher backed by bcrypt. Costs
// outside the valid bcrypt range fall back to the library default.
func NewBcryptHasher(cost int) ports.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password. bcrypt draws a
// fresh random salt on every call and embeds it in the output, so the result
// is never reversible to the plaintext and never repeats across calls.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a stored hash. The comparison
// inside bcrypt is constant-time, so a mismatch position leaks nothing.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
