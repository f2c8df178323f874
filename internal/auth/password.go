package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidHash indicates that a stored hash is not well-formed bcrypt
// output. Callers may treat this as a storage-integrity problem rather than
// a wrong password, though both lead to rejection.
var ErrInvalidHash = errors.New("stored password hash is malformed")

// PasswordHasher one-way transforms plaintext passwords into storable bcrypt
// hashes and verifies candidates against them.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns a salted bcrypt hash of plaintext. Two calls with the same
// input produce different hashes; both verify against the input.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hashed. The comparison is
// constant-time within bcrypt. A hashed value that is not valid bcrypt
// output yields ErrInvalidHash instead of false.
func (h *PasswordHasher) Verify(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
}
