package domain

import "time"

// User represents a registered account. Email is the unique lookup key,
// stored trimmed and lowercased. PasswordHash is the bcrypt hash of the
// password; the plaintext is never persisted.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
