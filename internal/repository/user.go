package repository

import (
	"context"
	"errors"

	"property-auth/internal/domain"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when a unique key is already taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// UserRepository defines persistence operations for User entities.
// Create must be atomic with respect to concurrent attempts on the same
// email; the storage layer's uniqueness constraint is the authoritative
// guard.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
