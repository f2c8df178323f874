package repository

import (
	"context"

	"property-auth/internal/domain"
)

// PropertyRepository defines persistence operations for Property listings.
type PropertyRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, property *domain.Property) error
	List(ctx context.Context) ([]domain.Property, error)
}
