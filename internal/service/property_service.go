package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"property-auth/internal/domain"
	"property-auth/internal/repository"
)

// PropertyService coordinates property listing operations backed by repositories.
type PropertyService interface {
	CreateProperty(ctx context.Context, ownerID, title, address string, priceCents int64) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)
}

type propertyService struct {
	properties repository.PropertyRepository
}

func NewPropertyService(properties repository.PropertyRepository) PropertyService {
	return &propertyService{properties: properties}
}

func (s *propertyService) CreateProperty(ctx context.Context, ownerID, title, address string, priceCents int64) (*domain.Property, error) {
	title = strings.TrimSpace(title)
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrValidation)
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	property := &domain.Property{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Title:      title,
		Address:    strings.TrimSpace(address),
		PriceCents: priceCents,
	}

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	return s.properties.List(ctx)
}
