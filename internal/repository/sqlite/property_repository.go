package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"property-auth/internal/domain"
	"property-auth/internal/repository"
)

const createPropertiesTable = `
CREATE TABLE IF NOT EXISTS properties (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL REFERENCES users(id),
	title TEXT NOT NULL,
	address TEXT NOT NULL,
	price_cents INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
);
`

type PropertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPropertiesTable); err != nil {
		return fmt.Errorf("create properties table: %w", err)
	}
	return nil
}

func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	property.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO properties (id, owner_id, title, address, price_cents, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		property.ID,
		property.OwnerID,
		property.Title,
		property.Address,
		property.PriceCents,
		property.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, owner_id, title, address, price_cents, created_at
FROM properties
ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		var p domain.Property
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Title,
			&p.Address,
			&p.PriceCents,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate properties: %w", err)
	}
	return properties, nil
}
