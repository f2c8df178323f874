package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-auth/internal/domain"
	"property-auth/internal/repository/sqlite"
)

func newTestPropertyService(t *testing.T) PropertyService {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	users := sqlite.NewUserRepository(db)
	require.NoError(t, users.Init(ctx))
	repo := sqlite.NewPropertyRepository(db)
	require.NoError(t, repo.Init(ctx))

	// listings reference their owner row
	require.NoError(t, users.Create(ctx, &domain.User{ID: "owner-1", Email: "owner@x.com", PasswordHash: "h"}))

	return NewPropertyService(repo)
}

func TestPropertyService_CreateAndList(t *testing.T) {
	t.Parallel()

	svc := newTestPropertyService(t)
	ctx := context.Background()

	property, err := svc.CreateProperty(ctx, "owner-1", "  Loft downtown ", "2 Main St", 98000_00)
	require.NoError(t, err)
	assert.NotEmpty(t, property.ID)
	assert.Equal(t, "Loft downtown", property.Title)

	properties, err := svc.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, property.ID, properties[0].ID)
}

func TestPropertyService_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestPropertyService(t)
	ctx := context.Background()

	_, err := svc.CreateProperty(ctx, "", "Loft", "2 Main St", 0)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProperty(ctx, "owner-1", "   ", "2 Main St", 0)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProperty(ctx, "owner-1", "Loft", "2 Main St", -1)
	require.ErrorIs(t, err, ErrValidation)
}
