package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-auth/internal/auth"
	"property-auth/internal/repository/sqlite"
)

func newTestUserService(t *testing.T) (UserService, *auth.TokenService) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))

	tokens := auth.NewTokenService("test-secret", 0)
	return NewUserService(repo, auth.NewPasswordHasher(4), tokens), tokens
}

func TestRegister_IssuesResolvableToken(t *testing.T) {
	t.Parallel()

	svc, tokens := newTestUserService(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotEmpty(t, token)
	assert.Empty(t, user.PasswordHash, "returned user must not carry the hash")

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)

	resolved, err := svc.GetByID(ctx, subject)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", resolved.Email)
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "a@x.com", "other")
	require.ErrorIs(t, err, ErrUserAlreadyExists)

	// lookup keys are normalized before the uniqueness check
	_, _, err = svc.Register(ctx, "  A@X.com ", "other")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "", "pw1")
	require.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.Register(ctx, "not-an-email", "pw1")
	require.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.Register(ctx, "a@x.com", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	svc, tokens := newTestUserService(t)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, token, err := svc.Authenticate(ctx, "a@x.com", "pw1")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)

		subject, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, subject)
	})

	t.Run("normalized email", func(t *testing.T) {
		_, _, err := svc.Authenticate(ctx, " A@X.COM ", "pw1")
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Authenticate(ctx, "a@x.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		// indistinguishable from a wrong password
		_, _, err := svc.Authenticate(ctx, "nobody@x.com", "pw1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := svc.Authenticate(ctx, "", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
