package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(4) // minimum cost keeps the test fast

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "correct horse")

	ok, err := hasher.Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHash_Salted(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(4)

	h1, err := hasher.Hash("pw1")
	require.NoError(t, err)
	h2, err := hasher.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same input must differ")

	for _, h := range []string{h1, h2} {
		ok, err := hasher.Verify("pw1", h)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestPasswordVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(4)

	ok, err := hasher.Verify("pw1", "not-a-bcrypt-hash")
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrInvalidHash)
}

func TestNewPasswordHasher_ClampsCost(t *testing.T) {
	t.Parallel()

	// out-of-range costs fall back to the default work factor
	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("pw1")
	require.NoError(t, err)

	ok, err := hasher.Verify("pw1", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}
