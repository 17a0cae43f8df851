package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_UsesCost12(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
	assert.NotEqual(t, "pw1", hash)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPasswordWithCost("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword(hash, "secret"))
	assert.Error(t, VerifyPassword(hash, "Secret"))
	assert.Error(t, VerifyPassword("not-a-hash", "secret"))
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPasswordWithCost("same", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := HashPasswordWithCost("same", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestBurnVerify_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { BurnVerify("anything") })
}
