package authentication

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestTokensRoundTrip(t *testing.T) {
	keyring.MockInit()

	_, err := GetTokens()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	creds := &StoredCredentials{
		AccessToken: "token",
		UserID:      7,
		Username:    "alice",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, StoreTokens(creds))

	got, err := GetTokens()
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	require.NoError(t, DeleteTokens())
	_, err = GetTokens()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// deleting twice is fine
	assert.NoError(t, DeleteTokens())
}

func TestGetTokens_Expired(t *testing.T) {
	keyring.MockInit()

	require.NoError(t, StoreTokens(&StoredCredentials{
		AccessToken: "token",
		ExpiresAt:   time.Now().Add(-time.Minute).Unix(),
	}))

	_, err := GetTokens()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
