package authentication

// keystring.go keeps the CLI session in the OS keyring.
import (
	"encoding/json"
	"errors"
	"time"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "moviereview-cli"
	tokenKey    = "auth_tokens"
)

// ErrNotLoggedIn is returned when no usable session is stored.
var ErrNotLoggedIn = errors.New("not logged in, please run 'moviereview auth login'")

type StoredCredentials struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	IsModerator bool   `json:"is_moderator"`
	IsAdmin     bool   `json:"is_admin"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Expired reports whether the access token is past its expiry.
func (c *StoredCredentials) Expired(now time.Time) bool {
	return c.ExpiresAt > 0 && now.Unix() >= c.ExpiresAt
}

func StoreTokens(creds *StoredCredentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return keyring.Set(serviceName, tokenKey, string(data))
}

// GetTokens returns the stored session or ErrNotLoggedIn.
func GetTokens() (*StoredCredentials, error) {
	value, err := keyring.Get(serviceName, tokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	var creds StoredCredentials
	if err := json.Unmarshal([]byte(value), &creds); err != nil {
		return nil, err
	}
	if creds.AccessToken == "" || creds.Expired(time.Now()) {
		return nil, ErrNotLoggedIn
	}
	return &creds, nil
}

// DeleteTokens removes the session; a missing session is not an error.
func DeleteTokens() error {
	err := keyring.Delete(serviceName, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
