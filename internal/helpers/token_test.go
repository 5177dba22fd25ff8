package helpers

import (
	"testing"

	"api/internal/configuration"
	"api/internal/models"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenTestSecret = "test-secret-key-for-token-helpers-32b"

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &models.User{ID: 3, Username: "doctor", IsAdmin: true}

	token, err := NewAccessToken(tokenTestSecret, user, 60)
	require.NoError(t, err)

	claims, err := ParseAccessToken(tokenTestSecret, "Bearer "+token)
	require.NoError(t, err)

	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "doctor", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, configuration.AudienceAccessToken, claims.Aud)
	assert.Equal(t, configuration.AppName, claims.Issuer)
}

func TestParseToken(t *testing.T) {
	user := &models.User{ID: 3, Username: "doctor"}

	t.Run("requires the bearer prefix when asked", func(t *testing.T) {
		token, err := NewAccessToken(tokenTestSecret, user, 60)
		require.NoError(t, err)

		_, err = ParseToken(tokenTestSecret, token, true)
		assert.Error(t, err)

		_, err = ParseToken(tokenTestSecret, token, false)
		assert.NoError(t, err)
	})

	t.Run("rejects a foreign signature", func(t *testing.T) {
		token, err := NewAccessToken("some-other-secret-key-32-bytes-long!", user, 60)
		require.NoError(t, err)

		_, err = ParseToken(tokenTestSecret, "Bearer "+token, true)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := NewAccessToken(tokenTestSecret, user, -1)
		require.NoError(t, err)

		_, err = ParseToken(tokenTestSecret, "Bearer "+token, true)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ParseToken(tokenTestSecret, "Bearer not.a.token", true)
		assert.Error(t, err)
	})
}

func TestLinkTokenAudience(t *testing.T) {
	user := &models.User{ID: 9, Username: "doctor"}

	token, err := NewLinkToken(tokenTestSecret, user, configuration.MessengerTelegram)
	require.NoError(t, err)

	claims, err := ParseToken(tokenTestSecret, token, false)
	require.NoError(t, err)
	assert.Equal(t, "auth:link:telegram", claims.Aud)

	// A link token must never be usable as a session token.
	_, err = ParseAccessToken(tokenTestSecret, "Bearer "+token)
	assert.Error(t, err)
}

func TestCreateHash(t *testing.T) {
	hash, err := CreateHash("correct-password")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-password", hash)

	match, err := argon2id.ComparePasswordAndHash("correct-password", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = argon2id.ComparePasswordAndHash("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, match)
}
