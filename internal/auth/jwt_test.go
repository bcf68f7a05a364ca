package auth

import (
	"testing"

	"dastawez_backend/internal/config"
	"dastawez_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, ttlMinutes int) {
	t.Helper()
	old := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = old })
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig(t, 60)

	token, err := GenerateToken("user-1", "asha@example.com", models.AppRoleAdmin)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, models.AppRoleAdmin, claims.Role)
	assert.True(t, IsAdmin(claims))
}

func TestParseToken_RejectsTamperedToken(t *testing.T) {
	setTestConfig(t, 60)

	token, err := GenerateToken("user-1", "asha@example.com", models.AppRoleUser)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}

func TestParseToken_RejectsExpiredToken(t *testing.T) {
	setTestConfig(t, -1)

	token, err := GenerateToken("user-1", "asha@example.com", models.AppRoleUser)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestIsAdmin_FalseForPlainUser(t *testing.T) {
	setTestConfig(t, 60)

	token, err := GenerateToken("user-2", "ravi@example.com", models.AppRoleUser)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.False(t, IsAdmin(claims))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)
	assert.True(t, CheckPasswordHash("secret-password", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long-enough"))
}
