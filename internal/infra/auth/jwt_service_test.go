package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealkit/config"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	return cfg
}

func TestJWTServiceRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "user@example.com", []string{"user"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, []string{"user"}, claims.Roles)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("secret-a"))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("secret-b"))
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), "user@example.com", []string{"user"})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}
