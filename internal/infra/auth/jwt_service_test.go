package auth

import (
	"testing"
	"time"

	"chorechart/config"
	"chorechart/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTTL:  time.Hour,
			RefreshTTL: 48 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"KID"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't have roles
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_UsesConfiguredTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Hour, jwtService.GetAccessTokenDuration())
	assert.Equal(t, 48*time.Hour, jwtService.GetRefreshTokenDuration())
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	_, first, err := jwtService.GenerateTokens(userID, nil)
	require.NoError(t, err)
	_, second, err := jwtService.GenerateTokens(userID, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, ErrInvalidToken))
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_ForeignSecretRejected(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": service.TokenTypeAccess,
	})
	signed, err := token.SignedString([]byte("someone-else"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	access, err := impl.GenerateAccessToken(uuid.New(), []string{"PARENT"})
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(access)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
