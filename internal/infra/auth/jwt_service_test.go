package auth

import (
	"testing"

	"capsule/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID, []string{"customer", "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"customer", "admin"}, claims.Roles)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_RefreshTokenOmitsRoles(t *testing.T) {
	svc := newTestTokenService(t)

	_, refresh, err := svc.GenerateTokens(uuid.New(), []string{"customer", "admin"})
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Empty(t, claims.Roles)
	assert.Equal(t, "refresh", claims.Type)
}

func TestJWTService_RejectsCrossTypeUse(t *testing.T) {
	svc := newTestTokenService(t)

	access, refresh, err := svc.GenerateTokens(uuid.New(), []string{"customer"})
	require.NoError(t, err)

	// A refresh token must not pass as an access token and vice versa; the
	// two are signed with different secrets.
	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t)

	access, _, err := svc.GenerateTokens(uuid.New(), []string{"customer"})
	require.NoError(t, err)

	tampered := access[:len(access)-2] + "xx"

	_, err = svc.ValidateAccessToken(tampered)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
