package auth

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herenow/config"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresAccessSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})

	assert.Nil(t, svc)
	assert.Error(t, err)
}

func TestNewJWTService_UsesConfiguredTTLs(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	impl := svc.(*jwtService)
	assert.Equal(t, time.Minute, impl.accessTTL)
	assert.Equal(t, time.Hour, impl.refreshTTL)
}

func TestJWTService_TokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(userID, "test@example.com", "Test User")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "issuer-secret")
	verifier := newTestJWTService(t, "different-secret")

	pair, err := issuer.GenerateTokenPair(uuid.New(), "test@example.com", "Test User")
	require.NoError(t, err)

	claims, err := verifier.ValidateAccessToken(pair.AccessToken)

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	claims, err := svc.ValidateAccessToken("not.a.jwt")

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_RefreshTokenIsOpaque(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	pair, err := svc.GenerateTokenPair(uuid.New(), "test@example.com", "Test User")
	require.NoError(t, err)

	// 32 random bytes hex encoded, and never a parseable access token.
	assert.Len(t, pair.RefreshToken, 64)
	_, err = hex.DecodeString(pair.RefreshToken)
	assert.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_HashRefreshTokenIsDeterministic(t *testing.T) {
	svc := newTestJWTService(t, "test-secret")

	first := svc.HashRefreshToken("some-refresh-token")
	second := svc.HashRefreshToken("some-refresh-token")
	other := svc.HashRefreshToken("another-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Len(t, first, 64)
}
