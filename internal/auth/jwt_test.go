// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AaryaRajwade/SE-RMS/internal/config"
	"github.com/AaryaRajwade/SE-RMS/internal/core"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:      "0123456789abcdef0123456789abcdef",
		TokenExpire: time.Hour,
		Issuer:      "se-rms",
		Audience:    "se-rms-api",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	signed, err := manager.CreateToken(TokenClaims{
		UserID:   "user-1",
		Username: "aarya",
		Role:     "admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := manager.VerifyToken(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "aarya", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.TokenExpire = -time.Hour

	manager, err := NewTokenManager(cfg)
	require.NoError(t, err)

	signed, err := manager.CreateToken(TokenClaims{
		UserID:   "user-1",
		Username: "aarya",
		Role:     "user",
	})
	require.NoError(t, err)

	_, err = manager.VerifyToken(context.Background(), signed)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	signed, err := manager.CreateToken(TokenClaims{
		UserID:   "user-1",
		Username: "aarya",
		Role:     "user",
	})
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "ffffffffffffffffffffffffffffffff"

	other, err := NewTokenManager(otherCfg)
	require.NoError(t, err)

	_, err = other.VerifyToken(context.Background(), signed)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyTokenTampered(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	signed, err := manager.CreateToken(TokenClaims{
		UserID:   "user-1",
		Username: "aarya",
		Role:     "user",
	})
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"

	_, err = manager.VerifyToken(context.Background(), tampered)
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerifyTokenGarbage(t *testing.T) {
	manager, err := NewTokenManager(testJWTConfig())
	require.NoError(t, err)

	_, err = manager.VerifyToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}
