package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "thisisasecretkeythatisatleast32charslong!!"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 60,
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32")
	})

	t.Run("non-positive lifetime", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret})
		require.Error(t, err)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, err := newHMACJWTService(testSecret, time.Hour, fixedClock(now))
	require.NoError(t, err)

	ctx := context.Background()
	token, expiresAt, err := svc.GenerateToken(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Errors(t *testing.T) {
	t.Parallel()

	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer, err := newHMACJWTService(testSecret, time.Hour, fixedClock(issued))
	require.NoError(t, err)

	token, _, err := issuer.GenerateToken(context.Background(), "user-1")
	require.NoError(t, err)

	otherKey, err := newHMACJWTService(strings.Repeat("x", 40), time.Hour, fixedClock(issued))
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		service *hmacJWTService
		token   string
		want    error
	}{
		{
			name:    "missing token",
			service: issuer,
			token:   "",
			want:    ErrMissingToken,
		},
		{
			name:    "malformed token",
			service: issuer,
			token:   "not.a.token",
			want:    ErrInvalidToken,
		},
		{
			name:    "wrong signing key",
			service: otherKey,
			token:   token,
			want:    ErrInvalidToken,
		},
		{
			name:    "unsigned token",
			service: issuer,
			token:   noneToken,
			want:    ErrInvalidToken,
		},
		{
			name:    "expired beyond clock skew",
			service: mustService(t, fixedClock(issued.Add(time.Hour+3*time.Minute))),
			token:   token,
			want:    ErrExpiredToken,
		},
		{
			name:    "not yet issued",
			service: mustService(t, fixedClock(issued.Add(-10*time.Minute))),
			token:   token,
			want:    ErrTokenNotYetValid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			claims, err := tc.service.ValidateToken(context.Background(), tc.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateToken_WithinClockSkew(t *testing.T) {
	t.Parallel()

	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer, err := newHMACJWTService(testSecret, time.Hour, fixedClock(issued))
	require.NoError(t, err)
	token, _, err := issuer.GenerateToken(context.Background(), "user-1")
	require.NoError(t, err)

	late := mustService(t, fixedClock(issued.Add(time.Hour+time.Minute)))
	claims, err := late.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func mustService(t *testing.T, clock func() time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(testSecret, time.Hour, clock)
	require.NoError(t, err)
	return svc
}
