package jwt

import (
	"context"
	"testing"
	"time"

	"foodgram/domain"
	"foodgram/internal/utils/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) JWTService {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client, err := cache.NewRedisClient(context.Background(), s.Addr(), "", 0)
	require.NoError(t, err)

	return NewJWTService("secret", "FOODGRAM", time.Hour, cache.NewTokenBlacklist(client))
}

func TestUserToken_RoundTrip(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	token, err := svc.GenerateTokenUser("user-1")
	require.NoError(t, err)

	userID, err := svc.GetUserIDByToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestUserToken_Revoked(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	token, err := svc.GenerateTokenUser("user-1")
	require.NoError(t, err)
	other, err := svc.GenerateTokenUser("user-1")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(ctx, token))

	_, err = svc.GetUserIDByToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrTokenRevoked)

	userID, err := svc.GetUserIDByToken(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestUserToken_Expired(t *testing.T) {
	svc := NewJWTService("secret", "FOODGRAM", -time.Minute, nil)

	token, err := svc.GenerateTokenUser("user-1")
	require.NoError(t, err)

	_, err = svc.GetUserIDByToken(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestUserToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("other", "FOODGRAM", time.Hour, nil).GenerateTokenUser("user-1")
	require.NoError(t, err)

	_, err = NewJWTService("secret", "FOODGRAM", time.Hour, nil).GetUserIDByToken(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestForgetPasswordToken(t *testing.T) {
	svc := NewJWTService("secret", "FOODGRAM", time.Hour, nil)

	token, err := svc.GenerateTokenForgetPassword(map[string]any{"user_id": "user-1"}, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateTokenForgetPassword(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])

	// a login token is not a reset token
	login, err := svc.GenerateTokenUser("user-1")
	require.NoError(t, err)
	_, err = svc.ValidateTokenForgetPassword(login)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	expired, err := svc.GenerateTokenForgetPassword(map[string]any{"user_id": "user-1"}, -time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateTokenForgetPassword(expired)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
