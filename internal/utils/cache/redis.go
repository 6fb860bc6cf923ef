package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"foodgram/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	blacklistPrefix = "foodgram:token:revoked:"

	ErrorFailedToRevoke = "failed to revoke token in redis"
	ErrorFailedToCheck  = "failed to check token in redis"
)

type (
	// TokenBlacklist remembers revoked token ids until the tokens expire.
	TokenBlacklist interface {
		Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
		IsRevoked(ctx context.Context, tokenID string) (bool, error)
	}

	redisBlacklist struct {
		client *redis.Client
	}
)

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func NewTokenBlacklist(client *redis.Client) TokenBlacklist {
	return &redisBlacklist{client: client}
}

func (b *redisBlacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	// already expired, nothing to remember
	if ttl <= 0 {
		return nil
	}

	if err := b.client.Set(ctx, blacklistPrefix+tokenID, 1, ttl).Err(); err != nil {
		logger.Log(ctx).Error(ctx, ErrorFailedToRevoke, zap.String("token_id", tokenID), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrorFailedToRevoke, err)
	}
	return nil
}

func (b *redisBlacklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := b.client.Get(ctx, blacklistPrefix+tokenID).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		logger.Log(ctx).Error(ctx, ErrorFailedToCheck, zap.String("token_id", tokenID), zap.Error(err))
		return false, fmt.Errorf("%s: %w", ErrorFailedToCheck, err)
	}
}
