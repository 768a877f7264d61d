// Package redisstate keeps short-lived verification state in Redis.
package redisstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/adithya2152/devconnect/internal/repository"
)

// RedisOTPRepository stores hashed one-time codes under a prefixed key with
// a TTL, so expiry never needs an explicit sweep.
type RedisOTPRepository struct {
	client    *redis.Client
	keyPrefix string
}

func NewRedisOTPRepository(client *redis.Client, keyPrefix string) *RedisOTPRepository {
	if client == nil {
		panic("redis client cannot be nil for RedisOTPRepository")
	}
	if keyPrefix == "" {
		keyPrefix = "dc:"
	}
	return &RedisOTPRepository{client: client, keyPrefix: keyPrefix}
}

func (r *RedisOTPRepository) otpKey(email string) string {
	return fmt.Sprintf("%sotp:%s", r.keyPrefix, email)
}

func (r *RedisOTPRepository) Store(ctx context.Context, email, hashedCode string, ttl time.Duration) error {
	key := r.otpKey(email)
	if err := r.client.Set(ctx, key, hashedCode, ttl).Err(); err != nil {
		return fmt.Errorf("redis: store otp for %s: %w", email, err)
	}
	return nil
}

func (r *RedisOTPRepository) Get(ctx context.Context, email string) (string, error) {
	key := r.otpKey(email)
	hash, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrOTPNotFound
		}
		return "", fmt.Errorf("redis: get otp for %s: %w", email, err)
	}
	return hash, nil
}

func (r *RedisOTPRepository) Delete(ctx context.Context, email string) error {
	if err := r.client.Del(ctx, r.otpKey(email)).Err(); err != nil {
		return fmt.Errorf("redis: delete otp for %s: %w", email, err)
	}
	return nil
}
