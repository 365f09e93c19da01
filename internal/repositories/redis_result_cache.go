package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisResultCache implements ResultCacheRepositoryInterface on Redis
type redisResultCache struct {
	client *redis.Client
}

// NewRedisResultCache creates a result cache backed by an existing client
func NewRedisResultCache(client *redis.Client) ResultCacheRepositoryInterface {
	return &redisResultCache{
		client: client,
	}
}

// Get fetches a cached result. redis.Nil is a miss, not an error.
func (r *redisResultCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cached result: %w", err)
	}

	return val, true, nil
}

// Set stores a result. A zero ttl keeps the key until evicted.
func (r *redisResultCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache result: %w", err)
	}

	return nil
}

// Ping checks the Redis connection
func (r *redisResultCache) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}

	return nil
}
