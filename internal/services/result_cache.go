package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"debt-tracker/internal/repositories"

	"github.com/cespare/xxhash/v2"
	"github.com/sony/gobreaker"
)

const cacheKeyPrefix = "debt"

type ResultCacheConfig struct {
	TTL              time.Duration
	OperationTimeout time.Duration
	Breaker          CircuitBreakerConfig
}

type resultCache struct {
	repo    repositories.ResultCacheRepositoryInterface
	breaker *gobreaker.CircuitBreaker
	config  ResultCacheConfig
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewResultCache wraps a cache repository with JSON encoding, content-hash
// keys and a circuit breaker
func NewResultCache(
	repo repositories.ResultCacheRepositoryInterface,
	config ResultCacheConfig,
	metrics MetricsRecorderInterface,
) ResultCacheInterface {
	return &resultCache{
		repo:    repo,
		breaker: NewCircuitBreaker("result_cache", config.Breaker, metrics),
		config:  config,
		metrics: metrics,
		logger:  slog.Default(),
	}
}

// CacheKey derives the cache key for an operation over input:
// debt:<operation>:<xxhash64 of the input's JSON>
func CacheKey(operation string, input interface{}) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key input: %w", err)
	}
	return fmt.Sprintf("%s:%s:%016x", cacheKeyPrefix, operation, xxhash.Sum64(payload)), nil
}

func (c *resultCache) Load(ctx context.Context, operation string, input interface{}, dest interface{}) bool {
	key, err := CacheKey(operation, input)
	if err != nil {
		c.recordError(operation, "encode_key", err)
		return false
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	raw, err := c.breaker.Execute(func() (interface{}, error) {
		value, found, err := c.repo.Get(ctx, key)
		if err != nil || !found {
			return nil, err
		}
		return value, nil
	})
	if err != nil {
		c.recordError(operation, "get", err)
		return false
	}

	value, ok := raw.([]byte)
	if !ok {
		c.metrics.IncrementCounter(MetricCacheMiss, map[string]string{"operation": operation})
		return false
	}

	if err := json.Unmarshal(value, dest); err != nil {
		c.recordError(operation, "decode", err)
		return false
	}

	c.metrics.IncrementCounter(MetricCacheHit, map[string]string{"operation": operation})
	return true
}

func (c *resultCache) Store(ctx context.Context, operation string, input interface{}, value interface{}) {
	key, err := CacheKey(operation, input)
	if err != nil {
		c.recordError(operation, "encode_key", err)
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.recordError(operation, "encode", err)
		return
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, c.repo.Set(ctx, key, payload, c.config.TTL)
	})
	if err != nil {
		c.recordError(operation, "set", err)
	}
}

// Healthy pings the backing store, failing fast while the breaker is open
func (c *resultCache) Healthy(ctx context.Context) error {
	if c.breaker.State() == gobreaker.StateOpen {
		return gobreaker.ErrOpenState
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	return c.repo.Ping(ctx)
}

func (c *resultCache) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.config.OperationTimeout)
}

func (c *resultCache) recordError(operation, stage string, err error) {
	c.logger.Warn("result cache degraded, computing directly",
		"operation", operation,
		"stage", stage,
		"error", err.Error(),
	)
	c.metrics.IncrementCounter(MetricCacheError, map[string]string{"operation": operation})
}
