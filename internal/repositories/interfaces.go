package repositories

import (
	"context"
	"time"
)

// ResultCacheRepositoryInterface stores derived portfolio results keyed by
// a content hash of the request. A miss is reported as found == false with
// a nil error.
type ResultCacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
}
