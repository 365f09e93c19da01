package repositories

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// memoryResultCache implements ResultCacheRepositoryInterface in process on
// an expiring LRU. Used when no Redis address is configured.
type memoryResultCache struct {
	entries *expirable.LRU[string, memoryEntry]
	now     func() time.Time
}

// NewMemoryResultCache creates an in-process cache holding at most
// maxEntries results, evicting the least recently used first. No entry
// outlives maxTTL; a zero maxTTL leaves expiry to the ttl passed to Set.
func NewMemoryResultCache(maxEntries int, maxTTL time.Duration) ResultCacheRepositoryInterface {
	return newMemoryResultCache(maxEntries, maxTTL, time.Now)
}

func newMemoryResultCache(maxEntries int, maxTTL time.Duration, now func() time.Time) *memoryResultCache {
	return &memoryResultCache{
		entries: expirable.NewLRU[string, memoryEntry](maxEntries, nil, maxTTL),
		now:     now,
	}
}

// Get returns a copy of the cached value if it has not expired
func (m *memoryResultCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	entry, ok := m.entries.Get(key)
	if !ok {
		return nil, false, nil
	}

	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		m.entries.Remove(key)
		return nil, false, nil
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, true, nil
}

// Set stores a copy of value. A zero ttl falls back to the cache-wide limit.
func (m *memoryResultCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	entry := memoryEntry{value: stored}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.entries.Add(key, entry)
	return nil
}

// Ping always succeeds
func (m *memoryResultCache) Ping(_ context.Context) error {
	return nil
}
