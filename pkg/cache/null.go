package cache

import (
	"context"
	"time"
)

// NullCache discards every payload and reports every lookup as a miss.
// It backs the "off" cache backend, so the engine re-renders each kind on
// every run without any special-casing at the call sites.
type NullCache struct{}

// NewNullCache creates a cache that never stores anything.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get reports a miss for every key.
func (*NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the payload.
func (*NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op.
func (*NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op.
func (*NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
