// Package cache provides pluggable byte caching for rendered payloads.
//
// The engine uses a Cache to avoid re-rendering expensive representations
// for objects that expose a stable content fingerprint. Backends include
// an in-memory map, a file-based cache for CLI usage, a Redis cache for
// multi-instance deployments, and a no-op cache for disabling caching.
//
// Keys are produced by a Keyer so all backends share one namespace scheme
// and multi-tenant deployments can prefix keys with a ScopedKeyer.
package cache

import (
	"context"
	"time"

	"github.com/vitrine-dev/vitrine/pkg/mime"
)

// Default TTLs for cached payloads.
const (
	// TTLRender is the default lifetime for rendered representation payloads.
	TTLRender = 24 * time.Hour

	// TTLForever disables expiration for a cached entry.
	TTLForever = time.Duration(0)
)

// Cache is the interface for byte cache backends.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for rendered payloads.
type Keyer interface {
	// RenderKey generates a key for one rendered representation of an
	// object, identified by its type name and content fingerprint.
	RenderKey(typeName, fingerprint string, kind mime.Kind) string
}

// DefaultKeyer is the standard key scheme: a "render:" namespace followed
// by a hash of the identifying components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates a key for a rendered representation.
func (k *DefaultKeyer) RenderKey(typeName, fingerprint string, kind mime.Kind) string {
	return hashKey("render", typeName, fingerprint, string(kind))
}
