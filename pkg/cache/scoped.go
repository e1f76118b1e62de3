package cache

import "github.com/vitrine-dev/vitrine/pkg/mime"

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// Different users or contexts get separate cache namespaces while sharing
// one backend.
//
// Example usage:
//
//	// User-specific keys
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RenderKey generates a prefixed key for a rendered representation.
func (k *ScopedKeyer) RenderKey(typeName, fingerprint string, kind mime.Kind) string {
	return k.prefix + k.inner.RenderKey(typeName, fingerprint, kind)
}
