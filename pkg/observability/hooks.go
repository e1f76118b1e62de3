// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about rendering dispatch, cache operations, and publishing.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDisplayHooks(&myDisplayHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Display().OnRenderStart(ctx, typeName, kind)
//	// ... dispatch ...
//	observability.Display().OnRenderComplete(ctx, typeName, kind, source, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Source identifies which dispatch path produced a representation.
type Source string

// Dispatch sources reported by OnRenderComplete. The full-control display
// hook has its own callback (OnDisplayHook) and never flows through per-kind
// dispatch, so it has no Source.
const (
	SourceRegistry  Source = "registry"  // type-registered renderer function
	SourceIntrinsic Source = "intrinsic" // object's own per-kind method
	SourceFallback  Source = "fallback"  // textual fallback representation
	SourceAbsent    Source = "absent"    // no representation available
)

// =============================================================================
// Display Hooks
// =============================================================================

// DisplayHooks receives events from the rendering dispatcher.
type DisplayHooks interface {
	// OnRenderStart records the beginning of a single-kind dispatch.
	OnRenderStart(ctx context.Context, typeName, kind string)

	// OnRenderComplete records the outcome of a single-kind dispatch.
	OnRenderComplete(ctx context.Context, typeName, kind string, source Source, duration time.Duration, err error)

	// OnDisplayHook records invocation of an object's full-control hook.
	OnDisplayHook(ctx context.Context, typeName string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Publish Hooks
// =============================================================================

// PublishHooks receives events when representations are handed to a sink.
type PublishHooks interface {
	// OnPublish records a representation handed to a publisher.
	OnPublish(ctx context.Context, kind string, size int)

	// OnPublishError records a failed publish.
	OnPublishError(ctx context.Context, kind string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDisplayHooks is a no-op implementation of DisplayHooks.
type NoopDisplayHooks struct{}

func (NoopDisplayHooks) OnRenderStart(context.Context, string, string) {}
func (NoopDisplayHooks) OnRenderComplete(context.Context, string, string, Source, time.Duration, error) {
}
func (NoopDisplayHooks) OnDisplayHook(context.Context, string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopPublishHooks is a no-op implementation of PublishHooks.
type NoopPublishHooks struct{}

func (NoopPublishHooks) OnPublish(context.Context, string, int)        {}
func (NoopPublishHooks) OnPublishError(context.Context, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	displayHooks DisplayHooks = NoopDisplayHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	publishHooks PublishHooks = NoopPublishHooks{}
	hooksMu      sync.RWMutex
)

// SetDisplayHooks registers custom display hooks.
// This should be called once at application startup before any dispatch.
func SetDisplayHooks(h DisplayHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		displayHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetPublishHooks registers custom publish hooks.
// This should be called once at application startup before any publishing.
func SetPublishHooks(h PublishHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		publishHooks = h
	}
}

// Display returns the registered display hooks.
func Display() DisplayHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return displayHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Publish returns the registered publish hooks.
func Publish() PublishHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return publishHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	displayHooks = NoopDisplayHooks{}
	cacheHooks = NoopCacheHooks{}
	publishHooks = NoopPublishHooks{}
}
