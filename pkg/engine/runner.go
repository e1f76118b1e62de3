package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vitrine-dev/vitrine/pkg/cache"
	"github.com/vitrine-dev/vitrine/pkg/display"
	"github.com/vitrine-dev/vitrine/pkg/mime"
	"github.com/vitrine-dev/vitrine/pkg/observability"
	"github.com/vitrine-dev/vitrine/pkg/publish"
)

// cacheKeyType labels engine payload cache operations in hooks.
const cacheKeyType = "render"

// Runner executes rendering dispatch with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, registry, and logger - it
// doesn't store render results. Multiple goroutines can safely use the same
// Runner with different objects.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Registry *display.Registry
	Logger   *log.Logger

	// TTL is the lifetime for cached payloads. Zero means cache.TTLRender.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache, keyer, and registry.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If registry is nil, the process-wide default registry is used.
func NewRunner(c cache.Cache, keyer cache.Keyer, reg *display.Registry, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if reg == nil {
		reg = display.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Registry: reg,
		Logger:   logger,
	}
}

// Execute renders every requested kind for obj, serving cached payloads
// where possible.
//
// Objects implementing the full-control hook cannot be rendered per kind;
// Execute returns display.ErrSelfDisplaying for them, and callers should use
// Display instead.
func (r *Runner) Execute(ctx context.Context, obj any, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	if _, ok := obj.(display.Displayer); ok {
		return nil, display.ErrSelfDisplaying
	}

	result := &Result{Bundle: make(mime.Bundle)}
	start := time.Now()

	for _, kind := range opts.Kinds {
		data, ok, hit, err := r.renderKind(ctx, obj, kind, opts.Refresh)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", kind, err)
		}
		if !ok {
			continue
		}
		result.Bundle[kind] = data
		if hit {
			result.CacheInfo.Hits++
		} else {
			result.CacheInfo.Misses++
		}
	}

	result.Stats.RenderTime = time.Since(start)
	result.Stats.KindCount = len(result.Bundle)

	logger.Info("rendered representations",
		"type", display.TypeName(obj),
		"kinds", result.Stats.KindCount,
		"cached", result.CacheInfo.Hits,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderKind produces one kind's payload, consulting the cache for objects
// with a stable fingerprint. The third return value reports a cache hit.
func (r *Runner) renderKind(ctx context.Context, obj any, kind mime.Kind, refresh bool) ([]byte, bool, bool, error) {
	fp, cacheable := obj.(Fingerprinter)

	var key string
	if cacheable {
		key = r.Keyer.RenderKey(display.TypeName(obj), fp.Fingerprint(), kind)
		if !refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, cacheKeyType)
				return data, true, true, nil
			}
			observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		}
	}

	rep, ok, err := r.Registry.Render(ctx, obj, kind)
	if err != nil || !ok {
		return nil, ok, false, err
	}

	if cacheable {
		if err := r.Cache.Set(ctx, key, rep.Data, r.payloadTTL()); err == nil {
			observability.Cache().OnCacheSet(ctx, cacheKeyType, len(rep.Data))
		}
	}

	return rep.Data, true, false, nil
}

// payloadTTL returns the configured payload lifetime, defaulting to
// cache.TTLRender.
func (r *Runner) payloadTTL() time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return cache.TTLRender
}

// Display renders obj and hands every available representation to pub.
//
// Objects implementing the full-control hook are given the sink directly and
// the engine performs no per-kind rendering or caching for them. All other
// objects go through Execute, so their payloads hit the cache as usual.
func (r *Runner) Display(ctx context.Context, obj any, pub publish.Publisher, opts Options) error {
	if _, ok := obj.(display.Displayer); ok {
		return r.Registry.Display(ctx, obj, pub)
	}

	result, err := r.Execute(ctx, obj, opts)
	if err != nil {
		return err
	}
	for _, rep := range result.Bundle.Representations() {
		if err := pub.Publish(ctx, rep); err != nil {
			return fmt.Errorf("publish %s: %w", rep.Kind, err)
		}
	}
	return nil
}

// logger returns the per-run logger, falling back to the runner's own.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
