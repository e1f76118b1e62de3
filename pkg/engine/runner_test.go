package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vitrine-dev/vitrine/pkg/cache"
	"github.com/vitrine-dev/vitrine/pkg/display"
	vitrineerrors "github.com/vitrine-dev/vitrine/pkg/errors"
	"github.com/vitrine-dev/vitrine/pkg/mime"
	"github.com/vitrine-dev/vitrine/pkg/publish"
)

// countingObject renders HTML through an intrinsic and counts invocations.
// Its fingerprint is stable, so the engine may cache its payloads.
type countingObject struct {
	id      string
	renders *int
}

func (o countingObject) RenderHTML() ([]byte, error) {
	*o.renders++
	return fmt.Appendf(nil, "<b>%s</b>", o.id), nil
}

func (o countingObject) String() string { return o.id }

func (o countingObject) Fingerprint() string { return "fp-" + o.id }

// volatileObject has no fingerprint, so it must never be cached.
type volatileObject struct {
	renders *int
}

func (o volatileObject) RenderHTML() ([]byte, error) {
	*o.renders++
	return []byte("<i>volatile</i>"), nil
}

// hooked takes full control of its display.
type hooked struct{}

func (hooked) Display(ctx context.Context, pub publish.Publisher) error {
	return pub.Publish(ctx, mime.Representation{Kind: mime.KindText, Data: []byte("hooked")})
}

func TestExecuteCachesByFingerprint(t *testing.T) {
	renders := 0
	obj := countingObject{id: "a", renders: &renders}
	runner := NewRunner(cache.NewMemoryCache(), nil, display.NewRegistry(), nil)
	ctx := context.Background()

	first, err := runner.Execute(ctx, obj, Options{Kinds: []mime.Kind{mime.KindHTML}})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if first.CacheInfo.Hits != 0 || first.CacheInfo.Misses != 1 {
		t.Errorf("first run cache info = %+v", first.CacheInfo)
	}

	second, err := runner.Execute(ctx, obj, Options{Kinds: []mime.Kind{mime.KindHTML}})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if second.CacheInfo.Hits != 1 {
		t.Errorf("second run should hit cache: %+v", second.CacheInfo)
	}
	if renders != 1 {
		t.Errorf("renders = %d, want 1 (second run served from cache)", renders)
	}
	if !bytes.Equal(first.Bundle[mime.KindHTML], second.Bundle[mime.KindHTML]) {
		t.Error("cached payload should be bit-identical")
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	renders := 0
	obj := countingObject{id: "a", renders: &renders}
	runner := NewRunner(cache.NewMemoryCache(), nil, display.NewRegistry(), nil)
	ctx := context.Background()

	opts := Options{Kinds: []mime.Kind{mime.KindHTML}}
	if _, err := runner.Execute(ctx, obj, opts); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if _, err := runner.Execute(ctx, obj, Options{Kinds: []mime.Kind{mime.KindHTML}, Refresh: true}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if renders != 2 {
		t.Errorf("renders = %d, want 2 (refresh re-renders)", renders)
	}
}

func TestExecuteSkipsCacheWithoutFingerprint(t *testing.T) {
	renders := 0
	obj := volatileObject{renders: &renders}
	runner := NewRunner(cache.NewMemoryCache(), nil, display.NewRegistry(), nil)
	ctx := context.Background()

	opts := Options{Kinds: []mime.Kind{mime.KindHTML}}
	for i := 0; i < 2; i++ {
		result, err := runner.Execute(ctx, obj, Options{Kinds: opts.Kinds})
		if err != nil {
			t.Fatalf("Execute error: %v", err)
		}
		if result.CacheInfo.Hits != 0 {
			t.Errorf("run %d should not hit cache: %+v", i, result.CacheInfo)
		}
	}
	if renders != 2 {
		t.Errorf("renders = %d, want 2 (no fingerprint, no caching)", renders)
	}
}

func TestExecuteAllKindsByDefault(t *testing.T) {
	renders := 0
	obj := countingObject{id: "x", renders: &renders}
	runner := NewRunner(nil, nil, display.NewRegistry(), nil)

	result, err := runner.Execute(context.Background(), obj, Options{})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	// HTML intrinsic plus text fallback
	if result.Stats.KindCount != 2 {
		t.Errorf("KindCount = %d, want 2 (%v)", result.Stats.KindCount, result.Bundle.Kinds())
	}
	if string(result.Bundle[mime.KindText]) != "x" {
		t.Errorf("text payload = %q", result.Bundle[mime.KindText])
	}
}

func TestExecuteInvalidKind(t *testing.T) {
	runner := NewRunner(nil, nil, display.NewRegistry(), nil)

	_, err := runner.Execute(context.Background(), 1, Options{Kinds: []mime.Kind{"application/x-bogus"}})
	if !vitrineerrors.Is(err, vitrineerrors.ErrCodeInvalidKind) {
		t.Errorf("error = %v, want INVALID_KIND", err)
	}
}

func TestExecuteRejectsDisplayer(t *testing.T) {
	runner := NewRunner(nil, nil, display.NewRegistry(), nil)

	_, err := runner.Execute(context.Background(), hooked{}, Options{})
	if !errors.Is(err, display.ErrSelfDisplaying) {
		t.Errorf("error = %v, want ErrSelfDisplaying", err)
	}
}

func TestDisplayHookPath(t *testing.T) {
	runner := NewRunner(nil, nil, display.NewRegistry(), nil)
	sink := publish.NewCapture()

	if err := runner.Display(context.Background(), hooked{}, sink, Options{}); err != nil {
		t.Fatalf("Display error: %v", err)
	}
	reps := sink.Representations()
	if len(reps) != 1 || string(reps[0].Data) != "hooked" {
		t.Errorf("published = %v, want only hook output", reps)
	}
}

func TestDisplayPublishesBundle(t *testing.T) {
	renders := 0
	obj := countingObject{id: "y", renders: &renders}
	runner := NewRunner(nil, nil, display.NewRegistry(), nil)
	sink := publish.NewCapture()

	if err := runner.Display(context.Background(), obj, sink, Options{}); err != nil {
		t.Fatalf("Display error: %v", err)
	}
	bundle := sink.Bundle()
	if string(bundle[mime.KindHTML]) != "<b>y</b>" {
		t.Errorf("HTML payload = %q", bundle[mime.KindHTML])
	}
	if string(bundle[mime.KindText]) != "y" {
		t.Errorf("text payload = %q", bundle[mime.KindText])
	}
}

// ttlRecordingCache records the TTL of every Set.
type ttlRecordingCache struct {
	cache.Cache
	ttls []time.Duration
}

func newTTLRecordingCache() *ttlRecordingCache {
	return &ttlRecordingCache{Cache: cache.NewMemoryCache()}
}

func (c *ttlRecordingCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.ttls = append(c.ttls, ttl)
	return c.Cache.Set(ctx, key, data, ttl)
}

func TestExecuteUsesConfiguredTTL(t *testing.T) {
	renders := 0
	obj := countingObject{id: "t", renders: &renders}
	ctx := context.Background()
	kinds := Options{Kinds: []mime.Kind{mime.KindHTML, mime.KindText}}

	// Default lifetime when no TTL is configured
	rec := newTTLRecordingCache()
	runner := NewRunner(rec, nil, display.NewRegistry(), nil)
	if _, err := runner.Execute(ctx, obj, kinds); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(rec.ttls) != 2 {
		t.Fatalf("cache writes = %d, want 2", len(rec.ttls))
	}
	for _, ttl := range rec.ttls {
		if ttl != cache.TTLRender {
			t.Errorf("default TTL = %v, want %v", ttl, cache.TTLRender)
		}
	}

	// Configured lifetime reaches every cache write
	rec = newTTLRecordingCache()
	runner = NewRunner(rec, nil, display.NewRegistry(), nil)
	runner.TTL = 90 * time.Second
	if _, err := runner.Execute(ctx, obj, Options{Kinds: kinds.Kinds}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(rec.ttls) != 2 {
		t.Fatalf("cache writes = %d, want 2", len(rec.ttls))
	}
	for _, ttl := range rec.ttls {
		if ttl != 90*time.Second {
			t.Errorf("configured TTL = %v, want 90s", ttl)
		}
	}
}

func TestRenderErrorSurfaced(t *testing.T) {
	reg := display.NewRegistry()
	sentinel := errors.New("renderer broke")
	display.Register(reg, mime.KindJSON, func(v int) ([]byte, error) {
		return nil, sentinel
	})
	runner := NewRunner(nil, nil, reg, nil)

	_, err := runner.Execute(context.Background(), 7, Options{Kinds: []mime.Kind{mime.KindJSON}})
	if !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want renderer error surfaced", err)
	}
}
