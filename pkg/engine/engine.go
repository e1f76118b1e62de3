// Package engine runs the rendering dispatch with caching and publishing.
//
// The engine is the piece CLI and API share: it validates options, renders
// the requested kinds through a display.Registry, caches payloads for
// objects exposing a content fingerprint, and hands results to a publisher.
// By centralizing this logic, both entry points behave identically.
//
// # Usage
//
//	runner := engine.NewRunner(cache, nil, display.Default(), logger)
//	result, err := runner.Execute(ctx, objects.NewCircle(2), engine.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Bundle[mime.KindHTML]
//
// The dispatcher itself never caches; engine caching is keyed on the
// object's own fingerprint, so only objects declaring stable content
// participate. Objects implementing the full-control display hook skip the
// engine's render path entirely.
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vitrine-dev/vitrine/pkg/errors"
	"github.com/vitrine-dev/vitrine/pkg/mime"
)

// Fingerprinter is implemented by objects whose rendered payloads may be
// cached. The fingerprint must change whenever the rendered output would.
type Fingerprinter interface {
	Fingerprint() string
}

// Options configures one engine run.
// The struct supports JSON serialization for API requests.
type Options struct {
	// Kinds lists the kinds to render. Empty means all known kinds.
	Kinds []mime.Kind `json:"kinds,omitempty"`

	// Refresh bypasses the cache and re-renders every kind.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of an engine run.
type Result struct {
	// Bundle holds the rendered payloads, one per available kind.
	Bundle mime.Bundle

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks how many kinds were served from cache.
	CacheInfo CacheInfo
}

// Stats contains engine execution statistics.
type Stats struct {
	RenderTime time.Duration
	KindCount  int // kinds with an available representation
}

// CacheInfo tracks cache behavior across one run.
type CacheInfo struct {
	Hits   int // kinds served from cache
	Misses int // kinds rendered fresh
}

// ValidateAndSetDefaults checks the requested kinds and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	for _, k := range o.Kinds {
		if !k.IsKnown() {
			return errors.New(errors.ErrCodeInvalidKind, "unknown kind: %s", k)
		}
	}
	if len(o.Kinds) == 0 {
		o.Kinds = mime.Known
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
