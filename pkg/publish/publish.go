// Package publish delivers finished representations to an output sink.
//
// A Publisher is the hand-off point between the rendering dispatcher and the
// hosting environment: the dispatcher (or an object's own display hook)
// produces representations and publishes them without knowing where they go.
// Sinks include an io.Writer (terminal output), a directory of artifact
// files, an in-memory capture for tests and the bundle store, and a fan-out
// combining several sinks.
package publish

import (
	"context"

	"github.com/vitrine-dev/vitrine/pkg/mime"
	"github.com/vitrine-dev/vitrine/pkg/observability"
)

// Publisher hands a finished representation to the hosting environment.
type Publisher interface {
	Publish(ctx context.Context, rep mime.Representation) error
}

// Func adapts a function to the Publisher interface.
type Func func(ctx context.Context, rep mime.Representation) error

// Publish calls f.
func (f Func) Publish(ctx context.Context, rep mime.Representation) error {
	return f(ctx, rep)
}

// emit reports a publish outcome to the registered hooks.
func emit(ctx context.Context, rep mime.Representation, err error) {
	if err != nil {
		observability.Publish().OnPublishError(ctx, string(rep.Kind), err)
		return
	}
	observability.Publish().OnPublish(ctx, string(rep.Kind), len(rep.Data))
}
