package display

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/vitrine-dev/vitrine/pkg/mime"
	"github.com/vitrine-dev/vitrine/pkg/observability"
	"github.com/vitrine-dev/vitrine/pkg/publish"
)

// Render produces obj's representation for the requested kind.
//
// Dispatch order: registered renderer for (kind, dynamic type), then the
// object's intrinsic method, then the textual fallback (text/plain only).
// The boolean reports whether a representation was available;
// absence is not an error. Renderer failures are returned untouched, with no
// partial payload.
func (r *Registry) Render(ctx context.Context, obj any, kind mime.Kind) (mime.Representation, bool, error) {
	typeName := TypeName(obj)
	observability.Display().OnRenderStart(ctx, typeName, string(kind))
	start := time.Now()

	data, source, err := r.dispatch(obj, kind)
	observability.Display().OnRenderComplete(ctx, typeName, string(kind), source, time.Since(start), err)

	if err != nil {
		return mime.Representation{}, false, err
	}
	if source == observability.SourceAbsent {
		return mime.Representation{}, false, nil
	}
	return mime.Representation{Kind: kind, Data: data}, true, nil
}

// dispatch runs the lookup chain and reports which path produced the payload.
func (r *Registry) dispatch(obj any, kind mime.Kind) ([]byte, observability.Source, error) {
	if fn, ok := r.Lookup(kind, reflect.TypeOf(obj)); ok {
		data, err := fn(obj)
		return data, observability.SourceRegistry, err
	}

	if data, ok, err := renderIntrinsic(obj, kind); ok {
		return data, observability.SourceIntrinsic, err
	}

	if kind == mime.KindText {
		return fallbackText(obj), observability.SourceFallback, nil
	}

	return nil, observability.SourceAbsent, nil
}

// RenderAll collects every representation obj can produce, one per known
// kind, for front-ends that store multiple representations simultaneously.
//
// If obj implements Displayer, RenderAll performs no per-kind dispatch and
// returns ErrSelfDisplaying; call Display instead. A failing renderer aborts
// the collection with its error wrapped with the offending kind.
func (r *Registry) RenderAll(ctx context.Context, obj any) (mime.Bundle, error) {
	if _, ok := obj.(Displayer); ok {
		return nil, ErrSelfDisplaying
	}

	bundle := make(mime.Bundle)
	for _, kind := range mime.Known {
		rep, ok, err := r.Render(ctx, obj, kind)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", kind, err)
		}
		if ok {
			bundle[kind] = rep.Data
		}
	}
	return bundle, nil
}

// Display renders obj and hands the results to pub.
//
// Objects implementing Displayer are given full control: only their hook
// runs, and it publishes whatever it wants. All other objects are rendered
// for every known kind and each available representation is published in
// mime.Known order.
func (r *Registry) Display(ctx context.Context, obj any, pub publish.Publisher) error {
	if d, ok := obj.(Displayer); ok {
		start := time.Now()
		err := d.Display(ctx, pub)
		observability.Display().OnDisplayHook(ctx, TypeName(obj), time.Since(start), err)
		return err
	}

	bundle, err := r.RenderAll(ctx, obj)
	if err != nil {
		return err
	}
	for _, rep := range bundle.Representations() {
		if err := pub.Publish(ctx, rep); err != nil {
			return fmt.Errorf("publish %s: %w", rep.Kind, err)
		}
	}
	return nil
}

// Package-level dispatch against the default registry.

// Render dispatches against the default registry.
func Render(ctx context.Context, obj any, kind mime.Kind) (mime.Representation, bool, error) {
	return defaultRegistry.Render(ctx, obj, kind)
}

// RenderAll dispatches against the default registry.
func RenderAll(ctx context.Context, obj any) (mime.Bundle, error) {
	return defaultRegistry.RenderAll(ctx, obj)
}

// Display dispatches against the default registry.
func Display(ctx context.Context, obj any, pub publish.Publisher) error {
	return defaultRegistry.Display(ctx, obj, pub)
}
