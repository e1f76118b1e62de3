// Package pkg provides the core libraries for Vitrine rich display dispatch.
//
// # Overview
//
// Vitrine turns arbitrary objects into rich representations (HTML, PNG,
// LaTeX, JSON, ...) the way notebook frontends do, with a pluggable
// renderer registry and multiple output sinks. The pkg directory is
// organized into these areas:
//
//  1. [mime] - Kinds, representations, and bundles (the shared currency)
//  2. [display] - The dispatch core: registry, intrinsic methods, fallback
//  3. [engine] - Orchestration: caching, options, publishing
//  4. [publish] - Output sinks (writer, directory, capture, fan-out)
//  5. [objects] - Built-in demonstration objects
//  6. [cache], [store] - Payload cache and bundle persistence backends
//
// # Architecture
//
// The typical data flow through Vitrine:
//
//	Object (intrinsic methods or registered renderer)
//	         ↓
//	    [display] package (dispatch per kind)
//	         ↓
//	    [engine] package (cache by fingerprint, collect bundle)
//	         ↓
//	    [publish] package (stdout, files, capture)
//
// # Quick Start
//
//	reg := display.NewRegistry()
//	display.Register(reg, mime.KindHTML, func(d time.Duration) ([]byte, error) {
//	    return []byte(fmt.Sprintf("<code>%s</code>", d)), nil
//	})
//	bundle, err := reg.RenderAll(ctx, 90*time.Second)
//
// Dispatch per kind prefers a registered renderer, then the object's own
// Render method, then the textual fallback (text/plain only). Objects
// implementing display.Displayer take full control of their output instead.
package pkg
