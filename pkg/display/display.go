// Package display implements Vitrine's rendering dispatcher.
//
// Given an arbitrary Go value and a requested kind, the dispatcher produces
// a representation by trying, in order:
//
//  1. a renderer function registered for (kind, dynamic type) in a Registry,
//  2. the value's own intrinsic method for that kind (RenderHTML, RenderPNG,
//     ...),
//  3. for text/plain only, a textual fallback (fmt.Stringer, else %v).
//
// If none apply the representation is absent, which is not an error: the
// caller decides its own fallback. Renderer failures are surfaced untouched.
//
// A value can instead take full control of its own display by implementing
// Displayer; the dispatcher then calls that hook and performs no per-kind
// rendering at all.
//
// # Precedence
//
// Registered renderers win over intrinsic methods, so a host environment can
// re-render third-party types without modifying them:
//
//	reg := display.NewRegistry()
//	display.Register(reg, mime.KindHTML, func(d time.Duration) ([]byte, error) {
//	    return []byte(fmt.Sprintf("<code>%s</code>", d)), nil
//	})
//	rep, ok, err := reg.Render(ctx, 3*time.Second, mime.KindHTML)
package display

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/vitrine-dev/vitrine/pkg/mime"
	"github.com/vitrine-dev/vitrine/pkg/publish"
)

// ErrSelfDisplaying is returned by RenderAll when the object implements
// Displayer. Such objects own their display process entirely; callers should
// invoke Display instead of per-kind rendering.
var ErrSelfDisplaying = errors.New("object displays itself")

// Displayer is the full-control hook. An object implementing it owns its
// whole display process: the dispatcher calls Display and performs no
// per-kind lookup, and the hook publishes whatever it wants to the sink.
type Displayer interface {
	Display(ctx context.Context, pub publish.Publisher) error
}

// Intrinsic per-kind renderer interfaces. An object exposes a representation
// for a kind by implementing the matching method with no arguments.
type (
	// TextRenderer produces a text/plain representation.
	TextRenderer interface {
		RenderText() ([]byte, error)
	}

	// HTMLRenderer produces a text/html representation.
	HTMLRenderer interface {
		RenderHTML() ([]byte, error)
	}

	// MarkdownRenderer produces a text/markdown representation.
	MarkdownRenderer interface {
		RenderMarkdown() ([]byte, error)
	}

	// LaTeXRenderer produces a text/latex representation.
	LaTeXRenderer interface {
		RenderLaTeX() ([]byte, error)
	}

	// PNGRenderer produces an image/png representation.
	PNGRenderer interface {
		RenderPNG() ([]byte, error)
	}

	// SVGRenderer produces an image/svg+xml representation.
	SVGRenderer interface {
		RenderSVG() ([]byte, error)
	}

	// JSONRenderer produces an application/json representation.
	JSONRenderer interface {
		RenderJSON() ([]byte, error)
	}

	// JavaScriptRenderer produces an application/javascript representation.
	JavaScriptRenderer interface {
		RenderJavaScript() ([]byte, error)
	}

	// PDFRenderer produces an application/pdf representation.
	PDFRenderer interface {
		RenderPDF() ([]byte, error)
	}
)

// renderIntrinsic invokes the object's intrinsic method for kind, if any.
// The second return value reports whether the object implements the method.
func renderIntrinsic(obj any, kind mime.Kind) ([]byte, bool, error) {
	switch kind {
	case mime.KindText:
		if r, ok := obj.(TextRenderer); ok {
			data, err := r.RenderText()
			return data, true, err
		}
	case mime.KindHTML:
		if r, ok := obj.(HTMLRenderer); ok {
			data, err := r.RenderHTML()
			return data, true, err
		}
	case mime.KindMarkdown:
		if r, ok := obj.(MarkdownRenderer); ok {
			data, err := r.RenderMarkdown()
			return data, true, err
		}
	case mime.KindLaTeX:
		if r, ok := obj.(LaTeXRenderer); ok {
			data, err := r.RenderLaTeX()
			return data, true, err
		}
	case mime.KindPNG:
		if r, ok := obj.(PNGRenderer); ok {
			data, err := r.RenderPNG()
			return data, true, err
		}
	case mime.KindSVG:
		if r, ok := obj.(SVGRenderer); ok {
			data, err := r.RenderSVG()
			return data, true, err
		}
	case mime.KindJSON:
		if r, ok := obj.(JSONRenderer); ok {
			data, err := r.RenderJSON()
			return data, true, err
		}
	case mime.KindJavaScript:
		if r, ok := obj.(JavaScriptRenderer); ok {
			data, err := r.RenderJavaScript()
			return data, true, err
		}
	case mime.KindPDF:
		if r, ok := obj.(PDFRenderer); ok {
			data, err := r.RenderPDF()
			return data, true, err
		}
	}
	return nil, false, nil
}

// HasIntrinsic reports whether obj exposes an intrinsic method for kind,
// without invoking it.
func HasIntrinsic(obj any, kind mime.Kind) bool {
	switch kind {
	case mime.KindText:
		_, ok := obj.(TextRenderer)
		return ok
	case mime.KindHTML:
		_, ok := obj.(HTMLRenderer)
		return ok
	case mime.KindMarkdown:
		_, ok := obj.(MarkdownRenderer)
		return ok
	case mime.KindLaTeX:
		_, ok := obj.(LaTeXRenderer)
		return ok
	case mime.KindPNG:
		_, ok := obj.(PNGRenderer)
		return ok
	case mime.KindSVG:
		_, ok := obj.(SVGRenderer)
		return ok
	case mime.KindJSON:
		_, ok := obj.(JSONRenderer)
		return ok
	case mime.KindJavaScript:
		_, ok := obj.(JavaScriptRenderer)
		return ok
	case mime.KindPDF:
		_, ok := obj.(PDFRenderer)
		return ok
	}
	return false
}

// fallbackText produces the textual fallback representation for text/plain.
func fallbackText(obj any) []byte {
	if s, ok := obj.(fmt.Stringer); ok {
		return []byte(s.String())
	}
	return fmt.Appendf(nil, "%v", obj)
}

// TypeName returns a stable human-readable name for the dynamic type of obj,
// used in hooks, cache keys, and stored records.
func TypeName(obj any) string {
	t := reflect.TypeOf(obj)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
