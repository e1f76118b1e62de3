// Package mime defines the representation kinds Vitrine can produce.
//
// A Kind is a MIME-type-like string naming one output category (HTML, PNG,
// LaTeX, ...). A Representation pairs a Kind with its rendered payload, and
// a Bundle collects at most one representation per kind. These types are the
// currency exchanged between the display dispatcher, publishers, caches, and
// the bundle store.
package mime

import "slices"

// Kind identifies a representation category, analogous to a MIME type.
type Kind string

// Kinds supported by the dispatcher.
const (
	KindText       Kind = "text/plain"
	KindHTML       Kind = "text/html"
	KindMarkdown   Kind = "text/markdown"
	KindLaTeX      Kind = "text/latex"
	KindPNG        Kind = "image/png"
	KindSVG        Kind = "image/svg+xml"
	KindJSON       Kind = "application/json"
	KindJavaScript Kind = "application/javascript"
	KindPDF        Kind = "application/pdf"
)

// Known lists all kinds the dispatcher consults, in the order RenderAll
// visits them. The order is fixed so bundle iteration is deterministic.
var Known = []Kind{
	KindText,
	KindHTML,
	KindMarkdown,
	KindLaTeX,
	KindPNG,
	KindSVG,
	KindJSON,
	KindJavaScript,
	KindPDF,
}

// binaryKinds is the set of kinds whose payloads are raw bytes rather than
// UTF-8 text. Binary payloads are base64-encoded on text transports.
var binaryKinds = map[Kind]bool{
	KindPNG: true,
	KindPDF: true,
}

// IsBinary reports whether payloads of this kind are binary data.
func (k Kind) IsBinary() bool { return binaryKinds[k] }

// IsKnown reports whether k is one of the kinds the dispatcher consults.
func (k Kind) IsKnown() bool { return slices.Contains(Known, k) }

// Ext returns the conventional file extension for the kind, without the dot.
// Unknown kinds map to "bin".
func (k Kind) Ext() string {
	switch k {
	case KindText:
		return "txt"
	case KindHTML:
		return "html"
	case KindMarkdown:
		return "md"
	case KindLaTeX:
		return "tex"
	case KindPNG:
		return "png"
	case KindSVG:
		return "svg"
	case KindJSON:
		return "json"
	case KindJavaScript:
		return "js"
	case KindPDF:
		return "pdf"
	}
	return "bin"
}

// Representation is a single rendered output: a kind plus its payload.
type Representation struct {
	Kind Kind   `json:"kind" bson:"kind"`
	Data []byte `json:"data" bson:"data"`
}

// Bundle holds at most one payload per kind, as produced by RenderAll.
type Bundle map[Kind][]byte

// Kinds returns the kinds present in the bundle, in Known order.
func (b Bundle) Kinds() []Kind {
	out := make([]Kind, 0, len(b))
	for _, k := range Known {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Representations flattens the bundle into a slice ordered by Known.
func (b Bundle) Representations() []Representation {
	out := make([]Representation, 0, len(b))
	for _, k := range b.Kinds() {
		out = append(out, Representation{Kind: k, Data: b[k]})
	}
	return out
}
