package display

import (
	"reflect"
	"sort"
	"sync"

	"github.com/vitrine-dev/vitrine/pkg/mime"
)

// RendererFunc converts an object into a payload for one kind.
// It receives the object whose dynamic type it was registered for.
type RendererFunc func(obj any) ([]byte, error)

// Registry maps (kind, dynamic type) to renderer functions.
//
// Entries are added at setup time and consulted for process lifetime; there
// is no removal API. Registering a second renderer for the same (kind, type)
// silently replaces the first. Lookups are read-mostly, so the registry is
// guarded by an RWMutex and safe for concurrent readers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[mime.Kind]map[reflect.Type]RendererFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[mime.Kind]map[reflect.Type]RendererFunc),
	}
}

// RegisterType associates a renderer with (kind, typ). Last registration
// wins. The renderer is invoked whenever an object of exactly that dynamic
// type is rendered for the kind; pointer and value types are distinct.
func (r *Registry) RegisterType(kind mime.Kind, typ reflect.Type, fn RendererFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byType, ok := r.renderers[kind]
	if !ok {
		byType = make(map[reflect.Type]RendererFunc)
		r.renderers[kind] = byType
	}
	byType[typ] = fn
}

// Register is the typed convenience wrapper around RegisterType.
//
//	display.Register(reg, mime.KindJSON, func(p Point) ([]byte, error) { ... })
func Register[T any](r *Registry, kind mime.Kind, fn func(T) ([]byte, error)) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	r.RegisterType(kind, typ, func(obj any) ([]byte, error) {
		return fn(obj.(T))
	})
}

// Lookup returns the renderer registered for (kind, typ), if any.
func (r *Registry) Lookup(kind mime.Kind, typ reflect.Type) (RendererFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.renderers[kind][typ]
	return fn, ok
}

// Entry is a single (kind, type) association in a registry snapshot.
type Entry struct {
	Kind mime.Kind
	Type reflect.Type
}

// Entries returns a snapshot of all registrations for diagnostics, sorted by
// kind then type name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for kind, byType := range r.renderers {
		for typ := range byType {
			out = append(out, Entry{Kind: kind, Type: typ})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Type.String() < out[j].Type.String()
	})
	return out
}

// Len returns the number of registered renderers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, byType := range r.renderers {
		n += len(byType)
	}
	return n
}

// defaultRegistry backs the package-level registration surface.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// Render, RenderAll, and Display functions.
func Default() *Registry {
	return defaultRegistry
}
