// Package dataset holds the factory colorimetric tables: colour matching
// functions, illuminants, RGB colourspaces, colour checkers, and the
// Lightness and Munsell value functions. Every table is resolved by name;
// an unknown name fails with an error listing all valid names.
package dataset

import (
	"sort"

	"github.com/spectraplot/spectraplot/pkg/errors"
)

// Registry is a name-keyed table of factory entries.
type Registry[T any] struct {
	code    string
	kind    string
	entries map[string]T
}

// NewRegistry creates an empty registry. The code and kind are used to build
// lookup failure errors ("kind" reads as "factory <kind>").
func NewRegistry[T any](code, kind string) *Registry[T] {
	return &Registry[T]{
		code:    code,
		kind:    kind,
		entries: make(map[string]T),
	}
}

// Register adds an entry under the given name, replacing any previous entry.
func (r *Registry[T]) Register(name string, entry T) {
	r.entries[name] = entry
}

// Get returns the entry with the given name. Unknown names fail with a
// lookup error naming the bad key and listing all valid names.
func (r *Registry[T]) Get(name string) (T, error) {
	if entry, ok := r.entries[name]; ok {
		return entry, nil
	}
	var zero T
	return zero, errors.NotFound(r.code, r.kind, name, r.Names())
}

// Names returns the sorted list of registered names.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}
