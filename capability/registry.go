package capability

import (
	"slices"
	"strings"

	"github.com/specialistvlad/expandr/container"
)

// Registry maps capability IDs to their Definition.
//
// It is written only during host setup and read while modules load, so it
// does no locking of its own.
type Registry struct {
	defs map[container.ID]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[container.ID]Definition)}
}

// Define stores def for id. Redefining an id replaces the previous definition.
func (r *Registry) Define(id container.ID, def Definition) {
	r.defs[id] = def
}

// Lookup returns the definition for id.
func (r *Registry) Lookup(id container.ID) (Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// Has reports whether id is defined.
func (r *Registry) Has(id container.ID) bool {
	_, ok := r.defs[id]
	return ok
}

// IDs returns all defined capability IDs ordered by name.
func (r *Registry) IDs() []container.ID {
	ids := make([]container.ID, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b container.ID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}

// Len returns the number of defined capabilities.
func (r *Registry) Len() int {
	return len(r.defs)
}
