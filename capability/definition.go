package capability

import (
	"fmt"

	"github.com/specialistvlad/expandr/container"
)

// Definition is the policy for one capability. It is immutable once built.
type Definition struct {
	lifetime      container.Lifetime
	allowMultiple bool
	defaults      []Descriptor
}

// NewDefinition validates and builds a Definition. A single-implementation
// capability accepts at most one default.
func NewDefinition(lifetime container.Lifetime, allowMultiple bool, defaults ...Descriptor) (Definition, error) {
	if !allowMultiple && len(defaults) > 1 {
		return Definition{}, fmt.Errorf("%w: %d defaults given for a capability that supports one implementation", ErrInvariantViolation, len(defaults))
	}
	for i, d := range defaults {
		if !d.Valid() {
			return Definition{}, fmt.Errorf("%w: default #%d is the zero descriptor", ErrInvalidDescriptor, i)
		}
	}

	owned := make([]Descriptor, len(defaults))
	copy(owned, defaults)
	return Definition{lifetime: lifetime, allowMultiple: allowMultiple, defaults: owned}, nil
}

func (d Definition) Lifetime() container.Lifetime { return d.lifetime }

func (d Definition) AllowMultiple() bool { return d.allowMultiple }

// Defaults returns a copy of the default descriptors in declaration order.
func (d Definition) Defaults() []Descriptor {
	out := make([]Descriptor, len(d.defaults))
	copy(out, d.defaults)
	return out
}

// Materialize binds impl to id using this definition's lifetime.
func (d Definition) Materialize(id container.ID, impl Descriptor) container.Entry {
	return impl.Materialize(id, d.lifetime)
}
