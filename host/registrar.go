package host

import (
	"fmt"
	"iter"
	"sync"

	"github.com/specialistvlad/expandr/capability"
	"github.com/specialistvlad/expandr/container"
	"github.com/specialistvlad/expandr/extension"
)

// registrar applies the registration policy of the engine's registry to its collection.
type registrar struct {
	mu       sync.Mutex
	registry *capability.Registry
	services *container.Collection
}

var _ extension.Registrar = (*registrar)(nil)

func (r *registrar) TryRegister(id container.ID, impl capability.Descriptor) (extension.Outcome, bool) {
	def, ok := r.registry.Lookup(id)
	if !ok {
		return extension.Undefined, false
	}
	if !impl.Valid() {
		panic(fmt.Errorf("%w: zero descriptor registered for %s", extension.ErrInvalidDescriptor, id))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	outcome := extension.Implemented
	if r.services.Contains(id) {
		if !def.AllowMultiple() {
			return extension.AlreadyImplemented, false
		}
		outcome = extension.Added
	}
	r.services.Add(def.Materialize(id, impl))
	return outcome, true
}

func (r *registrar) Register(id container.ID, impl capability.Descriptor) error {
	outcome, ok := r.TryRegister(id, impl)
	if !ok {
		return &extension.RegistrationError{Capability: id, Outcome: outcome}
	}
	return nil
}

func (r *registrar) Entries() iter.Seq[container.Entry] {
	return func(yield func(container.Entry) bool) {
		for _, e := range r.services.Entries() {
			if !r.registry.Has(e.Capability) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}
