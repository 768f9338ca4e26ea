package extension

import (
	"iter"

	"github.com/specialistvlad/expandr/capability"
	"github.com/specialistvlad/expandr/container"
)

// Registrar is the view of the host's registrations handed to a module.
type Registrar interface {
	// TryRegister attempts to register impl for id and reports the outcome.
	TryRegister(id container.ID, impl capability.Descriptor) (Outcome, bool)
	// Register is TryRegister that turns a refusal into a *RegistrationError.
	Register(id container.ID, impl capability.Descriptor) error
	// Entries yields the current registrations of exposed capabilities.
	Entries() iter.Seq[container.Entry]
}

// Entrypoint is implemented by the object a module exposes to the host.
type Entrypoint interface {
	Setup(r Registrar) error
}

// EntrypointFunc adapts a function to Entrypoint.
type EntrypointFunc func(r Registrar) error

func (f EntrypointFunc) Setup(r Registrar) error { return f(r) }

// Register registers the implementation type TImpl for capability TCap.
func Register[TCap, TImpl any](r Registrar) error {
	return r.Register(container.Of[TCap](), capability.Type[TImpl]())
}

// TryRegister attempts to register TImpl for TCap without failing.
func TryRegister[TCap, TImpl any](r Registrar) (Outcome, bool) {
	return r.TryRegister(container.Of[TCap](), capability.Type[TImpl]())
}

// RegisterFactory registers fn as the implementation of T.
func RegisterFactory[T any](r Registrar, fn func(container.Resolver) (T, error)) error {
	return r.Register(container.Of[T](), capability.Factory(fn))
}

// RegisterInstance registers the pre-built v as the implementation of T.
func RegisterInstance[T any](r Registrar, v T) error {
	return r.Register(container.Of[T](), capability.Instance(v))
}

// Implemented reports whether T already has at least one registration.
func Implemented[T any](r Registrar) bool {
	id := container.Of[T]()
	for e := range r.Entries() {
		if e.Capability == id {
			return true
		}
	}
	return false
}
