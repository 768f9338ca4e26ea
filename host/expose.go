package host

import (
	"github.com/specialistvlad/expandr/capability"
	"github.com/specialistvlad/expandr/container"
)

// Expose defines T as a single-implementation capability.
func Expose[T any](e *Engine, lifetime container.Lifetime, def ...capability.Descriptor) error {
	return e.Define(container.Of[T](), lifetime, false, def...)
}

func ExposeTransient[T any](e *Engine, def ...capability.Descriptor) error {
	return Expose[T](e, container.Transient, def...)
}

func ExposeScoped[T any](e *Engine, def ...capability.Descriptor) error {
	return Expose[T](e, container.Scoped, def...)
}

func ExposeSingleton[T any](e *Engine, def ...capability.Descriptor) error {
	return Expose[T](e, container.Singleton, def...)
}

// ExposeMulti defines T as a capability any number of modules may implement.
func ExposeMulti[T any](e *Engine, lifetime container.Lifetime, defaults ...capability.Descriptor) error {
	return e.Define(container.Of[T](), lifetime, true, defaults...)
}

func ExposeMultiTransient[T any](e *Engine, defaults ...capability.Descriptor) error {
	return ExposeMulti[T](e, container.Transient, defaults...)
}

func ExposeMultiScoped[T any](e *Engine, defaults ...capability.Descriptor) error {
	return ExposeMulti[T](e, container.Scoped, defaults...)
}

func ExposeMultiSingleton[T any](e *Engine, defaults ...capability.Descriptor) error {
	return ExposeMulti[T](e, container.Singleton, defaults...)
}

// ExposeInstance defines T as a singleton with v as its default.
func ExposeInstance[T any](e *Engine, v T) error {
	return ExposeSingleton[T](e, capability.Instance(v))
}
