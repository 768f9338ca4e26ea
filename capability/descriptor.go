package capability

import (
	"fmt"
	"reflect"

	"github.com/specialistvlad/expandr/container"
)

type descriptorKind int

const (
	kindInvalid descriptorKind = iota
	kindType
	kindFactory
	kindInstance
)

// Descriptor is a closed union: exactly one of type, factory or instance is set.
// The zero Descriptor is invalid and rejected wherever one is accepted.
type Descriptor struct {
	kind     descriptorKind
	typ      reflect.Type
	factory  container.FactoryFunc
	instance any
}

// ByType describes an implementation built by allocating t.
func ByType(t reflect.Type) (Descriptor, error) {
	if t == nil {
		return Descriptor{}, fmt.Errorf("%w: implementation type is nil", ErrInvalidDescriptor)
	}
	return Descriptor{kind: kindType, typ: t}, nil
}

// ByFactory describes an implementation produced by fn.
func ByFactory(fn container.FactoryFunc) (Descriptor, error) {
	if fn == nil {
		return Descriptor{}, fmt.Errorf("%w: factory is nil", ErrInvalidDescriptor)
	}
	return Descriptor{kind: kindFactory, factory: fn}, nil
}

// ByInstance describes a pre-built instance. A nil instance is allowed and
// resolves to the zero value of the capability type.
func ByInstance(v any) Descriptor {
	return Descriptor{kind: kindInstance, instance: v}
}

// Type describes the implementation type T. Use a pointer receiver type
// (for example Type[*Impl]()) when methods are declared on the pointer.
func Type[T any]() Descriptor {
	return Descriptor{kind: kindType, typ: reflect.TypeFor[T]()}
}

// Factory wraps a typed factory. It panics with ErrInvalidDescriptor when fn is nil.
func Factory[T any](fn func(container.Resolver) (T, error)) Descriptor {
	if fn == nil {
		panic(fmt.Errorf("%w: factory for %s is nil", ErrInvalidDescriptor, reflect.TypeFor[T]()))
	}
	return Descriptor{kind: kindFactory, factory: func(r container.Resolver) (any, error) {
		return fn(r)
	}}
}

// Instance describes the pre-built instance v.
func Instance[T any](v T) Descriptor {
	return ByInstance(v)
}

// Valid reports whether d was built by one of the constructors.
func (d Descriptor) Valid() bool {
	return d.kind != kindInvalid
}

// Materialize lowers d into a container entry for id. Instances are always
// bound as singletons, regardless of lifetime.
func (d Descriptor) Materialize(id container.ID, lifetime container.Lifetime) container.Entry {
	switch d.kind {
	case kindType:
		return container.Entry{Capability: id, Lifetime: lifetime, Kind: container.TypeBinding, Type: d.typ}
	case kindFactory:
		return container.Entry{Capability: id, Lifetime: lifetime, Kind: container.FactoryBinding, Factory: d.factory}
	case kindInstance:
		return container.Entry{Capability: id, Lifetime: container.Singleton, Kind: container.InstanceBinding, Instance: d.instance}
	default:
		panic(fmt.Errorf("%w: materializing zero descriptor for %s", ErrInvalidDescriptor, id))
	}
}

func (d Descriptor) String() string {
	switch d.kind {
	case kindType:
		return "type " + d.typ.String()
	case kindFactory:
		return "factory"
	case kindInstance:
		return fmt.Sprintf("instance %T", d.instance)
	default:
		return "invalid"
	}
}
