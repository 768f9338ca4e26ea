package container

import (
	"fmt"
	"reflect"
)

// BindingKind tells the provider how an Entry produces its instance.
type BindingKind int

const (
	// TypeBinding instantiates Entry.Type with reflect.New.
	TypeBinding BindingKind = iota + 1
	// FactoryBinding calls Entry.Factory.
	FactoryBinding
	// InstanceBinding returns Entry.Instance as is.
	InstanceBinding
)

func (k BindingKind) String() string {
	switch k {
	case TypeBinding:
		return "type"
	case FactoryBinding:
		return "factory"
	case InstanceBinding:
		return "instance"
	default:
		return fmt.Sprintf("binding(%d)", int(k))
	}
}

// FactoryFunc builds an instance, resolving its own dependencies from r.
type FactoryFunc func(r Resolver) (any, error)

// Entry is a single registration in a Collection.
type Entry struct {
	Capability ID
	Lifetime   Lifetime
	Kind       BindingKind

	Type     reflect.Type
	Factory  FactoryFunc
	Instance any
}

// String describes the entry for logs and error messages.
func (e Entry) String() string {
	switch e.Kind {
	case TypeBinding:
		return fmt.Sprintf("%s => %s (%s)", e.Capability, e.Type, e.Lifetime)
	case FactoryBinding:
		return fmt.Sprintf("%s => factory (%s)", e.Capability, e.Lifetime)
	case InstanceBinding:
		return fmt.Sprintf("%s => instance %T (%s)", e.Capability, e.Instance, e.Lifetime)
	default:
		return fmt.Sprintf("%s => %s", e.Capability, e.Kind)
	}
}
