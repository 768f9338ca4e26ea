package container

import (
	"reflect"
)

// ID identifies a capability. Two IDs are equal when they wrap the same Go type.
type ID struct {
	typ reflect.Type
}

// Of returns the ID of the type T, usually an interface type.
func Of[T any]() ID {
	return ID{typ: reflect.TypeFor[T]()}
}

// IDOf returns the ID of an arbitrary reflect.Type.
func IDOf(t reflect.Type) ID {
	return ID{typ: t}
}

// Type returns the wrapped type, or nil for the zero ID.
func (id ID) Type() reflect.Type {
	return id.typ
}

// IsZero reports whether the ID wraps no type.
func (id ID) IsZero() bool {
	return id.typ == nil
}

// String returns the package-qualified name of the type, for diagnostics.
func (id ID) String() string {
	if id.typ == nil {
		return "<nil>"
	}
	if id.typ.Name() != "" && id.typ.PkgPath() != "" {
		return id.typ.PkgPath() + "." + id.typ.Name()
	}
	return id.typ.String()
}
