package host

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/specialistvlad/expandr/extension"
)

// DefaultEntrypointSymbol is the exported name the default marker looks up.
const DefaultEntrypointSymbol = "Entrypoint"

// Marker tells the engine how to find a module's entry point. Resolve must
// be safe for concurrent use when LoadOptions.ParallelResolve is set.
type Marker struct {
	Symbol  string
	Resolve func(symbol any) (extension.Entrypoint, error)
}

// DefaultMarker looks up DefaultEntrypointSymbol and resolves it with ResolveEntrypoint.
func DefaultMarker() Marker {
	return Marker{Symbol: DefaultEntrypointSymbol, Resolve: ResolveEntrypoint}
}

// ResolveEntrypoint accepts a constructor (func() extension.Entrypoint), a
// pointer to a constructor variable, a setup function or an Entrypoint value.
func ResolveEntrypoint(symbol any) (extension.Entrypoint, error) {
	var ep extension.Entrypoint
	switch v := symbol.(type) {
	case func() extension.Entrypoint:
		ep = v()
	case *func() extension.Entrypoint:
		if v == nil || *v == nil {
			return nil, errors.New("entry point constructor is nil")
		}
		ep = (*v)()
	case func(extension.Registrar) error:
		ep = extension.EntrypointFunc(v)
	case extension.Entrypoint:
		ep = v
	case *extension.Entrypoint:
		if v == nil {
			return nil, errors.New("entry point pointer is nil")
		}
		ep = *v
	default:
		return nil, fmt.Errorf("symbol of type %T is not an entry point", symbol)
	}
	if isNil(ep) {
		return nil, errors.New("entry point constructor returned nil")
	}
	return ep, nil
}

// isNil also catches typed nils such as a (*T)(nil) or a nil EntrypointFunc.
func isNil(ep extension.Entrypoint) bool {
	if ep == nil {
		return true
	}
	v := reflect.ValueOf(ep)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func (m Marker) symbol() string {
	if m.Symbol == "" {
		return DefaultEntrypointSymbol
	}
	return m.Symbol
}

// entrypoint resolves mod's entry point. A panicking constructor is
// reported as an error.
func (m Marker) entrypoint(mod Module) (ep extension.Entrypoint, err error) {
	defer func() {
		if r := recover(); r != nil {
			ep, err = nil, fmt.Errorf("panic while resolving entry point: %v", r)
		}
	}()

	sym, err := mod.Lookup(m.symbol())
	if err != nil {
		return nil, fmt.Errorf("module does not export %q: %w", m.symbol(), err)
	}
	resolve := m.Resolve
	if resolve == nil {
		resolve = ResolveEntrypoint
	}
	return resolve(sym)
}
