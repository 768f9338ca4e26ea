package container

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrNotRegistered is returned when no entry exists for a capability.
	ErrNotRegistered = errors.New("capability not registered")
	// ErrNotAssignable is returned when a built instance does not satisfy its capability.
	ErrNotAssignable = errors.New("instance does not implement capability")
)

// Resolver is the read side of the container handed to factories.
type Resolver interface {
	// Resolve returns the most recently registered implementation of id.
	Resolve(id ID) (any, error)
	// ResolveAll returns every implementation of id in registration order.
	ResolveAll(id ID) ([]any, error)
}

// Initializer is implemented by type-bound implementations that need
// dependencies. Init is called once right after the value is allocated.
type Initializer interface {
	Init(r Resolver) error
}

// Provider resolves instances from a frozen snapshot of a Collection.
type Provider struct {
	entries    []Entry
	byID       map[ID][]int
	singletons *cache
	root       *Scope
}

// Build snapshots c into a Provider. Entries added to c afterwards are not seen.
func Build(c *Collection) *Provider {
	p := &Provider{
		entries:    c.Entries(),
		byID:       make(map[ID][]int),
		singletons: newCache(),
	}
	for i, e := range p.entries {
		p.byID[e.Capability] = append(p.byID[e.Capability], i)
	}
	p.root = &Scope{p: p, scoped: newCache()}
	return p
}

// Resolve resolves id from the root scope.
func (p *Provider) Resolve(id ID) (any, error) {
	return p.root.Resolve(id)
}

// ResolveAll resolves every implementation of id from the root scope.
func (p *Provider) ResolveAll(id ID) ([]any, error) {
	return p.root.ResolveAll(id)
}

// NewScope starts a scope with its own cache of Scoped instances.
func (p *Provider) NewScope() *Scope {
	return &Scope{p: p, scoped: newCache()}
}

// Scope caches Scoped instances; Singleton instances are shared with its Provider.
type Scope struct {
	p      *Provider
	scoped *cache
}

// Resolve returns the last registered implementation of id.
func (s *Scope) Resolve(id ID) (any, error) {
	idx := s.p.byID[id]
	if len(idx) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, id)
	}
	return s.get(idx[len(idx)-1])
}

// ResolveAll returns all implementations of id. An unregistered id yields an empty slice.
func (s *Scope) ResolveAll(id ID) ([]any, error) {
	idx := s.p.byID[id]
	out := make([]any, 0, len(idx))
	for _, i := range idx {
		v, err := s.get(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Scope) get(i int) (any, error) {
	e := s.p.entries[i]
	switch e.Lifetime {
	case Singleton:
		return s.p.singletons.getOrCreate(i, func() (any, error) { return s.p.root.create(e) })
	case Scoped:
		return s.scoped.getOrCreate(i, func() (any, error) { return s.create(e) })
	default:
		return s.create(e)
	}
}

func (s *Scope) create(e Entry) (any, error) {
	var v any
	switch e.Kind {
	case InstanceBinding:
		v = e.Instance
	case FactoryBinding:
		built, err := e.Factory(s)
		if err != nil {
			return nil, fmt.Errorf("factory for %s failed: %w", e.Capability, err)
		}
		v = built
	case TypeBinding:
		t := e.Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		v = reflect.New(t).Interface()
		if init, ok := v.(Initializer); ok {
			if err := init.Init(s); err != nil {
				return nil, fmt.Errorf("initializing %s for %s: %w", e.Type, e.Capability, err)
			}
		}
	default:
		return nil, fmt.Errorf("entry for %s has unknown binding kind %s", e.Capability, e.Kind)
	}

	if v != nil && !assignable(v, e.Capability) {
		return nil, fmt.Errorf("%w: %T is not a %s", ErrNotAssignable, v, e.Capability)
	}
	return v, nil
}

func assignable(v any, id ID) bool {
	if id.IsZero() {
		return true
	}
	return reflect.TypeOf(v).AssignableTo(id.Type())
}

// Resolve resolves the implementation of T and asserts its type.
func Resolve[T any](r Resolver) (T, error) {
	var zero T
	v, err := r.Resolve(Of[T]())
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	return v.(T), nil
}

// ResolveAll resolves every implementation of T in registration order.
// A nil instance becomes the zero T, so len(result) always equals the
// number of registrations.
func ResolveAll[T any](r Resolver) ([]T, error) {
	vs, err := r.ResolveAll(Of[T]())
	if err != nil {
		return nil, err
	}
	out := make([]T, len(vs))
	for i, v := range vs {
		if v != nil {
			out[i] = v.(T)
		}
	}
	return out, nil
}

type cache struct {
	mu     sync.Mutex
	values map[int]any
}

func newCache() *cache {
	return &cache{values: make(map[int]any)}
}

// getOrCreate builds outside the lock so factories may resolve other
// cached entries; the first stored value wins.
func (c *cache) getOrCreate(i int, build func() (any, error)) (any, error) {
	c.mu.Lock()
	if v, ok := c.values[i]; ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err := build()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.values[i]; ok {
		return existing, nil
	}
	c.values[i] = v
	return v, nil
}
