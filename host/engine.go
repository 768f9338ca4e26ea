package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/specialistvlad/expandr/capability"
	"github.com/specialistvlad/expandr/container"
	"github.com/specialistvlad/expandr/extension"
	"github.com/specialistvlad/expandr/internal/ctxlog"
)

// Engine owns the capability registry of a host and loads modules into its
// collection.
type Engine struct {
	services  *container.Collection
	registry  *capability.Registry
	registrar *registrar
	marker    Marker
	logger    *slog.Logger

	mu     sync.Mutex
	sealed bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithMarker replaces the default entry-point marker.
func WithMarker(m Marker) Option {
	return func(e *Engine) { e.marker = m }
}

// WithLogger sets the logger used when the context carries none.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine that registers into services.
func New(services *container.Collection, opts ...Option) *Engine {
	if services == nil {
		panic("host: services collection must not be nil")
	}
	registry := capability.NewRegistry()
	e := &Engine{
		services:  services,
		registry:  registry,
		registrar: &registrar{registry: registry, services: services},
		marker:    DefaultMarker(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Define exposes id to modules with the given policy. Redefining a
// capability replaces its previous definition.
func (e *Engine) Define(id container.ID, lifetime container.Lifetime, allowMultiple bool, defaults ...capability.Descriptor) error {
	if id.IsZero() {
		return fmt.Errorf("%w: capability id is empty", extension.ErrInvariantViolation)
	}
	def, err := capability.NewDefinition(lifetime, allowMultiple, defaults...)
	if err != nil {
		return fmt.Errorf("defining %s: %w", id, err)
	}
	e.registry.Define(id, def)
	e.logger.Debug("Capability exposed.", "capability", id, "lifetime", lifetime, "multiple", allowMultiple, "defaults", len(defaults))
	return nil
}

// Registrar returns the registrar modules receive. Hosts may use it to
// register implementations themselves.
func (e *Engine) Registrar() extension.Registrar {
	return e.registrar
}

// Registry returns the engine's capability registry.
func (e *Engine) Registry() *capability.Registry {
	return e.registry
}

// Services returns the collection the engine registers into.
func (e *Engine) Services() *container.Collection {
	return e.services
}

// ApplyDefaults registers the defaults of every capability, in name order,
// through the registrar's normal policy. It may run only once; afterwards
// the engine refuses further loads.
func (e *Engine) ApplyDefaults(ctx context.Context) error {
	e.mu.Lock()
	if e.sealed {
		e.mu.Unlock()
		return ErrDefaultsApplied
	}
	e.sealed = true
	e.mu.Unlock()

	logger := e.log(ctx)
	for _, id := range e.registry.IDs() {
		def, _ := e.registry.Lookup(id)
		for _, d := range def.Defaults() {
			outcome, ok := e.registrar.TryRegister(id, d)
			logger.Debug("Default considered.", "capability", id, "default", d, "outcome", outcome, "registered", ok)
		}
	}
	logger.Info("Defaults applied.", "capabilities", e.registry.Len(), "registrations", e.services.Len())
	return nil
}

func (e *Engine) checkOpen() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sealed {
		return ErrSealed
	}
	return nil
}

func (e *Engine) log(ctx context.Context) *slog.Logger {
	if l, ok := ctxlog.Lookup(ctx); ok {
		return l
	}
	return e.logger
}
