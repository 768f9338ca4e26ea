package host

import (
	"context"
	"fmt"

	"github.com/specialistvlad/expandr/container"
)

// Setup bootstraps a host: it creates an engine over services, registers
// the engine itself as a singleton, runs configure and applies defaults.
func Setup(ctx context.Context, services *container.Collection, configure func(ctx context.Context, e *Engine) error, opts ...Option) (*Engine, error) {
	e := New(services, opts...)
	services.AddInstance(container.Of[*Engine](), e)

	if configure != nil {
		if err := configure(ctx, e); err != nil {
			return nil, fmt.Errorf("configuring host: %w", err)
		}
	}
	if err := e.ApplyDefaults(ctx); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}
	return e, nil
}
