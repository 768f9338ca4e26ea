package host

import (
	"context"
)

// LoadingEvent is raised before a module is resolved. Setting Skip stops
// the module from loading.
type LoadingEvent struct {
	Module string
	Skip   bool
}

// LoadedEvent is raised after a module's Setup returned successfully.
type LoadedEvent struct {
	Module string
}

// ErrorEvent is raised when a module fails to open, resolve or set up.
type ErrorEvent struct {
	Module string
	State  ModuleState
	Err    error
}

// Callbacks receive lifecycle notifications. Any of them may be nil.
//
// Returning a non-nil error from OnError aborts the batch and hands the
// error back to the caller of the load operation.
type Callbacks struct {
	OnLoading func(ctx context.Context, ev *LoadingEvent)
	OnLoaded  func(ctx context.Context, ev LoadedEvent)
	OnError   func(ctx context.Context, ev ErrorEvent) error
}

// Chain returns callbacks that invoke c first and then next. OnError stops
// at the first callback that re-raises.
func (c Callbacks) Chain(next Callbacks) Callbacks {
	return Callbacks{
		OnLoading: func(ctx context.Context, ev *LoadingEvent) {
			c.loading(ctx, ev)
			next.loading(ctx, ev)
		},
		OnLoaded: func(ctx context.Context, ev LoadedEvent) {
			c.loaded(ctx, ev)
			next.loaded(ctx, ev)
		},
		OnError: func(ctx context.Context, ev ErrorEvent) error {
			if err := c.error(ctx, ev); err != nil {
				return err
			}
			return next.error(ctx, ev)
		},
	}
}

// Propagate is an OnError callback that turns every module failure into a fatal one.
func Propagate(_ context.Context, ev ErrorEvent) error {
	return ev.Err
}

func (c Callbacks) loading(ctx context.Context, ev *LoadingEvent) {
	if c.OnLoading != nil {
		c.OnLoading(ctx, ev)
	}
}

func (c Callbacks) loaded(ctx context.Context, ev LoadedEvent) {
	if c.OnLoaded != nil {
		c.OnLoaded(ctx, ev)
	}
}

func (c Callbacks) error(ctx context.Context, ev ErrorEvent) error {
	if c.OnError != nil {
		return c.OnError(ctx, ev)
	}
	return nil
}

// DefaultPattern matches Go shared objects.
const DefaultPattern = "*.so"

// Opener turns a discovered artifact path into a Module.
type Opener func(path string) (Module, error)

// LoadOptions configure one load call. A nil *LoadOptions is valid.
type LoadOptions struct {
	Callbacks Callbacks
	// Pattern is the glob module file names must match when loading a directory.
	Pattern string
	// Open opens discovered artifacts. Defaults to OpenSharedObject.
	Open Opener
	// ParallelResolve resolves entry points concurrently. Loading events
	// are then all raised before any Setup runs; Setup stays sequential.
	ParallelResolve bool
}

func (o *LoadOptions) callbacks() Callbacks {
	if o == nil {
		return Callbacks{}
	}
	return o.Callbacks
}

func (o *LoadOptions) pattern() string {
	if o == nil || o.Pattern == "" {
		return DefaultPattern
	}
	return o.Pattern
}

func (o *LoadOptions) opener() Opener {
	if o == nil || o.Open == nil {
		return OpenSharedObject
	}
	return o.Open
}

func (o *LoadOptions) parallel() bool {
	return o != nil && o.ParallelResolve
}
