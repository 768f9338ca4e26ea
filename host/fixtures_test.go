package host

import (
	"context"
	"sync"

	"github.com/specialistvlad/expandr/capability"
	"github.com/specialistvlad/expandr/container"
	"github.com/specialistvlad/expandr/extension"
)

type serviceA interface{ ID() string }

type defaultA struct{ _ int }

func (*defaultA) ID() string { return "default" }

type customA struct{ _ int }

func (*customA) ID() string { return "custom" }

// setupModule builds a static module whose entry point runs fn.
func setupModule(name string, fn func(r extension.Registrar) error) Module {
	return EntrypointModule(name, func() extension.Entrypoint { return extension.EntrypointFunc(fn) })
}

// pointerEntrypoint is an Entrypoint with a pointer receiver.
type pointerEntrypoint struct{}

func (*pointerEntrypoint) Setup(extension.Registrar) error { return nil }

// registering builds a module that registers customA for serviceA.
func registering(name string) Module {
	return setupModule(name, func(r extension.Registrar) error {
		return extension.Register[serviceA, *customA](r)
	})
}

// eventLog records lifecycle callbacks in order.
type eventLog struct {
	mu     sync.Mutex
	events []string
	errors []ErrorEvent
}

func (l *eventLog) add(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, s)
}

func (l *eventLog) callbacks() Callbacks {
	return Callbacks{
		OnLoading: func(_ context.Context, ev *LoadingEvent) { l.add("loading:" + ev.Module) },
		OnLoaded:  func(_ context.Context, ev LoadedEvent) { l.add("loaded:" + ev.Module) },
		OnError: func(_ context.Context, ev ErrorEvent) error {
			l.add("error:" + ev.Module)
			l.mu.Lock()
			l.errors = append(l.errors, ev)
			l.mu.Unlock()
			return nil
		},
	}
}

func resolveIDs(e *Engine) []string {
	all, err := container.ResolveAll[serviceA](container.Build(e.Services()))
	if err != nil {
		panic(err)
	}
	ids := make([]string, 0, len(all))
	for _, a := range all {
		ids = append(ids, a.ID())
	}
	return ids
}

var defaultDescriptor = capability.Type[*defaultA]()
