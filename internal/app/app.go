package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/specialistvlad/expandr/capability"
	"github.com/specialistvlad/expandr/container"
	"github.com/specialistvlad/expandr/demo"
	"github.com/specialistvlad/expandr/host"
	"github.com/specialistvlad/expandr/internal/config"
	"github.com/specialistvlad/expandr/internal/ctxlog"
	"github.com/specialistvlad/expandr/internal/telemetry"
)

// App encapsulates the host's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	model     *config.Model
	engine    *host.Engine
	provider  *container.Provider
	records   []host.ModuleRecord
	publisher *telemetry.Publisher
	open      host.Opener
}

// NewApp loads the configuration, sets up the extension engine and loads
// every module. When no modules are given the compiled-in ones are used.
// Command output goes to outW and logs to logW.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...host.Module) (*App, error) {
	model := config.Default()
	if cfg.ConfigPath != "" {
		boot := config.Default().Log
		cfg.applyLog(&boot)
		bootLogger := newLogger(boot, logW)
		loaded, err := loader.Load(ctxlog.WithLogger(ctx, bootLogger), cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		model = loaded
	}
	cfg.apply(model)
	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(model.Log, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	a := &App{outW: outW, logger: logger, model: model, open: cfg.open}
	if model.Telemetry != nil {
		pub, err := telemetry.Dial(ctx, *model.Telemetry)
		if err != nil {
			return nil, fmt.Errorf("failed to start telemetry: %w", err)
		}
		a.publisher = pub
	}

	if len(modules) == 0 {
		modules = coreModules
	}
	services := container.NewCollection()
	engine, err := host.Setup(ctx, services, func(ctx context.Context, e *host.Engine) error {
		return a.configure(ctx, e, modules)
	}, host.WithLogger(logger))
	if err != nil {
		a.Close()
		return nil, err
	}

	a.engine = engine
	a.provider = container.Build(services)
	logger.Debug("Host ready.", "registrations", services.Len(), "modules", len(a.records))
	return a, nil
}

// configure exposes the demo capabilities and loads all modules.
func (a *App) configure(ctx context.Context, e *host.Engine, modules []host.Module) error {
	if err := host.ExposeMultiTransient[demo.Command](e, capability.Type[*demo.Echo](), capability.Type[*demo.Help]()); err != nil {
		return err
	}
	if err := host.ExposeSingleton[demo.HelpPrinter](e, capability.Type[*demo.PlainHelpPrinter]()); err != nil {
		return err
	}

	opts := &host.LoadOptions{
		Callbacks:       a.callbacks(),
		Pattern:         a.model.Loader.Pattern,
		Open:            a.open,
		ParallelResolve: a.model.Loader.ParallelResolve,
	}

	// Discovered modules join the compiled-in ones so a single name order applies to all.
	batch := slices.Clone(modules)
	if path := a.model.Loader.Path; path != "" {
		if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
			a.logger.Warn("Module path does not exist, skipping discovery.", "path", path)
		} else {
			discovered, failed, err := e.OpenPath(ctx, path, opts)
			a.records = append(a.records, failed...)
			if err != nil {
				return err
			}
			batch = append(batch, discovered...)
		}
	}

	records, err := e.LoadModules(ctx, batch, opts)
	a.records = append(a.records, records...)
	return err
}

func (a *App) callbacks() host.Callbacks {
	settings := a.model.Loader
	cb := host.Callbacks{
		OnLoading: func(_ context.Context, ev *host.LoadingEvent) {
			ev.Skip = settings.Skipped(ev.Module)
		},
		OnError: func(_ context.Context, ev host.ErrorEvent) error {
			if settings.FailFast {
				return ev.Err
			}
			return nil
		},
	}
	if a.publisher != nil {
		return telemetry.Callbacks(a.publisher).Chain(cb)
	}
	return cb
}

// Modules returns the load record of every module, in load order.
func (a *App) Modules() []host.ModuleRecord {
	return a.records
}

// Engine returns the application's extension engine. This is primarily for testing.
func (a *App) Engine() *host.Engine {
	return a.engine
}

// Close releases the telemetry connection, if any.
func (a *App) Close() error {
	if a.publisher != nil {
		return a.publisher.Close()
	}
	return nil
}
