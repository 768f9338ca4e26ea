package host

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/expandr/extension"
	"github.com/specialistvlad/expandr/internal/fsutil"
)

// LoadModule runs one module through the load state machine. The returned
// error is non-nil only when the engine is sealed or OnError re-raised.
func (e *Engine) LoadModule(ctx context.Context, mod Module, opts *LoadOptions) (ModuleRecord, error) {
	if err := e.checkOpen(); err != nil {
		return ModuleRecord{Name: mod.Name(), State: Pending}, err
	}
	cb := opts.callbacks()
	rec := newRecord(mod)
	if e.announce(ctx, &rec, cb) {
		return rec, nil
	}
	rec.State = Resolving
	ep, err := e.marker.entrypoint(mod)
	return e.finish(ctx, rec, ep, err, cb)
}

// LoadModules loads mods in ascending name order. Ties keep their input order.
func (e *Engine) LoadModules(ctx context.Context, mods []Module, opts *LoadOptions) ([]ModuleRecord, error) {
	if err := e.checkOpen(); err != nil {
		return nil, err
	}
	sorted := slices.Clone(mods)
	slices.SortStableFunc(sorted, func(a, b Module) int {
		return strings.Compare(a.Name(), b.Name())
	})

	if opts.parallel() {
		return e.loadParallel(ctx, sorted, opts.callbacks())
	}

	records := make([]ModuleRecord, 0, len(sorted))
	for _, mod := range sorted {
		rec, err := e.LoadModule(ctx, mod, opts)
		records = append(records, rec)
		if err != nil {
			return records, err
		}
	}
	return records, nil
}

// LoadPath loads the module at path, or every module in the directory at
// path whose file name matches the load pattern. Artifacts that fail to
// open are reported through OnError and do not stop the others.
func (e *Engine) LoadPath(ctx context.Context, path string, opts *LoadOptions) ([]ModuleRecord, error) {
	mods, records, err := e.OpenPath(ctx, path, opts)
	if err != nil {
		return records, err
	}
	loaded, err := e.LoadModules(ctx, mods, opts)
	return append(records, loaded...), err
}

// OpenPath discovers and opens the modules at path without loading them,
// so callers can merge them with other modules into one LoadModules batch.
// Open failures are reported through OnError and returned as records.
func (e *Engine) OpenPath(ctx context.Context, path string, opts *LoadOptions) ([]Module, []ModuleRecord, error) {
	if err := e.checkOpen(); err != nil {
		return nil, nil, err
	}
	paths, err := fsutil.FindModules(path, opts.pattern())
	if err != nil {
		return nil, nil, fmt.Errorf("discovering modules in %s: %w", path, err)
	}
	e.log(ctx).Debug("Modules discovered.", "path", path, "count", len(paths))

	cb := opts.callbacks()
	open := opts.opener()
	var records []ModuleRecord
	mods := make([]Module, 0, len(paths))
	for _, p := range paths {
		mod, err := open(p)
		if err == nil {
			mods = append(mods, mod)
			continue
		}
		rec := ModuleRecord{Name: filepath.Base(p), Path: p, State: Pending}
		rec.Err = &ModuleError{Module: rec.Name, State: rec.State, Kind: ErrModuleOpen, Err: err}
		records = append(records, rec)
		if rerr := e.report(ctx, rec, cb); rerr != nil {
			return mods, records, rerr
		}
	}
	return mods, records, nil
}

func newRecord(mod Module) ModuleRecord {
	rec := ModuleRecord{Name: mod.Name(), State: Pending}
	if p, ok := mod.(pathed); ok {
		rec.Path = p.Path()
	}
	return rec
}

// announce raises the loading event and reports whether the module was skipped.
func (e *Engine) announce(ctx context.Context, rec *ModuleRecord, cb Callbacks) bool {
	rec.State = Loading
	ev := &LoadingEvent{Module: rec.Name}
	cb.loading(ctx, ev)
	if ev.Skip {
		rec.State = Skipped
		e.log(ctx).Info("Module skipped.", "module", rec.Name)
		return true
	}
	return false
}

// finish takes a resolved (or failed) module through Setup.
func (e *Engine) finish(ctx context.Context, rec ModuleRecord, ep extension.Entrypoint, resolveErr error, cb Callbacks) (ModuleRecord, error) {
	if resolveErr != nil {
		rec.State = EntrypointFailed
		rec.Err = &ModuleError{Module: rec.Name, State: rec.State, Kind: extension.ErrPluginContractViolation, Err: resolveErr}
		return rec, e.report(ctx, rec, cb)
	}

	rec.State = SettingUp
	if err := e.setup(ep); err != nil {
		rec.State = SetupFailed
		rec.Err = &ModuleError{Module: rec.Name, State: rec.State, Kind: extension.ErrPluginSetupFailure, Err: err}
		return rec, e.report(ctx, rec, cb)
	}

	rec.State = Loaded
	e.log(ctx).Info("Module loaded.", "module", rec.Name)
	cb.loaded(ctx, LoadedEvent{Module: rec.Name})
	return rec, nil
}

func (e *Engine) setup(ep extension.Entrypoint) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during setup: %v", r)
		}
	}()
	return ep.Setup(e.registrar)
}

// report raises the error event. A non-nil result means the callback re-raised.
func (e *Engine) report(ctx context.Context, rec ModuleRecord, cb Callbacks) error {
	e.log(ctx).Warn("Module failed.", "module", rec.Name, "state", rec.State, "error", rec.Err)
	if err := cb.error(ctx, ErrorEvent{Module: rec.Name, State: rec.State, Err: rec.Err}); err != nil {
		return fmt.Errorf("loading module %q: %w", rec.Name, err)
	}
	return nil
}

type resolution struct {
	rec     ModuleRecord
	skipped bool
	ep      extension.Entrypoint
	err     error
}

// loadParallel raises every loading event, resolves the remaining entry
// points concurrently, then sets modules up one by one in order.
func (e *Engine) loadParallel(ctx context.Context, mods []Module, cb Callbacks) ([]ModuleRecord, error) {
	items := make([]resolution, len(mods))
	for i, mod := range mods {
		items[i].rec = newRecord(mod)
		items[i].skipped = e.announce(ctx, &items[i].rec, cb)
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, mod := range mods {
		if items[i].skipped {
			continue
		}
		it := &items[i]
		it.rec.State = Resolving
		g.Go(func() error {
			it.ep, it.err = e.marker.entrypoint(mod)
			return nil
		})
	}
	_ = g.Wait()

	records := make([]ModuleRecord, 0, len(items))
	for _, it := range items {
		if it.skipped {
			records = append(records, it.rec)
			continue
		}
		rec, err := e.finish(ctx, it.rec, it.ep, it.err, cb)
		records = append(records, rec)
		if err != nil {
			return records, err
		}
	}
	return records, nil
}
