package host

import (
	"errors"
	"fmt"
	"path/filepath"
	"plugin"

	"github.com/specialistvlad/expandr/extension"
)

// ErrSymbolNotFound is returned by StaticModule.Lookup for unknown symbols.
var ErrSymbolNotFound = errors.New("symbol not found")

// Module is a loaded code unit the host can query for exported symbols.
// *plugin.Plugin satisfies it through OpenSharedObject.
type Module interface {
	Name() string
	Lookup(symbol string) (any, error)
}

// pathed is implemented by modules that came from the file system.
type pathed interface {
	Path() string
}

// StaticModule is an in-process symbol table. Hosts use it for modules
// compiled into the binary.
type StaticModule struct {
	name    string
	symbols map[string]any
}

// NewStaticModule builds a module exporting symbols under name.
func NewStaticModule(name string, symbols map[string]any) *StaticModule {
	owned := make(map[string]any, len(symbols))
	for k, v := range symbols {
		owned[k] = v
	}
	return &StaticModule{name: name, symbols: owned}
}

// EntrypointModule builds a module exporting newEntrypoint under the default symbol.
func EntrypointModule(name string, newEntrypoint func() extension.Entrypoint) *StaticModule {
	return NewStaticModule(name, map[string]any{DefaultEntrypointSymbol: newEntrypoint})
}

func (m *StaticModule) Name() string { return m.name }

func (m *StaticModule) Lookup(symbol string) (any, error) {
	v, ok := m.symbols[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: %q in module %q", ErrSymbolNotFound, symbol, m.name)
	}
	return v, nil
}

type sharedObject struct {
	path string
	p    *plugin.Plugin
}

// OpenSharedObject opens a Go plugin built with -buildmode=plugin.
// The module is named after the file.
func OpenSharedObject(path string) (Module, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shared object %s: %w", path, err)
	}
	return &sharedObject{path: path, p: p}, nil
}

func (s *sharedObject) Name() string { return filepath.Base(s.path) }

func (s *sharedObject) Path() string { return s.path }

func (s *sharedObject) Lookup(symbol string) (any, error) {
	sym, err := s.p.Lookup(symbol)
	if err != nil {
		return nil, err
	}
	return sym, nil
}
