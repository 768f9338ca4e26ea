package host

import (
	"errors"
	"fmt"
)

var (
	// ErrModuleOpen is reported when a module artifact cannot be opened.
	ErrModuleOpen = errors.New("module could not be opened")
	// ErrDefaultsApplied is returned by a second call to ApplyDefaults.
	ErrDefaultsApplied = errors.New("defaults have already been applied")
	// ErrSealed is returned when loading is attempted after defaults were applied.
	ErrSealed = errors.New("engine is sealed: defaults have already been applied")
)

// ModuleState is the position of a module in the load state machine.
type ModuleState int

const (
	Pending ModuleState = iota
	Loading
	Skipped
	Resolving
	EntrypointFailed
	SettingUp
	SetupFailed
	Loaded
)

func (s ModuleState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Loading:
		return "loading"
	case Skipped:
		return "skipped"
	case Resolving:
		return "resolving"
	case EntrypointFailed:
		return "entrypoint_failed"
	case SettingUp:
		return "setting_up"
	case SetupFailed:
		return "setup_failed"
	case Loaded:
		return "loaded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further transition can happen from s.
func (s ModuleState) Terminal() bool {
	switch s {
	case Skipped, EntrypointFailed, SetupFailed, Loaded:
		return true
	default:
		return false
	}
}

// ModuleRecord is the outcome of one load attempt.
type ModuleRecord struct {
	Name string
	// Path is set for modules opened from the file system.
	Path  string
	State ModuleState
	Err   error
}

// ModuleError describes a failed module. It matches both its Kind
// (for example extension.ErrPluginSetupFailure) and the cause with errors.Is.
type ModuleError struct {
	Module string
	State  ModuleState
	Kind   error
	Err    error
}

func (e *ModuleError) Error() string {
	return fmt.Sprintf("module %q: %v: %v", e.Module, e.Kind, e.Err)
}

func (e *ModuleError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
