package config

import (
	"fmt"
	"log/slog"
	"slices"
)

// Model is the unified representation of the host configuration.
type Model struct {
	Log       Log
	Loader    LoaderSettings
	Telemetry *Telemetry
}

// Log configures the application logger.
type Log struct {
	Level  string
	Format string
	// Source adds the calling file and line to every record.
	Source bool
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the slog level for Level. Unknown levels map to info.
func (l Log) SlogLevel() slog.Level {
	if level, ok := logLevels[l.Level]; ok {
		return level
	}
	return slog.LevelInfo
}

// JSON reports whether records are written as JSON.
func (l Log) JSON() bool {
	return l.Format == "json"
}

// Validate checks Level and Format.
func (l Log) Validate() error {
	if _, ok := logLevels[l.Level]; !ok {
		return fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", l.Level)
	}
	if l.Format != "text" && l.Format != "json" {
		return fmt.Errorf("invalid log format %q: must be 'text' or 'json'", l.Format)
	}
	return nil
}

// LoaderSettings configure module discovery and the load callbacks.
type LoaderSettings struct {
	// Path is a module file or a directory of modules. Empty disables discovery.
	Path            string
	Pattern         string
	Skip            []string
	FailFast        bool
	ParallelResolve bool
}

// Telemetry enables publishing of module lifecycle events.
type Telemetry struct {
	URL                string
	Namespace          string
	Event              string
	InsecureSkipVerify bool
}

// Default returns the model used when no configuration file is given.
func Default() *Model {
	return &Model{
		Log:    Log{Level: "info", Format: "text"},
		Loader: LoaderSettings{Pattern: "*.so"},
	}
}

// Validate checks the values that have a closed set of options.
func (m *Model) Validate() error {
	if err := m.Log.Validate(); err != nil {
		return err
	}
	if m.Telemetry != nil && m.Telemetry.URL == "" {
		return fmt.Errorf("telemetry block requires a url")
	}
	return nil
}

// Skipped reports whether the module called name is on the skip list.
func (l LoaderSettings) Skipped(name string) bool {
	return slices.Contains(l.Skip, name)
}
