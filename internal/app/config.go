package app

import (
	"github.com/specialistvlad/expandr/host"
	"github.com/specialistvlad/expandr/internal/config"
)

// Config holds the command-line settings for an App. Empty values leave
// the configuration file (or the defaults) in charge.
type Config struct {
	ConfigPath string

	PluginPath      string
	Pattern         string
	Skip            []string
	FailFast        bool
	ParallelResolve bool

	LogFormat    string
	LogLevel     string
	TelemetryURL string

	// open replaces the shared object loader in tests.
	open host.Opener
}

// apply overlays c onto m.
func (c *Config) apply(m *config.Model) {
	c.applyLog(&m.Log)
	if c.PluginPath != "" {
		m.Loader.Path = c.PluginPath
	}
	if c.Pattern != "" {
		m.Loader.Pattern = c.Pattern
	}
	m.Loader.Skip = append(m.Loader.Skip, c.Skip...)
	m.Loader.FailFast = m.Loader.FailFast || c.FailFast
	m.Loader.ParallelResolve = m.Loader.ParallelResolve || c.ParallelResolve
	if c.TelemetryURL != "" {
		if m.Telemetry == nil {
			m.Telemetry = &config.Telemetry{Namespace: "/", Event: "module"}
		}
		m.Telemetry.URL = c.TelemetryURL
	}
}

// applyLog overlays the log flags onto l.
func (c *Config) applyLog(l *config.Log) {
	if c.LogLevel != "" {
		l.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		l.Format = c.LogFormat
	}
}
