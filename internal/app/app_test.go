package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/expandr/container"
	"github.com/specialistvlad/expandr/demo"
	"github.com/specialistvlad/expandr/extension"
	"github.com/specialistvlad/expandr/host"
	"github.com/specialistvlad/expandr/internal/hcl"
	"github.com/specialistvlad/expandr/internal/testutil"
)

// setupAppTest creates a new app instance with debug logging captured.
func setupAppTest(t *testing.T, cfg *Config, modules ...host.Module) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()
	out := &bytes.Buffer{}
	logs := testutil.LogBuffer(t)
	cfg.LogLevel = "debug"
	a, err := NewApp(context.Background(), out, logs, cfg, hcl.NewLoader(), modules...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, out, logs
}

func TestApp_DefaultModules(t *testing.T) {
	// Arrange
	a, out, logs := setupAppTest(t, &Config{})

	// Act
	err := a.Run(context.Background(), "", nil)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Commands", "the fancy printer replaces the plain one")
	assert.Contains(t, out.String(), "echo")
	assert.Contains(t, out.String(), "env")
	assert.Contains(t, logs.String(), "Module loaded.")
	require.Len(t, a.Modules(), 2)
	assert.Equal(t, "envvars", a.Modules()[0].Name)
	assert.Equal(t, "fancyhelp", a.Modules()[1].Name)
}

func TestApp_SkipFallsBackToDefault(t *testing.T) {
	// Arrange
	a, out, _ := setupAppTest(t, &Config{Skip: []string{"fancyhelp"}})

	// Act
	err := a.Run(context.Background(), "help", nil)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Available commands:")
	assert.Equal(t, host.Skipped, a.Modules()[1].State)
	count := a.Engine().Services().Count(container.Of[demo.HelpPrinter]())
	assert.Equal(t, 1, count)
}

func TestApp_Echo(t *testing.T) {
	a, out, _ := setupAppTest(t, &Config{})

	require.NoError(t, a.Run(context.Background(), "echo", []string{"hi", "there"}))
	assert.Equal(t, "hi there\n", out.String())
}

func TestApp_UnknownCommand(t *testing.T) {
	a, _, _ := setupAppTest(t, &Config{})

	err := a.Run(context.Background(), "launch", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestApp_FailingModule(t *testing.T) {
	failing := host.EntrypointModule("broken", func() extension.Entrypoint {
		return extension.EntrypointFunc(func(r extension.Registrar) error {
			return extension.Register[error, *demo.Echo](r)
		})
	})

	t.Run("reported and ignored by default", func(t *testing.T) {
		// Arrange
		a, _, logs := setupAppTest(t, &Config{}, failing)

		// Assert
		require.Len(t, a.Modules(), 1)
		assert.Equal(t, host.SetupFailed, a.Modules()[0].State)
		assert.ErrorIs(t, a.Modules()[0].Err, extension.ErrUndefinedCapability)
		assert.Contains(t, logs.String(), "Module failed.")
	})

	t.Run("fail fast aborts startup", func(t *testing.T) {
		// Act
		_, err := NewApp(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, &Config{FailFast: true}, hcl.NewLoader(), failing)

		// Assert
		assert.ErrorIs(t, err, extension.ErrPluginSetupFailure)
	})
}

func TestApp_PluginDirectory(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "garbage.so"), []byte("not a plugin"), 0o644))

	// Act
	a, _, _ := setupAppTest(t, &Config{PluginPath: dir})

	// Assert
	records := a.Modules()
	require.Len(t, records, 3)
	assert.Equal(t, "garbage.so", records[0].Name)
	assert.ErrorIs(t, records[0].Err, host.ErrModuleOpen)
}

func TestApp_DiscoveredModulesShareLoadOrder(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a-help.so"), nil, 0o644))
	open := func(path string) (host.Module, error) {
		return host.EntrypointModule(filepath.Base(path), func() extension.Entrypoint {
			return extension.EntrypointFunc(func(r extension.Registrar) error {
				return extension.RegisterInstance[demo.HelpPrinter](r, &demo.PlainHelpPrinter{})
			})
		}), nil
	}
	a, out, _ := setupAppTest(t, &Config{PluginPath: dir, open: open})

	// Act
	err := a.Run(context.Background(), "help", nil)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Available commands:", "the discovered printer sorts before fancyhelp")
	records := a.Modules()
	require.Len(t, records, 3)
	assert.Equal(t, "a-help.so", records[0].Name)
	assert.Equal(t, host.Loaded, records[0].State)
	assert.Equal(t, "envvars", records[1].Name)
	assert.Equal(t, "fancyhelp", records[2].Name)
	assert.Equal(t, host.SetupFailed, records[2].State)
	assert.ErrorIs(t, records[2].Err, extension.ErrPluginSetupFailure)
}

func TestApp_MissingPluginDirectoryIsIgnored(t *testing.T) {
	a, _, logs := setupAppTest(t, &Config{PluginPath: filepath.Join(t.TempDir(), "missing")})

	assert.Len(t, a.Modules(), 2)
	assert.Contains(t, logs.String(), "Module path does not exist")
}

func TestApp_ConfigFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "expandr.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
loader {
  skip = ["envvars"]
}
`), 0o600))

	// Act
	a, _, _ := setupAppTest(t, &Config{ConfigPath: path})
	err := a.Run(context.Background(), "env", nil)

	// Assert
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, host.Skipped, a.Modules()[0].State)
}

func TestApp_InvalidConfig(t *testing.T) {
	_, err := NewApp(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, &Config{LogFormat: "xml"}, hcl.NewLoader())
	assert.ErrorContains(t, err, "invalid log format")
}
