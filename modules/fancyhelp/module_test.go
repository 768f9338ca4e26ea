package fancyhelp

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/expandr/capability"
	"github.com/specialistvlad/expandr/container"
	"github.com/specialistvlad/expandr/demo"
	"github.com/specialistvlad/expandr/host"
)

func TestModule_ReplacesDefaultPrinter(t *testing.T) {
	// Arrange
	ctx := context.Background()
	services := container.NewCollection()
	_, err := host.Setup(ctx, services, func(ctx context.Context, e *host.Engine) error {
		if err := host.ExposeSingleton[demo.HelpPrinter](e, capability.Type[*demo.PlainHelpPrinter]()); err != nil {
			return err
		}
		_, err := e.LoadModule(ctx, Module, nil)
		return err
	})
	require.NoError(t, err)

	// Act
	printer, err := container.Resolve[demo.HelpPrinter](container.Build(services))

	// Assert
	require.NoError(t, err)
	assert.IsType(t, &Printer{}, printer)
	assert.Equal(t, 1, services.Count(container.Of[demo.HelpPrinter]()))
}

func TestPrinter_Print(t *testing.T) {
	var out bytes.Buffer
	err := (&Printer{}).Print(&out, []demo.Command{&demo.Echo{}, &demo.Help{}})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Commands")
	assert.Contains(t, out.String(), "echo")
	assert.Contains(t, out.String(), "Print the given arguments.")
}
