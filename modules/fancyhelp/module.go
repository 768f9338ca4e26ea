// Package fancyhelp replaces the demo host's help printer with a styled one.
package fancyhelp

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/specialistvlad/expandr/demo"
	"github.com/specialistvlad/expandr/extension"
	"github.com/specialistvlad/expandr/host"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).PaddingLeft(2)
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer renders commands as a styled table.
type Printer struct{}

func (*Printer) Print(out io.Writer, commands []demo.Command) error {
	width := 0
	for _, c := range commands {
		width = max(width, lipgloss.Width(c.Name()))
	}

	rows := []string{titleStyle.Render("✨ Commands")}
	for _, c := range commands {
		name := nameStyle.Width(width + 4).Render(c.Name())
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, name, descStyle.Render(c.Description())))
	}
	_, err := fmt.Fprintln(out, lipgloss.JoinVertical(lipgloss.Left, rows...))
	return err
}

// New is the module's entry point.
func New() extension.Entrypoint {
	return extension.EntrypointFunc(func(r extension.Registrar) error {
		return extension.Register[demo.HelpPrinter, *Printer](r)
	})
}

// Module is the compiled-in form of the plugin.
var Module = host.EntrypointModule("fancyhelp", New)
