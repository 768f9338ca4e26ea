// Package demo holds the capabilities the expandr demo host exposes to its
// modules, together with their default implementations.
package demo

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/expandr/container"
)

// Command is a named action the demo host can dispatch. Any number of
// modules may contribute commands.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, out io.Writer, args []string) error
}

// HelpPrinter renders the list of available commands. Exactly one is active.
type HelpPrinter interface {
	Print(out io.Writer, commands []Command) error
}

// Echo prints its arguments.
type Echo struct{}

func (*Echo) Name() string        { return "echo" }
func (*Echo) Description() string { return "Print the given arguments." }

func (*Echo) Execute(_ context.Context, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, strings.Join(args, " "))
	return err
}

// Help prints every registered command with the active HelpPrinter.
type Help struct {
	r container.Resolver
}

func (h *Help) Init(r container.Resolver) error {
	h.r = r
	return nil
}

func (*Help) Name() string        { return "help" }
func (*Help) Description() string { return "List the available commands." }

func (h *Help) Execute(_ context.Context, out io.Writer, _ []string) error {
	printer, err := container.Resolve[HelpPrinter](h.r)
	if err != nil {
		return fmt.Errorf("resolving help printer: %w", err)
	}
	commands, err := Commands(h.r)
	if err != nil {
		return err
	}
	return printer.Print(out, commands)
}

// PlainHelpPrinter prints an aligned two-column list.
type PlainHelpPrinter struct{}

func (*PlainHelpPrinter) Print(out io.Writer, commands []Command) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Available commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %s\t%s\n", c.Name(), c.Description())
	}
	return w.Flush()
}

// Commands resolves every registered command. Nil registrations are dropped.
func Commands(r container.Resolver) ([]Command, error) {
	commands, err := container.ResolveAll[Command](r)
	if err != nil {
		return nil, fmt.Errorf("resolving commands: %w", err)
	}
	return slices.DeleteFunc(commands, func(c Command) bool { return c == nil }), nil
}

// Find returns the command called name.
func Find(commands []Command, name string) (Command, bool) {
	for _, c := range commands {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}
