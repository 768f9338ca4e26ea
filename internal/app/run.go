package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/expandr/demo"
	"github.com/specialistvlad/expandr/internal/ctxlog"
)

// ErrUnknownCommand is returned by Run when no module provides the command.
var ErrUnknownCommand = errors.New("unknown command")

// Run dispatches the named command. An empty name runs "help".
func (a *App) Run(ctx context.Context, name string, args []string) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	if name == "" {
		name = "help"
	}

	scope := a.provider.NewScope()
	commands, err := demo.Commands(scope)
	if err != nil {
		return err
	}
	cmd, ok := demo.Find(commands, name)
	if !ok {
		return fmt.Errorf("%w %q, run 'help' to list the available commands", ErrUnknownCommand, name)
	}

	a.logger.Debug("Dispatching command.", "command", name, "args", len(args))
	if err := cmd.Execute(ctx, a.outW, args); err != nil {
		return fmt.Errorf("command %q failed: %w", name, err)
	}
	return nil
}
