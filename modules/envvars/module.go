// Package envvars contributes an "env" command that prints the process environment.
package envvars

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/specialistvlad/expandr/demo"
	"github.com/specialistvlad/expandr/extension"
	"github.com/specialistvlad/expandr/host"
)

// Command prints environment variables, optionally filtered by name prefix.
type Command struct {
	environ func() []string
}

func (*Command) Name() string        { return "env" }
func (*Command) Description() string { return "Print environment variables, optionally filtered by prefix." }

func (c *Command) Execute(_ context.Context, out io.Writer, args []string) error {
	environ := c.environ
	if environ == nil {
		environ = os.Environ
	}
	vars := Environ(environ())

	names := make([]string, 0, len(vars))
	for name := range vars {
		if len(args) > 0 && !strings.HasPrefix(name, args[0]) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(out, "%s=%s\n", name, vars[name]); err != nil {
			return err
		}
	}
	return nil
}

// Environ splits KEY=VALUE pairs into a map. Malformed entries are dropped.
func Environ(pairs []string) map[string]string {
	envMap := make(map[string]string, len(pairs))
	for _, e := range pairs {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			envMap[pair[0]] = pair[1]
		}
	}
	return envMap
}

// New is the module's entry point.
func New() extension.Entrypoint {
	return extension.EntrypointFunc(func(r extension.Registrar) error {
		return extension.Register[demo.Command, *Command](r)
	})
}

// Module is the compiled-in form of the plugin.
var Module = host.EntrypointModule("envvars", New)
