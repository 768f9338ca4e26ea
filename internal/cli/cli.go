package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/specialistvlad/expandr/host"
	"github.com/specialistvlad/expandr/internal/app"
	"github.com/specialistvlad/expandr/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// NewRootCommand returns the expandr command tree. loader reads the file
// given with --config; modules replace the compiled-in ones when non-empty.
func NewRootCommand(loader config.Loader, modules ...host.Module) *cobra.Command {
	cfg := &app.Config{}

	rootCmd := &cobra.Command{
		Use:   "expandr [flags] [command] [args...]",
		Short: "expandr - a host application extended by plugin modules",
		Long: `expandr loads plugin modules, lets them contribute commands and replace
the help printer, then dispatches the given command.

Run without a command to list what the loaded modules provide.`,
		Example: `  # List the available commands
  expandr

  # Load Go plugins from a directory and run one of their commands
  expandr --plugins ./plugins env HOME

  # Ignore a module
  expandr --skip fancyhelp help`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, cfg, loader, modules)
			if err != nil {
				return err
			}
			defer a.Close()

			name, rest := "", []string(nil)
			if len(args) > 0 {
				name, rest = args[0], args[1:]
			}
			err = a.Run(cmd.Context(), name, rest)
			if errors.Is(err, app.ErrUnknownCommand) {
				return usageError(err)
			}
			return err
		},
	}
	rootCmd.Flags().SetInterspersed(false)
	// "help" belongs to the demo commands.
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.ConfigPath, "config", "c", "", "Path to an HCL configuration file.")
	flags.StringVarP(&cfg.PluginPath, "plugins", "p", "", "Plugin file or directory to load modules from.")
	flags.StringVar(&cfg.Pattern, "pattern", "", "Glob module file names must match (default \"*.so\").")
	flags.StringSliceVar(&cfg.Skip, "skip", nil, "Module names to skip.")
	flags.BoolVar(&cfg.FailFast, "fail-fast", false, "Abort when any module fails to load.")
	flags.BoolVar(&cfg.ParallelResolve, "parallel-resolve", false, "Resolve module entry points concurrently.")
	flags.StringVar(&cfg.LogFormat, "log-format", "", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&cfg.TelemetryURL, "telemetry-url", "", "socket.io server receiving module lifecycle events.")

	rootCmd.AddCommand(newModulesCommand(cfg, loader, modules))
	return rootCmd
}

func newModulesCommand(cfg *app.Config, loader config.Loader, modules []host.Module) *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the modules and their load state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, cfg, loader, modules)
			if err != nil {
				return err
			}
			defer a.Close()
			return printModules(cmd.OutOrStdout(), a.Modules())
		},
	}
}

func newApp(cmd *cobra.Command, cfg *app.Config, loader config.Loader, modules []host.Module) (*app.App, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := app.NewApp(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, loader, modules...)
	if err != nil {
		return nil, fmt.Errorf("startup failed: %w", err)
	}
	return a, nil
}

func printModules(out io.Writer, records []host.ModuleRecord) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODULE\tSTATE\tPATH\tERROR")
	for _, rec := range records {
		errText := ""
		if rec.Err != nil {
			errText = rec.Err.Error()
		}
		path := rec.Path
		if path == "" {
			path = "(built-in)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.Name, rec.State, path, errText)
	}
	return w.Flush()
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, outW, errW io.Writer, loader config.Loader, modules ...host.Module) error {
	rootCmd := NewRootCommand(loader, modules...)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(outW)
	rootCmd.SetErr(errW)
	return rootCmd.ExecuteContext(ctx)
}
