package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/leofalp/mathkit/providers/observability"
	"github.com/leofalp/mathkit/providers/observability/slogobs"
	"github.com/leofalp/mathkit/providers/tool"
	"github.com/leofalp/mathkit/providers/tool/calculator"
)

// RootOptions holds global flags and the state shared by all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "text" | "json"
	LogFormat string // "" (environment) | "compact" | "pretty" | "json"
	EnvFile   string

	// Catalog is the set of tools reachable through "call" and "tools".
	Catalog *tool.Catalog

	observer *slogobs.Observer
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ValidLogFormats defines the allowed values of --log-format.
var ValidLogFormats = []string{"compact", "pretty", "json"}

// NewRootCommand creates the root command with the calculator catalog.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithCatalog(calculator.NewCatalog())
}

// NewRootCommandWithCatalog creates the root command serving catalog.
func NewRootCommandWithCatalog(catalog *tool.Catalog) *cobra.Command {
	opts := &RootOptions{Catalog: catalog}

	cmd := &cobra.Command{
		Use:   "mathkit",
		Short: "mathkit - floating-point arithmetic from the command line",
		Long: `Add, divide, exponentiate, and take square roots of float64 values.

Division by zero and square roots of negative numbers are rejected with
exit code 1. Pass negative operands after "--", e.g. mathkit sqrt -- -4.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log at DEBUG level")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (compact|pretty|json), defaults to MATHKIT_LOG_FORMAT")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "", "load environment variables from this file")

	cmd.AddCommand(NewArithCommands(opts)...)
	cmd.AddCommand(NewCallCommand(opts))
	cmd.AddCommand(NewToolsCommand(opts))

	return cmd
}

// setup validates the global flags, loads the env file, and installs the
// observer in the command context.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	if o.LogFormat != "" && !slices.Contains(ValidLogFormats, o.LogFormat) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid log format %q: must be one of %v", o.LogFormat, ValidLogFormats))
	}
	if o.EnvFile != "" {
		if err := godotenv.Load(o.EnvFile); err != nil {
			return WrapExitError(ExitCommandError, "cannot load env file", err)
		}
	}

	// Options are read after the env file so its variables take effect.
	observerOpts := []slogobs.Option{slogobs.WithOutput(cmd.ErrOrStderr())}
	if o.Verbose {
		observerOpts = append(observerOpts, slogobs.WithLevel(slog.LevelDebug))
	}
	if o.LogFormat != "" {
		observerOpts = append(observerOpts, slogobs.WithFormat(slogobs.ParseFormat(o.LogFormat)))
	}
	o.observer = slogobs.New(observerOpts...)

	cmd.SetContext(observability.ContextWithObserver(cmd.Context(), o.observer))
	return nil
}

// formatter returns an OutputFormatter bound to cmd's writers.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}
