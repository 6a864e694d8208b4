package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/mathkit/core/arith"
	"github.com/leofalp/mathkit/providers/tool"
	"github.com/leofalp/mathkit/providers/tool/calculator"
)

// CallOptions holds flags for the call command.
type CallOptions struct {
	*RootOptions
	Args string
}

// CallResult is the JSON shape of the call command's output.
type CallResult struct {
	Tool   string          `json:"tool"`
	Output json.RawMessage `json:"output"`
}

// NewCallCommand creates the call command.
func NewCallCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CallOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Invoke a catalog tool with JSON arguments",
		Long: `Invoke a catalog tool with JSON arguments.

Malformed JSON (unquoted keys, single quotes, trailing commas, truncation,
markdown fences) is repaired before decoding.`,
		Example: `  mathkit call calculator --args '{"A": 2, "B": 10, "Op": "pow"}'
  mathkit call calculator --args "{A: 81, Op: 'sqrt'}"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return callTool(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Args, "args", "{}", "tool arguments as JSON")

	return cmd
}

func callTool(cmd *cobra.Command, opts *CallOptions, name string) error {
	if !opts.Catalog.Has(name) {
		available := "none"
		if names := opts.Catalog.Names(); len(names) > 0 {
			available = strings.Join(names, ", ")
		}
		return WrapExitError(ExitCommandError, "",
			fmt.Errorf("%w: %q (available: %s)", tool.ErrToolNotFound, name, available))
	}

	output, err := opts.Catalog.Call(cmd.Context(), name, opts.Args)
	if err != nil {
		return WrapExitError(callExitCode(err), "", err)
	}

	result := CallResult{Tool: name, Output: json.RawMessage(output)}
	if t, ok := opts.Catalog.Get(name); ok {
		result.Tool = t.ToolInfo().Name
	}
	return opts.formatter(cmd).Value(result, output+"\n")
}

func callExitCode(err error) int {
	switch {
	case errors.Is(err, arith.ErrInvalidArgument):
		return ExitFailure
	case errors.Is(err, tool.ErrToolNotFound),
		errors.Is(err, tool.ErrInvalidInput),
		errors.Is(err, calculator.ErrUnsupportedOperation):
		return ExitCommandError
	default:
		return ExitFailure
	}
}

// NewToolsCommand creates the tools command.
func NewToolsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List catalog tools and their input schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTools(cmd, rootOpts)
		},
	}
}

func listTools(cmd *cobra.Command, opts *RootOptions) error {
	descriptions := opts.Catalog.Descriptions()

	var b strings.Builder
	for _, d := range descriptions {
		fmt.Fprintf(&b, "%s\n", d.Name)
		if d.Description != "" {
			fmt.Fprintf(&b, "  %s\n", d.Description)
		}
		if d.Parameters != nil {
			fmt.Fprintf(&b, "  parameters: %s\n", d.Parameters)
		}
		if d.Metrics != nil {
			fmt.Fprintf(&b, "  cost: %s\n", d.Metrics)
			if quality := d.Metrics.MetricsString(); quality != "" {
				fmt.Fprintf(&b, "  metrics: %s\n", quality)
			}
		}
	}

	return opts.formatter(cmd).Value(descriptions, b.String())
}
