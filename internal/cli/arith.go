package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/mathkit/core/arith"
	"github.com/leofalp/mathkit/core/parse"
	"github.com/leofalp/mathkit/providers/observability"
	"github.com/leofalp/mathkit/providers/tool/calculator"
)

type arithCommand struct {
	op      string
	use     string
	short   string
	example string
	arity   int
}

var arithCommands = []arithCommand{
	{
		op:      arith.OpAdd,
		use:     "add A B",
		short:   "Print A + B",
		example: "  mathkit add 2 3          # 5",
		arity:   2,
	},
	{
		op:    arith.OpDivide,
		use:   "divide A B",
		short: "Print A / B; B must not be zero",
		example: `  mathkit divide 10 4      # 2.5
  mathkit divide 1 0       # error, exit code 1`,
		arity: 2,
	},
	{
		op:      arith.OpPower,
		use:     "power A B",
		short:   "Print A raised to the power B",
		example: "  mathkit power 2 -- -1    # 0.5",
		arity:   2,
	},
	{
		op:    arith.OpSqrt,
		use:   "sqrt A",
		short: "Print the principal square root of A; A must not be negative",
		example: `  mathkit sqrt 16          # 4
  mathkit sqrt -- -4       # error, exit code 1`,
		arity: 1,
	},
}

// NewArithCommands creates the add, divide, power, and sqrt commands.
func NewArithCommands(rootOpts *RootOptions) []*cobra.Command {
	commands := make([]*cobra.Command, 0, len(arithCommands))
	for _, ac := range arithCommands {
		commands = append(commands, newArithCommand(rootOpts, ac))
	}
	return commands
}

func newArithCommand(opts *RootOptions, ac arithCommand) *cobra.Command {
	return &cobra.Command{
		Use:     ac.use,
		Short:   ac.short,
		Example: ac.example,
		Args:    cobra.ExactArgs(ac.arity),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArith(cmd, opts, ac.op, args)
		},
	}
}

func runArith(cmd *cobra.Command, opts *RootOptions, op string, args []string) error {
	operands := make([]float64, len(args))
	for i, arg := range args {
		v, err := parse.ParseOperand(arg)
		if err != nil {
			return WrapExitError(ExitCommandError, op, err)
		}
		operands[i] = v
	}

	input := calculator.Input{A: operands[0], Op: op}
	if len(operands) > 1 {
		input.B = operands[1]
	}

	ctx, span := opts.observer.StartSpan(cmd.Context(), observability.SpanCLICommand,
		observability.String(observability.AttrArithOp, op))
	defer span.End()

	out, err := calculator.Calc(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
		if errors.Is(err, arith.ErrInvalidArgument) {
			return WrapExitError(ExitFailure, "", err)
		}
		return WrapExitError(ExitCommandError, "", err)
	}
	span.SetStatus(observability.StatusOK, "")

	opts.observer.Debug(ctx, "Computed",
		observability.String(observability.AttrArithOp, op),
		observability.String(observability.AttrArithResult, FormatNumber(out.Result)),
	)

	if err := opts.formatter(cmd).Result(op, operands, out.Result); err != nil {
		return WrapExitError(ExitFailure, "cannot write result", fmt.Errorf("%s: %w", op, err))
	}
	return nil
}
