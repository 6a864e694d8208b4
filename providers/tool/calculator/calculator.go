package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leofalp/mathkit/core/arith"
	"github.com/leofalp/mathkit/core/cost"
	"github.com/leofalp/mathkit/providers/observability"
	"github.com/leofalp/mathkit/providers/tool"
)

// Name is the name the calculator tool registers under.
const Name = "Calculator"

// ErrUnsupportedOperation is returned by [Calc] for an Op it does not know.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// Input holds the operands and the operation to apply. B is ignored by sqrt.
type Input struct {
	A  float64 `json:"A"            jsonschema:"description=First operand (the radicand for sqrt),required"`
	B  float64 `json:"B,omitempty"  jsonschema:"description=Second operand; unused by sqrt"`
	Op string  `json:"Op"           jsonschema:"description=Operation to apply,enum=add,enum=divide,enum=power,enum=sqrt,required"`
}

// Output carries the computed value.
type Output struct {
	Result float64 `json:"result" jsonschema:"description=The result of the calculation"`
}

// MarshalJSON encodes Result as a number, or as "NaN", "+Inf", or "-Inf"
// when it is not finite. Power and Add produce such values legitimately.
func (o Output) MarshalJSON() ([]byte, error) {
	var result any = o.Result
	if math.IsNaN(o.Result) || math.IsInf(o.Result, 0) {
		result = strconv.FormatFloat(o.Result, 'g', -1, 64)
	}
	return json.Marshal(struct {
		Result any `json:"result"`
	}{Result: result})
}

// NewCalculatorTool returns the calculator as a [tool.Tool] annotated with
// zero-cost local metrics.
func NewCalculatorTool() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output](
		Name,
		Calc,
		tool.WithDescription("Performs add, divide, power, and sqrt on floating-point operands."),
		tool.WithMetrics(cost.ToolMetrics{
			Amount:                  0.0,
			Currency:                cost.DefaultCurrency,
			CostDescription:         "local computation",
			Accuracy:                1.0,
			AverageDurationInMillis: 1,
		}),
	)
}

// NewCatalog returns a catalog holding the calculator tool.
func NewCatalog() *tool.Catalog {
	return tool.NewCatalogWithTools(NewCalculatorTool())
}

// Calc applies req.Op to req.A and req.B. Op is matched case-insensitively
// after trimming whitespace:
//
//	add, +                  arith.Add(A, B)
//	div, divide, /          arith.Divide(A, B)
//	pow, power, ^, **       arith.Power(A, B)
//	sqrt, √                 arith.Sqrt(A)
//
// Precondition failures come back as [arith.ErrInvalidArgument]; any other Op
// yields [ErrUnsupportedOperation].
//
// Example:
//
//	out, err := calculator.Calc(ctx, calculator.Input{A: 10, B: 4, Op: "div"})
//	// out.Result == 2.5
func Calc(ctx context.Context, req Input) (Output, error) {
	op, err := Canonical(req.Op)
	if err != nil {
		return Output{}, err
	}

	var result float64
	switch op {
	case arith.OpAdd:
		result = arith.Add(req.A, req.B)
	case arith.OpDivide:
		result, err = arith.Divide(req.A, req.B)
	case arith.OpPower:
		result = arith.Power(req.A, req.B)
	case arith.OpSqrt:
		result, err = arith.Sqrt(req.A)
	}

	if span := observability.SpanFromContext(ctx); span != nil {
		attrs := []observability.Attribute{
			observability.String(observability.AttrArithOp, op),
			observability.Float64(observability.AttrArithOperandA, req.A),
		}
		if op != arith.OpSqrt {
			attrs = append(attrs, observability.Float64(observability.AttrArithOperandB, req.B))
		}
		if err == nil {
			attrs = append(attrs, observability.Float64(observability.AttrArithResult, result))
		} else if errors.Is(err, arith.ErrInvalidArgument) {
			attrs = append(attrs, observability.String(observability.AttrErrorType, "invalid_argument"))
		}
		span.SetAttributes(attrs...)
	}

	if err != nil {
		return Output{}, err
	}
	return Output{Result: result}, nil
}

// Canonical maps an operation alias to one of the arith Op constants.
func Canonical(op string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(op)) {
	case "add", "+":
		return arith.OpAdd, nil
	case "div", "divide", "/":
		return arith.OpDivide, nil
	case "pow", "power", "^", "**":
		return arith.OpPower, nil
	case "sqrt", "√":
		return arith.OpSqrt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOperation, op)
	}
}
