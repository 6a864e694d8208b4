package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/leofalp/mathkit/core/cost"
	"github.com/leofalp/mathkit/core/parse"
	"github.com/leofalp/mathkit/internal/jsonschema"
	"github.com/leofalp/mathkit/providers/observability"
)

// ErrInvalidInput wraps failures to decode a tool's JSON input.
var ErrInvalidInput = errors.New("invalid tool input")

// Tool binds a name and description to a typed function together with the
// JSON schemas of its input (I) and output (O).
type Tool[I, O any] struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Output      *jsonschema.Schema
	Function    func(ctx context.Context, input I) (O, error)
	// Metrics contains optional cost and performance metrics for this tool execution.
	Metrics *cost.ToolMetrics
}

// ToolDescription is what a tool advertises about itself.
type ToolDescription struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
	Output      *jsonschema.Schema `json:"output,omitempty"`
	Metrics     *cost.ToolMetrics  `json:"metrics,omitempty"`
}

// GenericTool is the type-erased view of a [Tool], used by [Catalog] and
// any caller that only has JSON to offer.
type GenericTool interface {
	// ToolInfo returns the tool's name, description, and schemas.
	ToolInfo() ToolDescription

	// Call runs the tool on JSON-encoded input and returns JSON-encoded output.
	Call(ctx context.Context, inputJSON string) (string, error)

	// GetMetrics returns the configured metrics, or nil.
	GetMetrics() *cost.ToolMetrics
}

type funcToolOptions struct {
	Description string
	Metrics     *cost.ToolMetrics
}

// Option configures a tool created by [NewTool].
type Option func(*funcToolOptions)

// WithDescription sets a human-readable description for the tool.
func WithDescription(description string) Option {
	return func(o *funcToolOptions) {
		o.Description = description
	}
}

// WithMetrics sets the metrics (cost, accuracy, speed) for executing this tool.
func WithMetrics(toolMetrics cost.ToolMetrics) Option {
	return func(o *funcToolOptions) {
		o.Metrics = &toolMetrics
	}
}

// NewTool constructs a [Tool] named name around function. It panics if the
// `jsonschema` tags on I or O are malformed, since those are fixed at
// compile time.
//
// Example:
//
//	sqrtTool := tool.NewTool("Sqrt", sqrtFunc,
//	    tool.WithDescription("Principal square root of a non-negative number."),
//	)
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...Option) *Tool[I, O] {
	toolOptions := &funcToolOptions{}
	for _, option := range options {
		option(toolOptions)
	}

	return &Tool[I, O]{
		Name:        name,
		Description: toolOptions.Description,
		Parameters:  jsonschema.MustGenerateJSONSchema[I](),
		Output:      jsonschema.MustGenerateJSONSchema[O](),
		Function:    function,
		Metrics:     toolOptions.Metrics,
	}
}

var _ GenericTool = (*Tool[struct{}, struct{}])(nil)

// ToolInfo returns the tool's [ToolDescription].
func (t *Tool[I, O]) ToolInfo() ToolDescription {
	return ToolDescription{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  t.Parameters,
		Output:      t.Output,
		Metrics:     t.Metrics,
	}
}

// GetMetrics returns the metrics (cost and performance data) for this tool, if any.
func (t *Tool[I, O]) GetMetrics() *cost.ToolMetrics {
	return t.Metrics
}

// Call decodes inputJSON into I, runs the tool function, and returns the
// output encoded as JSON.
//
// If ctx carries a span, start and end events plus input, output, duration,
// and error attributes are recorded on it. If ctx carries an observer but no
// span, Call opens a tool.execution span of its own. With an observer it also
// updates the mathkit.tool.* metrics and logs the outcome.
//
// Decoding failures wrap [ErrInvalidInput]; errors returned by the function
// are wrapped with the tool name so errors.Is keeps working on them.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	observer := observability.ObserverFromContext(ctx)
	span := observability.SpanFromContext(ctx)
	if span == nil && observer != nil {
		ctx, span = observer.StartSpan(ctx, observability.SpanToolExecution,
			observability.String(observability.AttrToolName, t.Name))
		defer span.End()
	}
	nameAttr := observability.String(observability.AttrToolName, t.Name)

	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			nameAttr,
			observability.String(observability.AttrToolInput, observability.TruncateString(inputJSON, 0)),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd, nameAttr)
	}
	if observer != nil {
		observer.Counter(observability.MetricToolCalls).Add(ctx, 1, nameAttr)
	}

	start := time.Now()
	output, err := t.run(ctx, inputJSON)
	duration := time.Since(start)

	if observer != nil {
		observer.Histogram(observability.MetricToolDuration).Record(ctx, float64(duration.Microseconds())/1000, nameAttr)
	}

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.String(observability.AttrToolError, err.Error()),
				observability.Duration(observability.AttrToolDuration, duration),
			)
			span.SetStatus(observability.StatusError, err.Error())
		}
		if observer != nil {
			observer.Counter(observability.MetricToolErrors).Add(ctx, 1, nameAttr)
			observer.Warn(ctx, "Tool execution failed", nameAttr, observability.Error(err))
		}
		return "", err
	}

	if span != nil {
		attrs := []observability.Attribute{
			observability.String(observability.AttrToolOutput, output),
			observability.Duration(observability.AttrToolDuration, duration),
		}
		if t.Metrics != nil {
			attrs = append(attrs,
				observability.Float64(observability.AttrToolCostAmount, t.Metrics.Amount),
				observability.String(observability.AttrToolCostCurrency, t.Metrics.Currency),
			)
		}
		span.SetAttributes(attrs...)
		span.SetStatus(observability.StatusOK, "")
	}
	if observer != nil {
		observer.Debug(ctx, "Tool executed", nameAttr,
			observability.String(observability.AttrToolOutput, output),
			observability.Duration(observability.AttrToolDuration, duration),
		)
	}

	return output, nil
}

func (t *Tool[I, O]) run(ctx context.Context, inputJSON string) (string, error) {
	input, err := parse.ParseStringAs[I](inputJSON)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %v", t.Name, ErrInvalidInput, err)
	}

	output, err := t.Function(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%s: %w", t.Name, err)
	}

	encoded, err := json.Marshal(output)
	if err != nil {
		return "", fmt.Errorf("%s: encode output: %w", t.Name, err)
	}
	return string(encoded), nil
}
