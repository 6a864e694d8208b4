package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Tool Execution Attributes ---

const (
	// AttrToolName is the name of the tool being executed
	AttrToolName = "tool.name"

	// AttrToolDescription is the tool description
	AttrToolDescription = "tool.description"

	// AttrToolInput is the tool input (serialized)
	AttrToolInput = "tool.input"

	// AttrToolOutput is the tool output (serialized)
	AttrToolOutput = "tool.output"

	// AttrToolDuration is the execution duration
	AttrToolDuration = "tool.duration"

	// AttrToolError is the error message if tool execution failed
	AttrToolError = "tool.error"

	AttrToolCostAmount   = "tool.cost.amount"
	AttrToolCostCurrency = "tool.cost.currency"
)

// --- Arithmetic Attributes ---

const (
	// AttrArithOp is the operation name (add, divide, power, sqrt)
	AttrArithOp = "arith.op"

	// AttrArithOperandA is the first operand
	AttrArithOperandA = "arith.operand.a"

	// AttrArithOperandB is the second operand, absent for unary operations
	AttrArithOperandB = "arith.operand.b"

	// AttrArithResult is the computed value
	AttrArithResult = "arith.result"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrErrorType is the error kind, e.g. "invalid_argument"
	AttrErrorType = "error.type"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanToolExecution is the span name for tool executions
	SpanToolExecution = "tool.execution"

	// SpanCLICommand is the span name for a single CLI invocation
	SpanCLICommand = "cli.command"
)

// --- Event Names ---

const (
	// EventToolExecutionStart marks the start of tool execution
	EventToolExecutionStart = "tool.execution.start"

	// EventToolExecutionEnd marks the end of tool execution
	EventToolExecutionEnd = "tool.execution.end"
)

// --- Metric Names ---

const (
	// MetricToolCalls counts tool invocations
	MetricToolCalls = "mathkit.tool.calls"

	// MetricToolErrors counts failed tool invocations
	MetricToolErrors = "mathkit.tool.errors"

	// MetricToolDuration is the histogram of tool execution time in milliseconds
	MetricToolDuration = "mathkit.tool.duration"
)
