package observability

import (
	"context"
	"fmt"
	"time"
)

// Provider is what mathkit components pull from the context to record what
// they do. The CLI installs a slogobs.Observer; library callers may install
// their own or none at all.
type Provider interface {
	Tracer
	Metrics
	Logger
}

// --- TRACING ---

// Tracer opens spans. The CLI opens one cli.command span per invocation and
// tool.Call opens a tool.execution span when the context has none yet.
type Tracer interface {
	StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span collects what happened during one command or tool call. The
// calculator attaches arith.op, the operands, and either arith.result or
// error.type to the span it finds in the context.
type Span interface {
	End()
	SetAttributes(attrs ...Attribute)
	SetStatus(code StatusCode, description string)
	RecordError(err error)
	AddEvent(name string, attrs ...Attribute)
}

// StatusCode is the outcome recorded on a span.
type StatusCode int

const (
	StatusUnset StatusCode = iota
	StatusOK
	// StatusError marks a rejected input or a failed tool call.
	StatusError
)

// String returns "unset", "ok", or "error".
func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "unset"
	}
}

// --- METRICS ---

// Metrics hands out named instruments, such as MetricToolCalls. Asking twice
// for the same name returns the same instrument.
type Metrics interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// Counter only goes up, e.g. mathkit.tool.calls.
type Counter interface {
	Add(ctx context.Context, value int64, attrs ...Attribute)
}

// Histogram records one observation per call, e.g. mathkit.tool.duration
// in milliseconds.
type Histogram interface {
	Record(ctx context.Context, value float64, attrs ...Attribute)
}

// --- LOGGING ---

// Logger writes leveled, structured records. Trace sits below Debug and is
// only emitted with MATHKIT_LOG_LEVEL=TRACE.
type Logger interface {
	Trace(ctx context.Context, msg string, attrs ...Attribute)
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// --- ATTRIBUTES ---

// Attribute is one key/value pair on a span, metric, or log record. Keys
// come from semconv.go.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute, e.g. String(AttrArithOp, "divide").
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 creates a float attribute for operands and results. NaN and
// infinities are kept as is; log handlers render them as strings.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error creates an attribute under AttrError. A nil error yields an empty value.
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: AttrError, Value: ""}
	}
	return Attribute{Key: AttrError, Value: err.Error()}
}

// --- UTILITIES ---

// MaxRecordedInputLength bounds the tool input copied onto a span.
const MaxRecordedInputLength = 500

// TruncateString cuts s to maxLen bytes and appends the original length.
// A non-positive maxLen means MaxRecordedInputLength.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = MaxRecordedInputLength
	}
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}
