package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Arithmetic precondition violated (divide by zero, negative sqrt)
	ExitCommandError = 2 // Usage error (bad operand, unknown tool, malformed flags)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message, may be empty when Err says it all
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	switch {
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that are not an
// ExitError come from cobra itself (unknown flag, wrong argument count) and
// map to ExitCommandError. A nil error is ExitSuccess.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// ArithResult is the JSON shape of one arithmetic command's output.
// Non-finite numbers are rendered as the strings "NaN", "+Inf", and "-Inf".
type ArithResult struct {
	Op       string `json:"op"`
	Operands []any  `json:"operands"`
	Result   any    `json:"result"`
}

// Result writes the outcome of an arithmetic operation. Text output is the
// bare number in shortest round-trip form.
func (f *OutputFormatter) Result(op string, operands []float64, result float64) error {
	if f.Format == "json" {
		out := ArithResult{Op: op, Operands: make([]any, len(operands)), Result: jsonNumber(result)}
		for i, v := range operands {
			out.Operands[i] = jsonNumber(v)
		}
		return json.NewEncoder(f.Writer).Encode(out)
	}

	_, err := fmt.Fprintln(f.Writer, FormatNumber(result))
	return err
}

// Value writes data as indented JSON in json mode, or text via fmt otherwise.
func (f *OutputFormatter) Value(data any, text string) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	_, err := fmt.Fprint(f.Writer, text)
	return err
}

// FormatNumber renders v the way the text output does: "5", "2.5", "1e+21",
// "NaN", "+Inf".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// jsonNumber keeps finite values numeric; encoding/json rejects NaN and ±Inf.
func jsonNumber(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return FormatNumber(v)
	}
	return v
}
