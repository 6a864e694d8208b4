package arith

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the error kind shared by every precondition failure.
// Use errors.Is to test for it; the concrete value is an [*InvalidArgumentError].
var ErrInvalidArgument = errors.New("invalid argument")

// Operation names used in errors and by callers that dispatch on them.
const (
	OpAdd    = "add"
	OpDivide = "divide"
	OpPower  = "power"
	OpSqrt   = "sqrt"
)

// InvalidArgumentError reports an input that violates an operation's
// precondition. It is returned before any computation happens.
type InvalidArgumentError struct {
	// Op is the operation that rejected the input (one of the Op constants).
	Op string
	// Message is the human-readable reason.
	Message string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Is reports whether target is [ErrInvalidArgument].
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(op, message string) error {
	return &InvalidArgumentError{Op: op, Message: message}
}
