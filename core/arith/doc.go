// Package arith provides the four numeric operations at the heart of mathkit:
// [Add], [Divide], [Power], and [Sqrt].
//
// Every function is pure and operates on float64 values. [Divide] and [Sqrt]
// validate their single precondition before computing and report a violation
// as an [*InvalidArgumentError], which matches [ErrInvalidArgument] under
// [errors.Is]. [Add] and [Power] never fail; their edge cases (overflow to
// infinity, NaN for a negative base with a fractional exponent) follow IEEE 754.
//
// The functions hold no state and may be called concurrently.
package arith
