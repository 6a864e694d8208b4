package arith

import "math"

// Add returns the sum of a and b. Overflow yields ±Inf as IEEE 754 dictates.
func Add(a, b float64) float64 {
	return a + b
}

// Divide returns a / b. It returns an [*InvalidArgumentError] when b is zero
// (either sign), checked before the division is performed.
//
// Example:
//
//	q, err := arith.Divide(10, 2) // 5, nil
//	_, err = arith.Divide(1, 0)   // errors.Is(err, arith.ErrInvalidArgument) == true
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, invalidArgument(OpDivide, "cannot divide by zero")
	}
	return a / b, nil
}

// Power returns a raised to the power b.
// No domain validation is done: a negative base with a fractional exponent
// yields NaN, exactly as [math.Pow] does.
func Power(a, b float64) float64 {
	return math.Pow(a, b)
}

// Sqrt returns the principal square root of a. It returns an
// [*InvalidArgumentError] when a is negative. Negative zero is accepted.
func Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, invalidArgument(OpSqrt, "cannot take square root of a negative number")
	}
	return math.Sqrt(a), nil
}
