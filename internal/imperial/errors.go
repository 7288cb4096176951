package imperial

import "errors"

var (
	// ErrDivideByZero is returned when the right operand of a division is zero.
	ErrDivideByZero = errors.New("cannot divide by zero")

	// ErrUnknownOperation is returned for an operation outside Add..Divide.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidInput is returned by Evaluate when a token is not a measurement
	// or an operator.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFinite is returned when a result cannot be placed on a tape:
	// NaN, infinite, or at least MaxInches long.
	ErrNotFinite = errors.New("result is not a finite length")
)
