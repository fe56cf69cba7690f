package calc

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrDivisionByZero indicates a known divisor of exactly zero.
	ErrDivisionByZero = errors.New("calc: division by zero")

	// ErrUnexpected indicates a fault with no dedicated error value.
	ErrUnexpected = errors.New("calc: unexpected fault")
)

// FaultError wraps an unanticipated fault with its cause.
type FaultError struct {
	Op    string
	Cause any
}

func (e *FaultError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%v", e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *FaultError) Unwrap() error {
	return ErrUnexpected
}

// Guard runs fn and converts a panic into a *FaultError.
func Guard[T any](op string, fn func() (T, error)) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			res = zero
			err = &FaultError{Op: op, Cause: r}
		}
	}()
	return fn()
}
