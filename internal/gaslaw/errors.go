package gaslaw

import (
	"errors"
	"fmt"
)

var (
	ErrMultipleUnknowns       = errors.New("gaslaw: exactly one unknown allowed")
	ErrNoUnknown              = errors.New("gaslaw: must mark one variable unknown")
	ErrInvalidNumber          = errors.New("gaslaw: invalid numerical input")
	ErrNonPositiveTemperature = errors.New("gaslaw: absolute temperature must be greater than 0 K")
)

// FieldError ties a validation failure to the variable that caused it.
type FieldError struct {
	Var Variable
	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Var.Symbol(), e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
