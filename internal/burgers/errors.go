package burgers

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroSteps indicates a non-zero simulated time with no time steps,
	// which would make the step size a division by zero.
	ErrZeroSteps = errors.New("burgers: time steps must be positive when T is non-zero")

	// ErrInvalidShape indicates a grid with no points along an axis.
	ErrInvalidShape = errors.New("burgers: grid needs at least one point per axis")

	// ErrParameterBounds indicates a parameter outside its valid range.
	ErrParameterBounds = errors.New("burgers: parameter out of valid bounds")
)

// ParamError names the parameter that failed validation.
type ParamError struct {
	Name    string
	Value   float64
	Reason  string
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", e.Wrapped, e.Name, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
