package colormodel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a numeric color component or a
	// pixel coordinate is outside its allowed range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFormat is returned when a hex string is not of the form #RRGGBB.
	ErrInvalidFormat = errors.New("invalid format")
)

// ComponentError describes a single out-of-range color component.
//
// It unwraps to ErrInvalidArgument, so callers that only care about the
// category can use errors.Is.
type ComponentError struct {
	Component string // e.g. "hue", "red", "cyan"
	Value     int
	Min       int
	Max       int
}

// Error returns the formatted range violation.
func (e *ComponentError) Error() string {
	return fmt.Sprintf("%s: expected %s in range [%d..%d], got %d",
		ErrInvalidArgument, e.Component, e.Min, e.Max, e.Value)
}

// Unwrap returns ErrInvalidArgument.
func (e *ComponentError) Unwrap() error {
	return ErrInvalidArgument
}

// checkRange returns a *ComponentError when value is outside [min, max].
func checkRange(component string, value, min, max int) error {
	if value < min || value > max {
		return &ComponentError{Component: component, Value: value, Min: min, Max: max}
	}
	return nil
}
