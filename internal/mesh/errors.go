package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind indicates a shape name or value outside the closed set.
	ErrUnknownKind = errors.New("mesh: unknown shape kind")

	// ErrNonPositive indicates a dimension that is zero, negative or not finite.
	ErrNonPositive = errors.New("mesh: dimension must be finite and positive")
)

// ParamError names the dimension that failed validation.
type ParamError struct {
	Kind  Kind
	Field string
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%g: %v", e.Kind, e.Field, e.Value, ErrNonPositive)
}

func (e *ParamError) Unwrap() error {
	return ErrNonPositive
}
