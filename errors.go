package circles

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an input cannot produce a valid
	// geometric result.
	ErrInvalidArgument = errors.New("circles: invalid argument")
	// ErrTooFewSteps is returned by [InterpolateAngles] for fewer than three steps.
	ErrTooFewSteps = errors.New("circles: too few interpolation steps")
	// ErrZeroInterval is returned by [AngleIntervals] for a step that is not positive.
	ErrZeroInterval = errors.New("circles: interval step must be positive")
)

// PairingError reports a tangent point candidate that does not lie on its
// circle. It unwraps to [ErrInvalidArgument].
type PairingError struct {
	Point  Point
	Center Point
	Radius float64
}

func (e *PairingError) Error() string {
	return fmt.Sprintf("circles: point %v is not on circle with centre %v and radius %g", e.Point, e.Center, e.Radius)
}

func (e *PairingError) Unwrap() error { return ErrInvalidArgument }
