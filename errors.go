package glide

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by values and schedulers. Use errors.Is to check
// the error type:
//
//	if err := s.Tick(dt); errors.Is(err, glide.ErrShapeMismatch) { ... }
//
//	_, err := s.Float(0)
//	if errors.Is(err, glide.ErrDestroyed) { ... }
var (
	// ErrShapeMismatch is returned when a Sequence target no longer has the
	// same length as its current value.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrMissingField is returned when a Record tracks a field that is absent
	// from its current value or its target.
	ErrMissingField = errors.New("missing field")

	// ErrDestroyed is returned by factories, Tick and SetAutoUpdate(true) on a
	// scheduler after Destroy.
	ErrDestroyed = errors.New("scheduler destroyed")

	// ErrUnsupportedShape is returned by Create when the initial value is not a
	// number, a slice of numbers or a map of named numbers.
	ErrUnsupportedShape = errors.New("unsupported shape")

	// ErrNoFrameSource is returned by SetAutoUpdate(true) when the scheduler
	// was configured without a frame source.
	ErrNoFrameSource = errors.New("no frame source")
)

// ShapeError describes which component of a value failed the shape check.
// It unwraps to ErrShapeMismatch or ErrMissingField.
type ShapeError struct {
	// Field is the tracked field name (Record only).
	Field string
	// Len and TargetLen are the current and target lengths (Sequence only).
	Len, TargetLen int

	err error
}

func (e *ShapeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v: %q", e.err, e.Field)
	}
	return fmt.Sprintf("%v: len %d, target len %d", e.err, e.Len, e.TargetLen)
}

func (e *ShapeError) Unwrap() error { return e.err }
