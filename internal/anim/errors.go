package anim

import (
	"errors"
	"fmt"
)

var (
	// ErrPresent indicates a frame could not be written to its output.
	ErrPresent = errors.New("anim: presenting frame failed")

	// ErrInvalidStep indicates a rotation step that would not advance the sphere.
	ErrInvalidStep = errors.New("anim: rotation step must be positive")

	// ErrInvalidInterval indicates a negative frame interval.
	ErrInvalidInterval = errors.New("anim: frame interval must not be negative")
)

// FrameError wraps a presentation failure with the frame it happened on.
type FrameError struct {
	Frame    int
	Rotation float64
	Wrapped  error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("anim: frame %d (rotation %.4f): %v", e.Frame, e.Rotation, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
