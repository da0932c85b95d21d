package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch       = errors.New("vector length does not match layer width")
	ErrEmptyTopology       = errors.New("network needs at least one layer")
	ErrInvalidWidth        = errors.New("layer width must be positive")
	ErrStalePropagation    = errors.New("back propagation without a preceding feed forward")
	ErrWeightIndex         = errors.New("weight index out of range")
	ErrInvalidLearningRate = errors.New("learning rate must be a finite non-negative number")
)

// ShapeError reports a vector whose length does not match the layer it was
// meant for. It unwraps to ErrShapeMismatch.
type ShapeError struct {
	Op       string // Operation that rejected the vector (e.g., "FeedForward")
	Expected int    // Width of the layer the vector targets
	Got      int    // Length of the vector that was passed
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: expected %d values, got %d", e.Op, e.Expected, e.Got)
}

// Unwrap lets errors.Is match ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func checkShape(op string, expected, got int) error {
	if expected != got {
		return &ShapeError{Op: op, Expected: expected, Got: got}
	}
	return nil
}
