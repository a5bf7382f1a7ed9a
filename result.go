package fizzle

import (
	"fmt"
	"image"
)

// StepKind is the outcome of a single Sequencer step.
type StepKind uint8

const (
	// Skip means the register word fell outside the grid. No cell was
	// produced; step again.
	Skip StepKind = iota

	// Coordinate means an in-bounds cell was produced.
	Coordinate

	// Done means the register returned to its seed. The step may still carry
	// the cycle's last cell.
	Done
)

// String returns a string representation of the step kind.
func (k StepKind) String() string {
	switch k {
	case Skip:
		return "Skip"
	case Coordinate:
		return "Coordinate"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("StepKind(%d)", uint8(k))
	}
}

// StepResult is the result of Sequencer.Step.
// The zero value is a Skip.
type StepResult struct {
	kind  StepKind
	point image.Point
	valid bool
}

// Kind returns the outcome of the step.
func (r StepResult) Kind() StepKind {
	return r.kind
}

// Point returns the cell produced by the step. ok is true for Coordinate
// results, and for a Done result whose final word was in bounds.
func (r StepResult) Point() (p image.Point, ok bool) {
	return r.point, r.valid
}

// String implements fmt.Stringer.
func (r StepResult) String() string {
	if r.valid {
		return fmt.Sprintf("%s(%d, %d)", r.kind, r.point.X, r.point.Y)
	}
	return r.kind.String()
}
