package fizzle

import "errors"

// Sentinel errors returned by New. They are wrapped with the offending values;
// compare with errors.Is.
var (
	// ErrInvalidDimensions is returned when width or height is outside
	// [1, MaxDimension].
	ErrInvalidDimensions = errors.New("fizzle: grid dimensions out of range")

	// ErrInvalidSeed is returned for a zero seed or a seed wider than the
	// register.
	ErrInvalidSeed = errors.New("fizzle: invalid register seed")

	// ErrUnsupportedDegree is returned when WithDegree names a register width
	// with no known maximal-length polynomial.
	ErrUnsupportedDegree = errors.New("fizzle: unsupported register degree")

	// ErrDegreeTooSmall is returned when WithDegree names a register too
	// narrow to reach every cell of the grid.
	ErrDegreeTooSmall = errors.New("fizzle: register degree too small for grid")
)
