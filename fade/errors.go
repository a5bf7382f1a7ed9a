package fade

import "errors"

var (
	// ErrNilPixmap is returned when New is called without a pixmap.
	ErrNilPixmap = errors.New("fade: nil pixmap")

	// ErrTargetBounds is returned when a target image does not have the same
	// size as the pixmap being dissolved.
	ErrTargetBounds = errors.New("fade: target size does not match pixmap")
)
