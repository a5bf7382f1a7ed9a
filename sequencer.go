package fizzle

import (
	"fmt"
	"image"
	"iter"
	"log/slog"
)

// DefaultSeed is the register value a Sequencer starts from. Zero is the
// absorbing state of the register and can never be a seed.
const DefaultSeed uint32 = 1

// Sequencer produces every cell of a width x height grid exactly once, in the
// order given by a maximal-length Galois LFSR.
//
// Each step reads the cell word (register - 1, so the origin is reachable),
// splits it into Y (low bits) and X (bits from the next nibble boundary up),
// then advances the register. The cycle ends when the register returns to its
// seed.
//
// A Sequencer is not safe for concurrent use.
type Sequencer struct {
	width  uint32
	height uint32
	layout layout

	degree int
	taps   uint32
	seed   uint32

	register uint32
	steps    uint64
	emitted  uint64
	finished bool
}

// New creates a sequencer for a width x height grid.
//
// Both dimensions must be in [1, MaxDimension]; anything else is rejected
// with ErrInvalidDimensions rather than producing an empty or endless cycle.
func New(width, height int, opts ...Option) (*Sequencer, error) {
	if width < 1 || width > MaxDimension || height < 1 || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d, want 1..%d per axis",
			ErrInvalidDimensions, width, height, MaxDimension)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := newLayout(width, height)
	required := l.requiredDegree(width, height)

	degree := o.degree
	if degree == 0 {
		degree = max(ClassicDegree, required)
	}
	taps, ok := TapsFor(degree)
	if !ok {
		return nil, fmt.Errorf("%w: %d, want %d..%d", ErrUnsupportedDegree, degree, MinDegree, MaxDegree)
	}
	if degree < required {
		return nil, fmt.Errorf("%w: %d bits for %dx%d, need %d", ErrDegreeTooSmall, degree, width, height, required)
	}
	if o.seed == 0 || uint64(o.seed) > period(degree) {
		return nil, fmt.Errorf("%w: %#x for a %d-bit register", ErrInvalidSeed, o.seed, degree)
	}

	s := &Sequencer{
		width:    uint32(width),
		height:   uint32(height),
		layout:   l,
		degree:   degree,
		taps:     taps,
		seed:     o.seed,
		register: o.seed,
	}

	Logger().Debug("fizzle: sequencer created",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Uint64("x_bits", uint64(l.xBits)),
		slog.Uint64("y_bits", uint64(l.yBits)),
		slog.Uint64("x_shift", uint64(l.xShift)),
		slog.Int("degree", degree),
		slog.String("taps", fmt.Sprintf("%#x", taps)),
	)
	return s, nil
}

// Step advances the register once.
//
// Once a Done result has been returned, Step keeps returning Done without a
// cell until Reset is called.
func (s *Sequencer) Step() StepResult {
	if s.finished {
		return StepResult{kind: Done}
	}

	x, y, clean := s.layout.extract(s.register - 1)
	s.register = galoisStep(s.register, s.taps)
	s.steps++

	var r StepResult
	if clean && x < s.width && y < s.height {
		r.point = image.Point{X: int(x), Y: int(y)}
		r.valid = true
		s.emitted++
	}

	switch {
	case s.register == s.seed:
		r.kind = Done
		s.finished = true
		Logger().Debug("fizzle: cycle complete",
			slog.Uint64("steps", s.steps),
			slog.Uint64("emitted", s.emitted),
		)
	case r.valid:
		r.kind = Coordinate
	default:
		r.kind = Skip
	}
	return r
}

// Next steps until a cell is produced or the cycle ends. ok is false once
// the sequence is exhausted.
func (s *Sequencer) Next() (p image.Point, ok bool) {
	for {
		r := s.Step()
		switch r.kind {
		case Coordinate:
			return r.point, true
		case Done:
			return r.point, r.valid
		}
	}
}

// All returns an iterator over the remaining cells of the cycle.
// Breaking out of the loop leaves the sequencer where it stopped.
func (s *Sequencer) All() iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Collect drains the remaining cells into a slice.
func (s *Sequencer) Collect() []image.Point {
	out := make([]image.Point, 0, s.Len()-int(s.emitted))
	for p := range s.All() {
		out = append(out, p)
	}
	return out
}

// Reset rewinds the sequencer to its seed. The replayed order is identical.
func (s *Sequencer) Reset() {
	s.register = s.seed
	s.steps = 0
	s.emitted = 0
	s.finished = false
}

// Width returns the grid width.
func (s *Sequencer) Width() int { return int(s.width) }

// Height returns the grid height.
func (s *Sequencer) Height() int { return int(s.height) }

// Len returns the number of cells in one cycle, width * height.
func (s *Sequencer) Len() int { return int(s.width) * int(s.height) }

// XBits returns the width of the X field.
func (s *Sequencer) XBits() int { return int(s.layout.xBits) }

// YBits returns the width of the Y field.
func (s *Sequencer) YBits() int { return int(s.layout.yBits) }

// XShift returns the bit offset of the X field, YBits rounded up to a
// multiple of 4.
func (s *Sequencer) XShift() int { return int(s.layout.xShift) }

// XMask returns the mask selecting the X field in a cell word.
func (s *Sequencer) XMask() uint32 { return s.layout.xMask }

// YMask returns the mask selecting the Y field in a cell word.
func (s *Sequencer) YMask() uint32 { return s.layout.yMask }

// Degree returns the register width in bits.
func (s *Sequencer) Degree() int { return s.degree }

// Taps returns the Galois feedback mask in use.
func (s *Sequencer) Taps() uint32 { return s.taps }

// Seed returns the register's starting value.
func (s *Sequencer) Seed() uint32 { return s.seed }

// Period returns the number of steps in a full cycle, 2^Degree - 1.
func (s *Sequencer) Period() uint64 { return period(s.degree) }

// Steps returns the number of steps taken since creation or the last Reset.
func (s *Sequencer) Steps() uint64 { return s.steps }

// Emitted returns the number of cells produced since creation or the last
// Reset.
func (s *Sequencer) Emitted() uint64 { return s.emitted }

// Finished reports whether the cycle has completed.
func (s *Sequencer) Finished() bool { return s.finished }
