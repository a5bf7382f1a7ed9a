// Package coverage checks that a fizzle sequence visits every cell of a grid
// exactly once.
//
// Verify drains one sequencer into a visited bitmap. VerifyRange does the
// same for every grid size up to a bound, spread over a worker pool.
package coverage

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/fizzle"
	"github.com/gogpu/fizzle/internal/bitset"
)

var (
	// ErrDuplicate is returned when a cell is produced more than once.
	ErrDuplicate = errors.New("coverage: cell visited twice")

	// ErrMissing is returned when the cycle ends before every cell was
	// produced.
	ErrMissing = errors.New("coverage: cell never visited")

	// ErrOutOfBounds is returned when a produced cell lies outside the grid.
	ErrOutOfBounds = errors.New("coverage: cell outside grid")
)

// Report summarizes one verified cycle.
type Report struct {
	Width  int
	Height int
	Degree int

	// Steps is the number of register steps in the cycle, 2^Degree - 1.
	Steps uint64
	// Emitted is the number of cells produced, Width * Height on success.
	Emitted uint64
	// Skips is the number of steps that produced no cell.
	Skips uint64
}

// Cells returns Width * Height.
func (r Report) Cells() int { return r.Width * r.Height }

// Efficiency returns the fraction of steps that produced a cell.
func (r Report) Efficiency() float64 {
	if r.Steps == 0 {
		return 0
	}
	return float64(r.Emitted) / float64(r.Steps)
}

// Verify runs a full cycle for a width x height grid and checks that every
// cell is produced exactly once. The returned Report is filled in as far as
// the check got, even when an error is returned.
func Verify(width, height int, opts ...fizzle.Option) (Report, error) {
	seq, err := fizzle.New(width, height, opts...)
	if err != nil {
		return Report{Width: width, Height: height}, err
	}

	t := newTally(width, height)
	report := Report{Width: width, Height: height, Degree: seq.Degree()}

	for {
		r := seq.Step()
		if p, ok := r.Point(); ok {
			if err := t.mark(p, seq.Steps()); err != nil {
				report.fill(seq)
				return report, err
			}
		}
		if r.Kind() == fizzle.Done {
			break
		}
	}

	report.fill(seq)
	if err := t.complete(); err != nil {
		return report, err
	}
	return report, nil
}

func (r *Report) fill(seq *fizzle.Sequencer) {
	r.Steps = seq.Steps()
	r.Emitted = seq.Emitted()
	r.Skips = r.Steps - r.Emitted
}

// tally records visited cells of one grid.
type tally struct {
	width, height int
	visited       *bitset.Bitset
}

func newTally(width, height int) *tally {
	return &tally{
		width:   width,
		height:  height,
		visited: bitset.New(width * height),
	}
}

func (t *tally) mark(p image.Point, step uint64) error {
	if p.X < 0 || p.X >= t.width || p.Y < 0 || p.Y >= t.height {
		return fmt.Errorf("%w: %v in %dx%d at step %d", ErrOutOfBounds, p, t.width, t.height, step)
	}
	if t.visited.TestAndSet(p.Y*t.width + p.X) {
		return fmt.Errorf("%w: %v in %dx%d at step %d", ErrDuplicate, p, t.width, t.height, step)
	}
	return nil
}

func (t *tally) complete() error {
	if t.visited.Full() {
		return nil
	}
	i := t.visited.FirstClear()
	p := image.Pt(i%t.width, i/t.width)
	return fmt.Errorf("%w: %v in %dx%d, %d of %d cells visited",
		ErrMissing, p, t.width, t.height, t.visited.Count(), t.visited.Len())
}

func logFailure(r Report, err error) {
	fizzle.Logger().Warn("coverage: grid failed",
		slog.Int("width", r.Width),
		slog.Int("height", r.Height),
		slog.Int("degree", r.Degree),
		slog.String("error", err.Error()),
	)
}
