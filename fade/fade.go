package fade

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/fizzle"
	"github.com/gogpu/gg"
)

// Fader paints a pixmap in fizzle order.
//
// A Fader is not safe for concurrent use, and the pixmap must not be resized
// while a fade is in progress.
type Fader struct {
	pm  *gg.Pixmap
	seq *fizzle.Sequencer

	color  gg.RGBA
	target image.Image
	batch  int

	painted int
	dirty   image.Rectangle
}

// New creates a Fader for pm.
func New(pm *gg.Pixmap, opts ...Option) (*Fader, error) {
	if pm == nil {
		return nil, ErrNilPixmap
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.target != nil {
		tb := cfg.target.Bounds()
		if tb.Dx() != pm.Width() || tb.Dy() != pm.Height() {
			return nil, fmt.Errorf("%w: target %dx%d, pixmap %dx%d",
				ErrTargetBounds, tb.Dx(), tb.Dy(), pm.Width(), pm.Height())
		}
	}

	seq, err := fizzle.New(pm.Width(), pm.Height(), cfg.seqOpts...)
	if err != nil {
		return nil, fmt.Errorf("fade: %w", err)
	}

	batch := cfg.batch
	if batch < 1 {
		batch = max(1, (seq.Len()+FramesPerFade-1)/FramesPerFade)
	}

	return &Fader{
		pm:     pm,
		seq:    seq,
		color:  cfg.color,
		target: cfg.target,
		batch:  batch,
	}, nil
}

// Advance paints the next batch of pixels and returns how many were painted.
// It returns 0 once the fade is done.
func (f *Fader) Advance() int {
	return f.AdvanceN(f.batch)
}

// AdvanceN paints up to n pixels and returns how many were painted.
// Dirty afterwards covers exactly the pixels touched by this call.
func (f *Fader) AdvanceN(n int) int {
	f.dirty = image.Rectangle{}
	count := 0
	for count < n {
		p, ok := f.seq.Next()
		if !ok {
			break
		}
		f.paint(p)
		f.dirty = f.dirty.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
		count++
	}
	f.painted += count

	if count > 0 && f.Done() {
		fizzle.Logger().Debug("fade: complete",
			slog.Int("width", f.pm.Width()),
			slog.Int("height", f.pm.Height()),
			slog.Int("painted", f.painted),
		)
	}
	return count
}

// Run paints every remaining pixel and returns how many were painted.
func (f *Fader) Run() int {
	return f.AdvanceN(f.Total() - f.painted)
}

func (f *Fader) paint(p image.Point) {
	if f.target == nil {
		f.pm.SetPixel(p.X, p.Y, f.color)
		return
	}
	origin := f.target.Bounds().Min
	f.pm.SetPixel(p.X, p.Y, gg.FromColor(f.target.At(origin.X+p.X, origin.Y+p.Y)))
}

// Done reports whether every pixel has been painted.
func (f *Fader) Done() bool { return f.painted == f.Total() }

// Painted returns the number of pixels painted so far.
func (f *Fader) Painted() int { return f.painted }

// Total returns the number of pixels in the pixmap.
func (f *Fader) Total() int { return f.seq.Len() }

// Batch returns the number of pixels painted per Advance.
func (f *Fader) Batch() int { return f.batch }

// Progress returns the painted fraction in [0, 1].
func (f *Fader) Progress() float64 {
	return float64(f.painted) / float64(f.Total())
}

// Dirty returns the bounding box of the pixels painted by the last Advance,
// AdvanceN or Run call. It is empty if that call painted nothing.
func (f *Fader) Dirty() image.Rectangle { return f.dirty }

// Pixmap returns the pixmap being painted.
func (f *Fader) Pixmap() *gg.Pixmap { return f.pm }
