package fade

import (
	"image"

	"github.com/gogpu/fizzle"
	"github.com/gogpu/gg"
)

// DefaultColor is the solid colour painted when no target is set.
var DefaultColor = gg.Hex("#cc3333")

// FramesPerFade is the number of Advance calls the default batch size spreads
// a full dissolve over.
const FramesPerFade = 70

// Option configures a Fader.
type Option func(*config)

type config struct {
	color   gg.RGBA
	target  image.Image
	batch   int
	seqOpts []fizzle.Option
}

func defaultConfig() config {
	return config{color: DefaultColor}
}

// WithColor paints every pixel with c.
func WithColor(c gg.RGBA) Option {
	return func(cfg *config) {
		cfg.color = c
	}
}

// WithTarget copies pixels from img instead of painting a solid colour.
// img must have the same width and height as the pixmap; its origin may be
// anywhere.
func WithTarget(img image.Image) Option {
	return func(cfg *config) {
		cfg.target = img
	}
}

// WithBatch sets how many pixels Advance paints. Values below 1 select the
// default, enough pixels to finish in FramesPerFade calls.
func WithBatch(n int) Option {
	return func(cfg *config) {
		cfg.batch = n
	}
}

// WithSequencerOptions passes options through to the underlying sequencer,
// for example a different seed.
func WithSequencerOptions(opts ...fizzle.Option) Option {
	return func(cfg *config) {
		cfg.seqOpts = append(cfg.seqOpts, opts...)
	}
}
