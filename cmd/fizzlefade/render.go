package main

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"os"

	"github.com/gogpu/fizzle/fade"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

// baseImage draws the picture the fade paints over.
func baseImage(width, height int) *gg.Pixmap {
	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	w, h := float64(width), float64(height)
	dc.SetFillBrush(gg.NewLinearGradientBrush(0, 0, w, h).
		AddColorStop(0, gg.Hex("#1a2a4a")).
		AddColorStop(0.5, gg.Hex("#3b6e8f")).
		AddColorStop(1, gg.Hex("#c9d6a3")))
	dc.DrawRectangle(0, 0, w, h)
	_ = dc.Fill()

	return gg.FromImage(dc.Image())
}

func newFader(c *config, batch int) (*fade.Fader, error) {
	pm := baseImage(c.width, c.height)
	return fade.New(pm,
		fade.WithBatch(batch),
		fade.WithSequencerOptions(c.seqOptions()...))
}

func renderPNG(c *config) error {
	f, err := newFader(c, 0)
	if err != nil {
		return err
	}
	f.AdvanceN(int(c.stop * float64(f.Total())))

	if err := f.Pixmap().SavePNG(c.output); err != nil {
		return fmt.Errorf("save %s: %w", c.output, err)
	}
	return nil
}

func renderGIF(c *config) error {
	batch := c.batch
	if batch < 1 {
		batch = (c.width*c.height + c.frames - 1) / c.frames
	}
	f, err := newFader(c, batch)
	if err != nil {
		return err
	}

	captions, err := newCaptioner(c.scale)
	if err != nil {
		return err
	}
	defer func() { _ = captions.Close() }()

	anim := &gif.GIF{}
	addFrame := func() {
		anim.Image = append(anim.Image, frame(f, c.scale, captions))
		anim.Delay = append(anim.Delay, c.delay)
	}

	addFrame()
	for !f.Done() {
		f.Advance()
		addFrame()
	}

	out, err := os.Create(c.output)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(out, anim); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode %s: %w", c.output, err)
	}
	return out.Close()
}

// frame upscales the current pixmap, captions it with the progress and
// quantizes it to the Plan 9 palette.
func frame(f *fade.Fader, scale int, captions *captioner) *image.Paletted {
	src := f.Pixmap().ToImage()
	bounds := image.Rect(0, 0, src.Bounds().Dx()*scale, src.Bounds().Dy()*scale)

	rgba := image.NewRGBA(bounds)
	xdraw.NearestNeighbor.Scale(rgba, bounds, src, src.Bounds(), xdraw.Src, nil)
	captions.draw(rgba, fmt.Sprintf("%3.0f%%", 100*f.Progress()))

	pal := image.NewPaletted(bounds, palette.Plan9)
	xdraw.Draw(pal, bounds, rgba, image.Point{}, xdraw.Src)
	return pal
}

// captioner draws progress text in Go Regular.
type captioner struct {
	src  *text.FontSource
	face text.Face
	size float64
}

func newCaptioner(scale int) (*captioner, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load caption font: %w", err)
	}
	size := float64(8 * scale)
	return &captioner{src: src, face: src.Face(size), size: size}, nil
}

func (c *captioner) draw(dst *image.RGBA, s string) {
	// Skip captions that would cover most of a tiny frame.
	if dst.Bounds().Dy() < int(3*c.size) {
		return
	}
	text.Draw(dst, s, c.face, c.size/2, c.size*1.25, color.White)
}

func (c *captioner) Close() error {
	return c.src.Close()
}
