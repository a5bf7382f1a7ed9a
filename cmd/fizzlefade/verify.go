package main

import (
	"context"
	"io"

	"github.com/gogpu/fizzle/coverage"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func verify(ctx context.Context, c *config, stdout io.Writer) error {
	p := message.NewPrinter(language.English)

	if !c.rangeOK {
		r, err := coverage.Verify(c.width, c.height, c.seqOptions()...)
		if err != nil {
			return err
		}
		p.Fprintf(stdout, "%dx%d ok: %d cells in %d steps of a %d-bit register (%d skips, %.1f%% used)\n",
			r.Width, r.Height, r.Emitted, r.Steps, r.Degree, r.Skips, 100*r.Efficiency())
		return nil
	}

	reports, err := coverage.VerifyRange(ctx, c.width, c.height,
		coverage.WithWorkers(c.workers),
		coverage.WithSequencerOptions(c.seqOptions()...))

	var grids int
	var cells, steps uint64
	for _, r := range reports {
		if r.Steps == 0 {
			continue
		}
		grids++
		cells += r.Emitted
		steps += r.Steps
	}
	p.Fprintf(stdout, "checked %d of %d grids up to %dx%d: %d cells in %d steps\n",
		grids, len(reports), c.width, c.height, cells, steps)
	return err
}
