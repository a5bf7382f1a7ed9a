package coverage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/fizzle"
	"github.com/gogpu/fizzle/internal/parallel"
)

// Option configures VerifyRange.
type Option func(*rangeConfig)

type rangeConfig struct {
	workers int
	seqOpts []fizzle.Option
}

// WithWorkers sets the number of grids checked in parallel.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *rangeConfig) {
		c.workers = n
	}
}

// WithSequencerOptions applies opts to every sequencer VerifyRange creates.
func WithSequencerOptions(opts ...fizzle.Option) Option {
	return func(c *rangeConfig) {
		c.seqOpts = append(c.seqOpts, opts...)
	}
}

// VerifyRange verifies every grid from 1x1 to maxWidth x maxHeight.
//
// Reports are ordered by width, then height: the report for w x h is at
// index (w-1)*maxHeight + (h-1). All failures are joined into the returned
// error. If ctx is cancelled, grids that had not started are left as zero
// Reports and ctx.Err() is included in the error.
func VerifyRange(ctx context.Context, maxWidth, maxHeight int, opts ...Option) ([]Report, error) {
	if maxWidth < 1 || maxWidth > fizzle.MaxDimension || maxHeight < 1 || maxHeight > fizzle.MaxDimension {
		return nil, fmt.Errorf("%w: range %dx%d, want 1..%d per axis",
			fizzle.ErrInvalidDimensions, maxWidth, maxHeight, fizzle.MaxDimension)
	}

	var cfg rangeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	pool := parallel.NewWorkerPool(cfg.workers)
	defer pool.Close()

	n := maxWidth * maxHeight
	reports := make([]Report, n)
	failures := make([]error, n)

	work := make([]func(), 0, n)
	for w := 1; w <= maxWidth; w++ {
		for h := 1; h <= maxHeight; h++ {
			i := (w-1)*maxHeight + (h - 1)
			work = append(work, func() {
				r, err := Verify(w, h, cfg.seqOpts...)
				reports[i] = r
				if err != nil {
					logFailure(r, err)
					failures[i] = err
				}
			})
		}
	}

	fizzle.Logger().Debug("coverage: verifying range",
		slog.Int("max_width", maxWidth),
		slog.Int("max_height", maxHeight),
		slog.Int("workers", pool.Workers()),
	)

	ctxErr := pool.ExecuteAll(ctx, work)
	return reports, errors.Join(append(failures, ctxErr)...)
}
