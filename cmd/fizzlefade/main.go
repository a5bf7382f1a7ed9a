// Command fizzlefade prints or renders the fizzlefade order for a grid.
//
// Usage:
//
//	fizzlefade [flags] WIDTH HEIGHT
//
// Modes:
//
//	print   write one "x y" line per cell to stdout (default)
//	png     fade a gradient image and save the result to -o
//	gif     save an animated GIF of the fade to -o
//	verify  check exact coverage of the grid, or of every grid up to it with -range
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/gogpu/fizzle"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	default:
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("fizzlefade failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	mode    string
	output  string
	width   int
	height  int
	seed    uint32
	degree  int
	ndc     bool
	frames  int
	batch   int
	scale   int
	delay   int
	stop    float64
	rangeOK bool
	workers int
	verbose bool
}

func (c *config) seqOptions() []fizzle.Option {
	var opts []fizzle.Option
	if c.seed != 0 {
		opts = append(opts, fizzle.WithSeed(c.seed))
	}
	if c.degree != 0 {
		opts = append(opts, fizzle.WithDegree(c.degree))
	}
	return opts
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("fizzlefade", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: fizzlefade [flags] WIDTH HEIGHT")
		fs.PrintDefaults()
	}

	var c config
	fs.StringVar(&c.mode, "mode", "print", "print, png, gif or verify")
	fs.StringVar(&c.output, "o", "", "output file for png and gif modes")
	fs.Func("seed", "register seed, decimal or 0x hex (default 1)", func(s string) error {
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return err
		}
		c.seed = uint32(v)
		return nil
	})
	fs.IntVar(&c.degree, "degree", 0, "register width in bits (0 chooses automatically)")
	fs.BoolVar(&c.ndc, "ndc", false, "print normalized device coordinates instead of pixels")
	fs.IntVar(&c.frames, "frames", 70, "gif: number of frames in the fade")
	fs.IntVar(&c.batch, "batch", 0, "gif: pixels per frame (overrides -frames)")
	fs.IntVar(&c.scale, "scale", 1, "gif: integer upscale factor")
	fs.IntVar(&c.delay, "delay", 2, "gif: frame delay in 1/100 s")
	fs.Float64Var(&c.stop, "stop", 1, "png: fraction of the fade to run before saving")
	fs.BoolVar(&c.rangeOK, "range", false, "verify: check every grid from 1x1 up to WIDTHxHEIGHT")
	fs.IntVar(&c.workers, "workers", 0, "verify: parallel workers (0 uses GOMAXPROCS)")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return nil, fmt.Errorf("want WIDTH HEIGHT, got %d arguments", fs.NArg())
	}

	var err error
	if c.width, err = strconv.Atoi(fs.Arg(0)); err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	if c.height, err = strconv.Atoi(fs.Arg(1)); err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}

	switch c.mode {
	case "print", "verify":
	case "png", "gif":
		if c.output == "" {
			return nil, fmt.Errorf("%s mode needs -o", c.mode)
		}
	default:
		return nil, fmt.Errorf("unknown mode %q", c.mode)
	}
	if c.scale < 1 || c.frames < 1 {
		return nil, fmt.Errorf("-scale and -frames must be positive")
	}
	if c.stop < 0 || c.stop > 1 {
		return nil, fmt.Errorf("-stop %v outside [0, 1]", c.stop)
	}
	return &c, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	fizzle.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	switch c.mode {
	case "png":
		return renderPNG(c)
	case "gif":
		return renderGIF(c)
	case "verify":
		return verify(ctx, c, stdout)
	default:
		return printCells(c, stdout)
	}
}
