package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gogpu/fizzle"
	"github.com/gogpu/fizzle/fade"
)

// printCells writes the visiting order, one cell per line.
func printCells(c *config, stdout io.Writer) error {
	seq, err := fizzle.New(c.width, c.height, c.seqOptions()...)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	for p := range seq.All() {
		if c.ndc {
			x, y := fade.NDC(p, c.width, c.height)
			fmt.Fprintf(w, "%.6f %.6f\n", x, y)
			continue
		}
		fmt.Fprintf(w, "%d %d\n", p.X, p.Y)
	}
	return w.Flush()
}
