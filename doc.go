// Package fizzle enumerates every cell of a rectangular grid exactly once in a
// scattered, repeatable order, without storing or shuffling a list of cells.
//
// # Overview
//
// The order comes from a maximal-length Galois linear-feedback shift register,
// the same trick behind the classic Wolfenstein 3D "fizzlefade" death screen.
// The register walks every non-zero value of an n-bit space once per cycle.
// Each value is split into a Y field (low bits) and an X field (high bits,
// starting on the next nibble boundary), and values that fall outside the grid
// are skipped.
//
// # Quick Start
//
//	seq, err := fizzle.New(320, 200)
//	if err != nil {
//		return err
//	}
//	for p := range seq.All() {
//		pixmap.SetPixel(p.X, p.Y, gg.Black)
//	}
//
// # Stepping
//
// [Sequencer.Step] exposes the raw state machine. Every call advances the
// register once and reports one of three outcomes:
//   - [Coordinate]: an in-bounds cell was produced
//   - [Skip]: the register word fell outside the grid, call Step again
//   - [Done]: the register returned to its seed; the final word may still
//     carry a cell, see [StepResult.Point]
//
// [Sequencer.Next], [Sequencer.All] and [Sequencer.Collect] hide the skips.
//
// # Register Width
//
// The default polynomial is x^17 + x^14 + 1 ([FeedbackTaps]), which is enough
// for any layout that fits in 17 bits (320x200, 256x256, 200x320 and so on).
// Larger grids get the narrowest register from a fixed table of published
// maximal-length polynomials, see [TapsFor].
//
// # Concurrency
//
// A Sequencer is not safe for concurrent use. It holds no shared state, so
// independent instances can run on as many goroutines as needed.
package fizzle
