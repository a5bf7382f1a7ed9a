// Package fade dissolves a gg.Pixmap one pixel at a time in fizzle order.
//
// A Fader owns a fizzle.Sequencer sized to its pixmap and paints a batch of
// pixels per Advance call, either with a solid colour or by copying pixels
// from a target image:
//
//	pm := gg.NewPixmap(320, 200)
//	f, err := fade.New(pm, fade.WithColor(gg.Hex("#cc3333")))
//	if err != nil {
//		return err
//	}
//	for !f.Done() {
//		f.Advance()
//		present(pm, f.Dirty())
//	}
//
// Every pixel is painted exactly once, so after Done the pixmap is fully
// covered and no pixel was written twice.
package fade
