package fizzle

import "math/bits"

// MaxDimension is the largest width or height a Sequencer accepts (8K UHD).
const MaxDimension = 7680

// nibble is the alignment of the X field above the Y field.
const nibble = 4

// layout describes how a register word splits into X and Y fields.
//
// A word is laid out as
//
//	[ x field (xBits) ][ padding up to xShift ][ y field (yBits) ]
//
// An axis of size 1 gets a zero-width field whose mask is 0, so it always
// extracts 0, the only valid value on that axis.
type layout struct {
	xBits  uint
	yBits  uint
	xShift uint
	xMask  uint32
	yMask  uint32
}

// bitsFor returns the smallest b such that 1<<b >= n.
// Sizes 0 and 1 need no bits.
func bitsFor(n int) uint {
	if n <= 1 {
		return 0
	}
	return uint(bits.Len(uint(n - 1)))
}

// alignNibble rounds b up to the next multiple of 4.
func alignNibble(b uint) uint {
	return (b + nibble - 1) / nibble * nibble
}

// onesMask returns a run of n low ones.
func onesMask(n uint) uint32 {
	return uint32(1)<<n - 1
}

func newLayout(width, height int) layout {
	l := layout{
		xBits: bitsFor(width),
		yBits: bitsFor(height),
	}
	l.xShift = alignNibble(l.yBits)
	l.yMask = onesMask(l.yBits)
	l.xMask = onesMask(l.xBits) << l.xShift
	return l
}

// extract splits a word into its fields. ok is false when the word has bits
// set outside both masks; such words alias cells that are reached through
// their clean word, so they must be skipped.
func (l layout) extract(word uint32) (x, y uint32, ok bool) {
	y = word & l.yMask
	x = (word & l.xMask) >> l.xShift
	ok = word&^(l.xMask|l.yMask) == 0
	return x, y, ok
}

// pack is the inverse of extract for in-bounds cells.
func (l layout) pack(x, y uint32) uint32 {
	return x<<l.xShift | y
}

// requiredDegree returns the narrowest register able to reach every cell of a
// width x height grid. Words run over [0, 2^n - 1), so the largest cell word
// must stay strictly below 2^n - 1.
func (l layout) requiredDegree(width, height int) int {
	maxWord := l.pack(uint32(width-1), uint32(height-1))
	return bits.Len32(maxWord + 1)
}
