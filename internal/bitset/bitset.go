// Package bitset provides a fixed-size, lock-free bitmap used to record which
// grid cells a sequence has visited.
package bitset

import (
	"math/bits"
	"sync/atomic"
)

// Bitset is a fixed-size bitmap packed into atomic uint64 words
// (64 cells per word). Bit index = y*width + x for grid cells.
//
// All methods are safe for concurrent use without external synchronization.
type Bitset struct {
	words []atomic.Uint64
	n     int
}

// New creates a bitset of n cleared bits. Returns nil if n is negative.
func New(n int) *Bitset {
	if n < 0 {
		return nil
	}
	return &Bitset{
		words: make([]atomic.Uint64, (n+63)/64),
		n:     n,
	}
}

// Len returns the number of bits.
func (b *Bitset) Len() int {
	return b.n
}

// TestAndSet sets bit i and reports whether it was already set.
// Out-of-range indices are ignored and report false.
func (b *Bitset) TestAndSet(i int) (was bool) {
	if i < 0 || i >= b.n {
		return false
	}
	bit := uint64(1) << (i & 63)
	return b.words[i/64].Or(bit)&bit != 0
}

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	count := 0
	for i := range b.words {
		count += bits.OnesCount64(b.words[i].Load())
	}
	return count
}

// Full reports whether every bit is set.
func (b *Bitset) Full() bool {
	return b.Count() == b.n
}

// FirstClear returns the lowest clear bit, or -1 if the bitset is full.
func (b *Bitset) FirstClear() int {
	for w := range b.words {
		inv := ^b.words[w].Load()
		if inv == 0 {
			continue
		}
		i := w*64 + bits.TrailingZeros64(inv)
		if i >= b.n {
			return -1
		}
		return i
	}
	return -1
}
