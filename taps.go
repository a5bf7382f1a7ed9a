package fizzle

// FeedbackTaps is the Galois feedback mask of the original fizzlefade
// register: x^17 + x^14 + 1. Its cycle visits all 2^17 - 1 non-zero 17-bit
// values.
const FeedbackTaps uint32 = 0x00012000

// ClassicDegree is the register width encoded by FeedbackTaps. It is the
// narrowest register a Sequencer uses unless WithDegree asks otherwise.
const ClassicDegree = 17

// Register widths covered by the tap table.
const (
	MinDegree = 2
	MaxDegree = 32
)

// galoisTaps holds right-shift Galois feedback masks for maximal-length
// polynomials, indexed by register width. Each mask sets bit t-1 for every tap
// t of the corresponding entry in Xilinx XAPP052, table 3.
//
// Do not edit an entry without re-checking its period; see TestTapsPeriod.
var galoisTaps = [MaxDegree + 1]uint32{
	2:  0x00000003,
	3:  0x00000006,
	4:  0x0000000C,
	5:  0x00000014,
	6:  0x00000030,
	7:  0x00000060,
	8:  0x000000B8,
	9:  0x00000110,
	10: 0x00000240,
	11: 0x00000500,
	12: 0x00000829,
	13: 0x0000100D,
	14: 0x00002015,
	15: 0x00006000,
	16: 0x0000D008,
	17: FeedbackTaps,
	18: 0x00020400,
	19: 0x00040023,
	20: 0x00090000,
	21: 0x00140000,
	22: 0x00300000,
	23: 0x00420000,
	24: 0x00E10000,
	25: 0x01200000,
	26: 0x02000023,
	27: 0x04000013,
	28: 0x09000000,
	29: 0x14000000,
	30: 0x20000029,
	31: 0x48000000,
	32: 0x80200003,
}

// TapsFor returns the feedback mask for an n-bit maximal-length register.
// ok is false when n is outside [MinDegree, MaxDegree].
func TapsFor(degree int) (taps uint32, ok bool) {
	if degree < MinDegree || degree > MaxDegree {
		return 0, false
	}
	return galoisTaps[degree], true
}

// period returns 2^degree - 1, the cycle length of a maximal register.
func period(degree int) uint64 {
	return uint64(1)<<uint(degree) - 1
}

// galoisStep advances a right-shift Galois register by one position.
func galoisStep(register, taps uint32) uint32 {
	lsb := register & 1
	register >>= 1
	if lsb != 0 {
		register ^= taps
	}
	return register
}
