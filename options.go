package fizzle

// Option configures a Sequencer during creation.
//
// Example:
//
//	// Classic register, default seed
//	seq, _ := fizzle.New(320, 200)
//
//	// Same grid, different starting point in the cycle
//	seq, _ := fizzle.New(320, 200, fizzle.WithSeed(0xACE1))
type Option func(*options)

type options struct {
	seed   uint32
	degree int // 0 selects automatically
}

func defaultOptions() options {
	return options{
		seed: DefaultSeed,
	}
}

// WithSeed starts the register at seed instead of DefaultSeed. The cycle is
// the same; only the starting point, and so the visiting order, changes.
// The seed must be non-zero and fit in the register.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithDegree forces an n-bit register instead of the automatic choice of
// max(ClassicDegree, required width). Narrower registers waste fewer steps
// on small grids; wider ones only add skips.
func WithDegree(n int) Option {
	return func(o *options) {
		o.degree = n
	}
}
