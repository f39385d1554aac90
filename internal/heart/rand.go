package heart

import "math/rand/v2"

// Rand is the random source the generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
	// IntN returns a number in [0, n).
	IntN(n int) int
}

// NewRand returns a PCG-backed source with a fixed seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func defaultRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// uniform returns a number in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// randInt returns a number in [lo, hi], both ends included.
func randInt(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
