package vmath

// DefaultSeed is the fixed start state; the stream is reproducible across runs
const DefaultSeed uint32 = 12345

// LCG multiplier and increment
const (
	randMul = 1103515245
	randInc = 12345
)

// Rand is a 32-bit linear congruential stream
// Not safe for concurrent use, the owning frame loop serializes access
type Rand struct {
	state uint32
}

func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Intn returns an integer in [0, n)
// n <= 0 returns 0 and leaves the state untouched
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.state = r.state*randMul + randInc
	return int((r.state >> 16) % uint32(n))
}

// Spread returns an integer in [-margin, +margin], 0 without advancing when margin <= 0
func (r *Rand) Spread(margin int) int {
	if margin <= 0 {
		return 0
	}
	return r.Intn(margin*2+1) - margin
}

// State exposes the accumulator for snapshots and tests
func (r *Rand) State() uint32 {
	return r.state
}
