// Package rng provides the seeded pseudo-random stream used by the
// neighborhood generator.
package rng

// golden is the Mulberry32 Weyl increment.
const golden = 0x6D2B79F5

// Rand is a Mulberry32 generator. It is not safe for concurrent use and
// must not be used for anything beyond visual variation.
type Rand struct {
	state uint32
	seed  uint32
}

// New creates a generator for the given seed. Seeds are reduced modulo
// 2^32, so negative seeds and their unsigned equivalents give the same
// stream.
func New(seed int64) *Rand {
	s := uint32(seed)
	return &Rand{state: s + golden, seed: s}
}

// Seed returns the 32-bit seed the generator was created with.
func (r *Rand) Seed() uint32 {
	return r.seed
}

// Reset rewinds the generator to the start of its stream.
func (r *Rand) Reset() {
	r.state = r.seed + golden
}

// Uint32 advances the state and returns the next 32-bit value.
func (r *Rand) Uint32() uint32 {
	r.state += golden
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / 4294967296.0
}

// Range returns base + Float64()*span. It consumes exactly one draw.
func (r *Rand) Range(base, span float64) float64 {
	return base + r.Float64()*span
}

// Chance reports whether the next draw exceeds threshold, i.e. it is true
// with probability 1-threshold. It consumes exactly one draw.
func (r *Rand) Chance(threshold float64) bool {
	return r.Float64() > threshold
}
