package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Between returns a random int in [lo, hi] inclusive.
func (r *RNG) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Sample returns count distinct values drawn from [0, n) in random order.
// count is clamped to n.
func (r *RNG) Sample(n, count int) []int {
	if count > n {
		count = n
	}
	if count <= 0 {
		return nil
	}
	return r.r.Perm(n)[:count]
}

// FillDensity sets roughly density*len(buf) distinct cells to true after
// clearing buf.
func FillDensity(r *RNG, buf []bool, density float64) int {
	for i := range buf {
		buf[i] = false
	}
	if density <= 0 {
		return 0
	}
	if density > 1 {
		density = 1
	}
	count := int(float64(len(buf)) * density)
	for _, idx := range r.Sample(len(buf), count) {
		buf[idx] = true
	}
	return count
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
