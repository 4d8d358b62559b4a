package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed
// draws one from the wall clock.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p. p <= 0 never succeeds and p >= 1
// always does.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Int64 returns a non-negative random int64.
func (r *RNG) Int64() int64 { return r.r.Int64() }

// FillBernoulli sets each byte of buf to 1 with probability p, else 0.
func FillBernoulli(r *rand.Rand, buf []uint8, p float64) {
	for i := range buf {
		buf[i] = 0
		if r.Float64() < p {
			buf[i] = 1
		}
	}
}

// Source exposes the underlying rand.Rand for bulk fills.
func (r *RNG) Source() *rand.Rand { return r.r }
