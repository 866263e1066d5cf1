package core

import (
	"math/rand/v2"
	"time"
)

// Random is the subset of *rand.Rand the scene draws from.
// Scene construction and selection colors go through it so tests can seed it.
type Random interface {
	Float64() float64
}

// NewRandom returns a PCG source seeded with seed, or with the clock when seed is 0
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform returns a value in [lo, hi)
func uniform(rng Random, lo, hi float64) float32 {
	return float32(lo + rng.Float64()*(hi-lo))
}
