package core

import (
	"math/rand"
	"time"
)

// RNG is a seeded random source shared by everything in one game session.
// The same seed always yields the same sequence, which keeps replays and
// tests deterministic.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a random source. A zero seed picks one from the clock.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the source was created with.
func (g *RNG) Seed() int64 {
	return g.seed
}

// Between returns a uniform integer in [min, max], both ends inclusive.
func (g *RNG) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + g.r.Intn(max-min+1)
}

// IntRange returns a uniform integer in [lo, hi). Returns lo when the range is empty.
func (g *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo)
}

// FloatBetween returns a uniform float in [min, max).
func (g *RNG) FloatBetween(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + g.r.Float64()*(max-min)
}
