// Package rng provides the seedable random source shared by every
// randomized visual (particles, fireworks, explosion scatter).
package rng

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand the visuals depend on.
type Source interface {
	Float64() float64
}

// Rand is a deterministic PCG-backed source.
type Rand struct {
	r *rand.Rand
}

// New returns a source seeded with seed. A zero seed picks a time based one.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Rand) Float64() float64 { return r.r.Float64() }

// Range returns a value in [min, max).
func Range(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// Centered returns a value in [-span/2, span/2).
func Centered(src Source, span float64) float64 {
	return (src.Float64() - 0.5) * span
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
