// Package procgen generates the random particle fields and synthetic telemetry series shown on the page
package procgen

import (
	"math/rand/v2"
	"time"
)

// Source yields uniform floats in [0,1)
type Source interface {
	Float64() float64
}

// NewSource returns a non-deterministic source, a new field on every call
func NewSource() Source {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, rand.Uint64()))
}

// NewSeededSource returns a reproducible source
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform maps a unit sample onto [lo, hi]
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
