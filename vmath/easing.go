package vmath

import "math"

// Clamp01 limits v to the closed unit interval, NaN maps to 0
func Clamp01(v float64) float64 {
	if v != v || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

// EaseOutCubic maps linear progress p in [0,1] to 1-(1-p)^3
// Defined on the unit interval only, callers clamp with Clamp01
func EaseOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

// EaseInOutSine rises from 0 to 1 and back to 0 over one cycle
// phase is the fraction of the cycle elapsed, values outside [0,1) wrap
func EaseInOutSine(phase float64) float64 {
	phase -= math.Floor(phase)
	return (1 - math.Cos(2*math.Pi*phase)) / 2
}

// Progress returns the clamped fraction of elapsed over total
// A non-positive total counts as already complete
func Progress(elapsedMs, totalMs float64) float64 {
	if totalMs <= 0 {
		return 1
	}
	return Clamp01(elapsedMs / totalMs)
}
