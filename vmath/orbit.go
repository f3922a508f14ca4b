package vmath

import (
	"math"
	"time"
)

// OrbitCenter is the center of the orbit in percentage space
const OrbitCenter = 50.0

// OrbitRings holds the two alternating radii, in percent of the container
type OrbitRings struct {
	Even float64
	Odd  float64
}

// DefaultOrbitRings places even indices on the outer ring and odd on the inner
var DefaultOrbitRings = OrbitRings{Even: 44, Odd: 36}

// OrbitPoint is one node position around the orbit center
type OrbitPoint struct {
	Index     int
	AngleRad  float64
	RadiusPct float64
	X, Y      float64
}

// Radius returns the ring radius used at index i
func (r OrbitRings) Radius(i int) float64 {
	if i%2 == 0 {
		return r.Even
	}
	return r.Odd
}

// OrbitLayout distributes n nodes evenly by angle, alternating between the two rings
// Returns an empty slice for n <= 0
func OrbitLayout(n int, rings OrbitRings) []OrbitPoint {
	if n <= 0 {
		return []OrbitPoint{}
	}

	points := make([]OrbitPoint, n)
	for i := range points {
		angle := float64(i) / float64(n) * 2 * math.Pi
		radius := rings.Radius(i)
		points[i] = OrbitPoint{
			Index:     i,
			AngleRad:  angle,
			RadiusPct: radius,
			X:         OrbitCenter + math.Cos(angle)*radius,
			Y:         OrbitCenter + math.Sin(angle)*radius,
		}
	}
	return points
}

// SpinAngle returns ring rotation in radians after elapsed time for one revolution per period
// reverse spins counter-clockwise, non-positive period yields 0
func SpinAngle(elapsed, period time.Duration, reverse bool) float64 {
	if period <= 0 || elapsed <= 0 {
		return 0
	}
	turns := float64(elapsed%period) / float64(period)
	angle := turns * 2 * math.Pi
	if reverse {
		angle = -angle
	}
	return angle
}
