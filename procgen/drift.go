package procgen

import (
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/neonops/vmath"
)

// FloatAmplitude is the peak rise of a floating particle in percent of container height
const FloatAmplitude = 4.0

// FloatOffset returns the upward offset of p after elapsed, cycling once per PeriodSec
// Zero at the start and end of each cycle, FloatAmplitude at mid-cycle
func FloatOffset(p Particle, elapsed time.Duration) float64 {
	if p.PeriodSec <= 0 || elapsed <= 0 {
		return 0
	}
	phase := elapsed.Seconds() / p.PeriodSec
	return FloatAmplitude * vmath.EaseInOutSine(phase)
}

// Shimmer is a slowly drifting brightness field for the neon grid background
type Shimmer struct {
	noise opensimplex.Noise

	// Scale converts grid cells to noise space
	Scale float64
	// Speed converts seconds to noise time
	Speed float64
}

// NewShimmer creates a shimmer field from seed
func NewShimmer(seed int64) *Shimmer {
	return &Shimmer{
		noise: opensimplex.NewNormalized(seed),
		Scale: 0.08,
		Speed: 0.15,
	}
}

// At returns brightness in [0,1] at cell (x,y) after elapsed; callers pass zero elapsed to freeze it
func (s *Shimmer) At(x, y int, elapsed time.Duration) float64 {
	v := s.noise.Eval3(float64(x)*s.Scale, float64(y)*s.Scale, elapsed.Seconds()*s.Speed)
	return vmath.Clamp01(v)
}
