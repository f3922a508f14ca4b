package vmath

import "math"

// Keyframe pins Value at fraction At of a cycle
type Keyframe struct {
	At    float64
	Value float64
}

// Track is a keyframed value, frames sorted by At
type Track []Keyframe

// Sample returns the value at phase, easing in and out between adjacent frames
// phase wraps into [0,1), values before the first or after the last frame hold
func (tr Track) Sample(phase float64) float64 {
	if len(tr) == 0 {
		return 0
	}
	phase -= math.Floor(phase)
	if phase <= tr[0].At {
		return tr[0].Value
	}
	for i := 1; i < len(tr); i++ {
		a, b := tr[i-1], tr[i]
		if phase > b.At {
			continue
		}
		span := b.At - a.At
		if span <= 0 {
			return b.Value
		}
		u := (phase - a.At) / span
		u = u * u * (3 - 2*u)
		return a.Value + (b.Value-a.Value)*u
	}
	return tr[len(tr)-1].Value
}

// Sweep is a highlight that slides across a track while fading in and out
// Offset is in multiples of the highlight width, as CSS translateX percentages are
type Sweep struct {
	Period  float64
	Offset  Track
	Opacity Track
}

// At returns the highlight offset and opacity after elapsed seconds
func (s Sweep) At(elapsed float64) (offset, opacity float64) {
	if s.Period <= 0 {
		return s.Offset.Sample(0), s.Opacity.Sample(0)
	}
	phase := elapsed / s.Period
	return s.Offset.Sample(phase), Clamp01(s.Opacity.Sample(phase))
}

// Coverage fills out with the highlight intensity per cell of a track len(out) wide
// The highlight is beamW cells wide starting at cell offset*beamW, peaking at its center
func Coverage(out []float64, offset, opacity float64, beamW int) {
	for i := range out {
		out[i] = 0
	}
	if beamW <= 0 || opacity <= 0 {
		return
	}
	w := float64(beamW)
	start := offset * w
	for i := range out {
		c := (float64(i) + 0.5 - start) / w
		if c <= 0 || c >= 1 {
			continue
		}
		out[i] = opacity * (1 - math.Abs(2*c-1))
	}
}
