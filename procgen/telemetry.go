package procgen

import (
	"math"
	"strconv"
)

// Sample is one point of a synthetic series; Name is set for categorical charts
type Sample struct {
	X    int
	Name string
	Y    float64
}

// SeriesSpec bounds a generated series
type SeriesSpec struct {
	Length     int
	Min, Max   float64
	NamePrefix string
}

// Widget presets
var (
	HeroLine    = SeriesSpec{Length: 18, Min: 30, Max: 90}
	Heatmap     = SeriesSpec{Length: 12, Min: 30, Max: 100, NamePrefix: "S"}
	Spark       = SeriesSpec{Length: 18, Min: 40, Max: 90}
	Correlation = SeriesSpec{Length: 14, Min: 20, Max: 90}
)

// Series generates spec.Length samples with Y rounded to whole units in [Min, Max]
// Negative length yields an empty series, an inverted range is swapped
func Series(src Source, spec SeriesSpec) []Sample {
	n := spec.Length
	if n < 0 {
		n = 0
	}
	lo, hi := spec.Min, spec.Max
	if hi < lo {
		lo, hi = hi, lo
	}

	out := make([]Sample, n)
	for i := range out {
		s := Sample{
			X: i,
			Y: math.Round(uniform(src, lo, hi)),
		}
		if spec.NamePrefix != "" {
			s.Name = spec.NamePrefix + strconv.Itoa(i+1)
		}
		out[i] = s
	}
	return out
}

// Extent returns the lowest and highest Y in s, zeros for an empty series
func Extent(s []Sample) (lo, hi float64) {
	if len(s) == 0 {
		return 0, 0
	}
	lo, hi = s[0].Y, s[0].Y
	for _, v := range s[1:] {
		lo = math.Min(lo, v.Y)
		hi = math.Max(hi, v.Y)
	}
	return lo, hi
}
