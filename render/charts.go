package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neonops/procgen"
)

// ChartDomain is the fixed Y range of every chart
const ChartDomain = 100.0

// Eighth-block runes from lowest to full
var blockRunes = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Resample maps samples onto width columns by linear interpolation
// Returns nil for an empty series or non-positive width
func Resample(samples []procgen.Sample, width int) []float64 {
	n := len(samples)
	if n == 0 || width <= 0 {
		return nil
	}
	out := make([]float64, width)
	if n == 1 || width == 1 {
		for i := range out {
			out[i] = samples[0].Y
		}
		return out
	}
	for c := range out {
		t := float64(c) / float64(width-1) * float64(n-1)
		i := int(t)
		if i >= n-1 {
			out[c] = samples[n-1].Y
			continue
		}
		frac := t - float64(i)
		out[c] = samples[i].Y + (samples[i+1].Y-samples[i].Y)*frac
	}
	return out
}

// level converts a value to eighths of a cell over height rows
func level(v float64, height int) int {
	v = math.Max(0, math.Min(ChartDomain, v))
	return int(math.Round(v / ChartDomain * float64(height*8)))
}

// Sparkline draws samples into the single row r.Y using eighth blocks
func Sparkline(buf *RenderBuffer, r Rect, samples []procgen.Sample, color colorful.Color) {
	if r.Empty() {
		return
	}
	cols := Resample(samples, r.W)
	for x, v := range cols {
		buf.Set(r.X+x, r.Y, blockRunes[level(v, 1)], color, 0.9)
	}
}

// Bars draws one vertical bar per sample bottom-up, shaded from low to high color by value
func Bars(buf *RenderBuffer, r Rect, samples []procgen.Sample, low, high colorful.Color) {
	n := len(samples)
	if r.Empty() || n == 0 {
		return
	}
	slot := r.W / n
	if slot < 1 {
		slot = 1
	}
	barW := slot - 1
	if barW < 1 {
		barW = 1
	}

	for i, s := range samples {
		x0 := r.X + i*slot
		if x0 >= r.X+r.W {
			break
		}
		color := Gradient(low, high, s.Y/ChartDomain)
		fillColumn(buf, x0, min(barW, r.X+r.W-x0), r, level(s.Y, r.H), color, 0.85)
	}
}

// Area draws a filled area under the resampled series with a brighter top edge
func Area(buf *RenderBuffer, r Rect, samples []procgen.Sample, stroke colorful.Color) {
	if r.Empty() {
		return
	}
	cols := Resample(samples, r.W)
	for x, v := range cols {
		eighths := level(v, r.H)
		fillColumn(buf, r.X+x, 1, r, eighths, stroke, 0.22)

		// Stroke the topmost occupied cell
		top := r.Y + r.H - 1 - (eighths-1)/8
		if eighths > 0 && top >= r.Y {
			buf.Set(r.X+x, top, blockRunes[partial(eighths)], stroke, 0.9)
		}
	}
}

// Line plots the resampled series as points joined by vertical connectors
func Line(buf *RenderBuffer, r Rect, samples []procgen.Sample, stroke colorful.Color) {
	if r.Empty() {
		return
	}
	cols := Resample(samples, r.W)
	prevRow := -1
	for x, v := range cols {
		row := r.Y + r.H - 1 - int(math.Round(math.Max(0, math.Min(ChartDomain, v))/ChartDomain*float64(r.H-1)))
		if prevRow >= 0 && absInt(row-prevRow) > 1 {
			step := 1
			if row < prevRow {
				step = -1
			}
			for y := prevRow + step; y != row; y += step {
				buf.Set(r.X+x, y, '│', stroke, 0.5)
			}
		}
		buf.Set(r.X+x, row, '•', stroke, 1)
		prevRow = row
	}
}

// fillColumn fills eighths of height bottom-up in columns [x0, x0+w) of r
func fillColumn(buf *RenderBuffer, x0, w int, r Rect, eighths int, color colorful.Color, alpha float64) {
	for row := 0; row < r.H && eighths > 0; row++ {
		y := r.Y + r.H - 1 - row
		ch := blockRunes[8]
		if eighths < 8 {
			ch = blockRunes[eighths]
		}
		for x := x0; x < x0+w; x++ {
			buf.Set(x, y, ch, color, alpha)
		}
		eighths -= 8
	}
}

// partial returns the eighth-block index for the top cell of a column
func partial(eighths int) int {
	p := eighths % 8
	if p == 0 {
		return 8
	}
	return p
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
