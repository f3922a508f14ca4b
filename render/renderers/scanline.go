package renderers

import (
	"github.com/lixenwraith/neonops/render"
	"github.com/lixenwraith/neonops/vmath"
)

// Scan sweep: a third-width beam crossing the hero's bottom rule every 2.4s
var scanSweep = vmath.Sweep{
	Period:  2.4,
	Offset:  vmath.Track{{At: 0, Value: -0.5}, {At: 0.5, Value: 2}, {At: 1, Value: 2.6}},
	Opacity: vmath.Track{{At: 0, Value: 0}, {At: 0.2, Value: 1}, {At: 0.5, Value: 1}, {At: 1, Value: 0}},
}

const (
	scanPeakAlpha   = 0.75
	// Rows needed above the rule for badge, headline and KPI cards
	scanMinHeroRows = 8
)

// ScanLineRenderer sweeps a cyan beam along the bottom of the hero text column
// Absent under reduced motion
type ScanLineRenderer struct {
	cover []float64
}

// NewScanLineRenderer creates a scan line renderer
func NewScanLineRenderer() *ScanLineRenderer {
	return &ScanLineRenderer{}
}

// Row returns the screen row the scan line occupies in layout l, -1 when the hero is too short
func (s *ScanLineRenderer) Row(l render.Layout) int {
	area := l.Hero.Inset(1)
	if area.H < scanMinHeroRows {
		return -1
	}
	return area.Y + area.H - 1
}

// Render implements SystemRenderer
func (s *ScanLineRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.Snap.Mounted || ctx.Snap.Reduced {
		return
	}
	y := s.Row(ctx.Layout)
	if y < 0 {
		return
	}
	left, _ := heroColumns(ctx.Layout.Hero.Inset(1))

	if cap(s.cover) < left.W {
		s.cover = make([]float64, left.W)
	}
	s.cover = s.cover[:left.W]
	offset, opacity := scanSweep.At(ctx.Snap.Elapsed.Seconds())
	vmath.Coverage(s.cover, offset, opacity, left.W/3)

	for i, c := range s.cover {
		x := left.X + i
		if c <= 0 {
			buf.Set(x, y, '─', render.Border, 1)
			continue
		}
		buf.Set(x, y, '━', render.Blend(render.Border, render.Cyan, c*scanPeakAlpha), 1)
	}
}
