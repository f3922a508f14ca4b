package renderers

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neonops/page"
	"github.com/lixenwraith/neonops/render"
	"github.com/lixenwraith/neonops/vmath"
)

// Ring marks per revolution and their dash pattern
const (
	ringSegments = 48
	dashEvery    = 3
)

// OrbitRenderer draws the integration orbit with two counter-rotating rings around the core
type OrbitRenderer struct{}

// NewOrbitRenderer creates an orbit renderer
func NewOrbitRenderer() *OrbitRenderer {
	return &OrbitRenderer{}
}

// Render implements SystemRenderer
func (o *OrbitRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	box := ctx.Layout.Orbit
	if box.W < 8 || box.H < 5 || !ctx.Snap.Mounted {
		return
	}
	frame(buf, box)
	buf.Text(box.X+2, box.Y, " Integrations ", render.TextMuted, box.W-4)
	area := box.Inset(1)

	elapsed := ctx.Snap.Elapsed
	drawRing(buf, area, vmath.DefaultOrbitRings.Even, vmath.SpinAngle(elapsed, page.OuterRingPeriod, false), render.Purple)
	drawRing(buf, area, vmath.DefaultOrbitRings.Odd, vmath.SpinAngle(elapsed, page.InnerRingPeriod, true), render.HoloBlue)

	cx := cellAt(area.X, area.W, vmath.OrbitCenter)
	cy := cellAt(area.Y, area.H, vmath.OrbitCenter)
	core := "CORE"
	buf.BoldText(cx-len(core)/2, cy, core, render.Cyan, len(core))
	if cy+1 < area.Y+area.H {
		name := "NeonOps"
		buf.Text(cx-len(name)/2, cy+1, name, render.TextMuted, len(name))
	}

	for _, n := range ctx.Snap.Orbit {
		x := cellAt(area.X, area.W, n.X)
		y := cellAt(area.Y, area.H, n.Y)
		tint := render.Tint(n.Tint)
		buf.SetBold(x, y, '◆', tint)

		lx := labelX(area, x, len(n.Label), n.X < vmath.OrbitCenter)
		buf.Text(lx, y, n.Label, render.TextNormal, area.X+area.W-lx)
	}
}

// drawRing plots a dashed ellipse at radius percent, rotated by spin radians
func drawRing(buf *render.RenderBuffer, area render.Rect, radius, spin float64, color colorful.Color) {
	for i := 0; i < ringSegments; i++ {
		if i%dashEvery == dashEvery-1 {
			continue
		}
		a := spin + float64(i)/ringSegments*2*math.Pi
		x := cellAt(area.X, area.W, vmath.OrbitCenter+math.Cos(a)*radius)
		y := cellAt(area.Y, area.H, vmath.OrbitCenter+math.Sin(a)*radius)
		buf.Set(x, y, '·', color, 0.55)
	}
}

// labelX places a label beside its node, preferring the outer side and falling back to the other
func labelX(area render.Rect, x, width int, leftSide bool) int {
	left := x - 1 - width
	right := x + 2
	fitsLeft := left >= area.X
	fitsRight := right+width <= area.X+area.W
	switch {
	case leftSide && fitsLeft:
		return left
	case fitsRight:
		return right
	case fitsLeft:
		return left
	}
	return right
}
