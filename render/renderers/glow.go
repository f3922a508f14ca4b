package renderers

import (
	"math"

	"github.com/lixenwraith/neonops/render"
)

// Glow falloff radii in percent of the hero, and peak strengths
const (
	primaryGlowRadius   = 45.0
	secondaryGlowRadius = 52.0
	primaryGlowAlpha    = 0.16
	secondaryGlowAlpha  = 0.12

	// Secondary glow offset from the pointer, in percentage points
	secondaryOffsetX = 18.0
	secondaryOffsetY = 12.0
)

// CursorGlowRenderer tints the hero background around the tracked pointer
type CursorGlowRenderer struct{}

// NewCursorGlowRenderer creates a glow renderer
func NewCursorGlowRenderer() *CursorGlowRenderer {
	return &CursorGlowRenderer{}
}

// Render implements SystemRenderer
func (g *CursorGlowRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	hero := ctx.Layout.Hero
	if hero.Empty() || !ctx.Snap.Mounted {
		return
	}
	primary := ctx.Snap.Glow
	secondary := primary.Offset(secondaryOffsetX, secondaryOffsetY)

	for y := hero.Y; y < hero.Y+hero.H; y++ {
		py := pctOf(hero.Y, hero.H, y)
		for x := hero.X; x < hero.X+hero.W; x++ {
			px := pctOf(hero.X, hero.W, x)

			if a := falloff(px-primary.XPct, py-primary.YPct, primaryGlowRadius); a > 0 {
				buf.TintBg(x, y, render.Cyan, a*primaryGlowAlpha)
			}
			if a := falloff(px-secondary.XPct, py-secondary.YPct, secondaryGlowRadius); a > 0 {
				buf.TintBg(x, y, render.Magenta, a*secondaryGlowAlpha)
			}
		}
	}
}

// falloff is a linear radial gradient, 1 at the center and 0 at radius
func falloff(dx, dy, radius float64) float64 {
	d := math.Hypot(dx, dy)
	if d >= radius {
		return 0
	}
	return 1 - d/radius
}
