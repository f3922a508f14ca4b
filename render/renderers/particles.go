package renderers

import (
	"github.com/lixenwraith/neonops/procgen"
	"github.com/lixenwraith/neonops/render"
)

// ParticlesRenderer draws the floating particle field over the hero
type ParticlesRenderer struct{}

// NewParticlesRenderer creates a particle renderer
func NewParticlesRenderer() *ParticlesRenderer {
	return &ParticlesRenderer{}
}

// Render implements SystemRenderer
func (p *ParticlesRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	hero := ctx.Layout.Hero
	if hero.Empty() {
		return
	}
	for _, pt := range ctx.Snap.Particles {
		// Elapsed is zero under reduced motion, which pins every particle
		rise := procgen.FloatOffset(pt, ctx.Snap.Elapsed)
		x := cellAt(hero.X, hero.W, pt.X)
		y := cellAt(hero.Y, hero.H, pt.Y-rise)
		buf.Set(x, y, particleRune(pt.Size), render.White, pt.Opacity)
	}
}

func particleRune(size float64) rune {
	switch {
	case size < 1.7:
		return '·'
	case size < 2.5:
		return '•'
	default:
		return '●'
	}
}
