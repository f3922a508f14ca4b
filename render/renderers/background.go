package renderers

import (
	"github.com/lixenwraith/neonops/procgen"
	"github.com/lixenwraith/neonops/render"
)

// Grid spacing in cells
const (
	gridStepX = 8
	gridStepY = 4
)

// NeonGridRenderer draws the faint shimmering grid behind the hero
type NeonGridRenderer struct {
	seed    int64
	shimmer *procgen.Shimmer
}

// NewNeonGridRenderer creates a grid renderer
func NewNeonGridRenderer() *NeonGridRenderer {
	return &NeonGridRenderer{}
}

// Render implements SystemRenderer
func (g *NeonGridRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	hero := ctx.Layout.Hero
	if hero.Empty() || !ctx.Snap.Mounted {
		return
	}
	// Noise field follows the mount so a remount reshuffles the shimmer
	if g.shimmer == nil || g.seed != ctx.Snap.ShimmerSeed {
		g.seed = ctx.Snap.ShimmerSeed
		g.shimmer = procgen.NewShimmer(g.seed)
	}

	for y := hero.Y; y < hero.Y+hero.H; y++ {
		onRow := (y-hero.Y)%gridStepY == 0
		for x := hero.X; x < hero.X+hero.W; x++ {
			onCol := (x-hero.X)%gridStepX == 0
			if !onRow && !onCol {
				continue
			}
			ch := '─'
			switch {
			case onRow && onCol:
				ch = '┼'
			case onCol:
				ch = '│'
			}
			intensity := 0.06 + 0.12*g.shimmer.At(x, y, ctx.Snap.Elapsed)
			buf.Set(x, y, ch, render.Purple, intensity)
		}
	}
}
