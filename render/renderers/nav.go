package renderers

import (
	"github.com/lixenwraith/neonops/render"
)

var navLinks = []string{"Platform", "Integrations", "Console", "Customers"}

const navHint = "←/→ feedback  tab console  q quit"

// NavRenderer draws the top bar: wordmark, section links and a key hint
type NavRenderer struct{}

// NewNavRenderer creates a nav renderer
func NewNavRenderer() *NavRenderer {
	return &NavRenderer{}
}

// Render implements SystemRenderer
func (n *NavRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	bar := ctx.Layout.Nav
	if bar.Empty() {
		return
	}
	for x := bar.X; x < bar.X+bar.W; x++ {
		buf.TintBg(x, bar.Y, render.Purple, 0.08)
	}

	x := bar.X + 1
	x += buf.BoldText(x, bar.Y, "Neon", render.Cyan, bar.W-1)
	x += buf.BoldText(x, bar.Y, "Ops", render.Magenta, bar.X+bar.W-x)
	x += 3
	for _, link := range navLinks {
		if x+len(link) > bar.X+bar.W {
			return
		}
		x += buf.Text(x, bar.Y, link, render.TextNormal, len(link)) + 2
	}

	hint := []rune(navHint)
	if hx := bar.X + bar.W - len(hint) - 1; hx > x {
		buf.Text(hx, bar.Y, navHint, render.TextMuted, len(hint))
	}
}
