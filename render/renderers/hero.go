package renderers

import (
	"time"

	"github.com/dustin/go-humanize"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/neonops/page"
	"github.com/lixenwraith/neonops/render"
	"github.com/lixenwraith/neonops/vmath"
)

// Status dot pulse period
const badgePulsePeriod = 2 * time.Second

const (
	heroTitle    = "Neon Ops Command Center"
	heroSubtitle = "Detection → decision → execution, governed end to end."
	kpiCardWidth = 18
)

// HeroRenderer draws the status badge, headline, KPI cards and the hero chart
type HeroRenderer struct{}

// NewHeroRenderer creates a hero renderer
func NewHeroRenderer() *HeroRenderer {
	return &HeroRenderer{}
}

// Render implements SystemRenderer
func (h *HeroRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	area := ctx.Layout.Hero.Inset(1)
	if area.Empty() || !ctx.Snap.Mounted {
		return
	}

	left, chart := heroColumns(area)

	y := left.Y
	drawBadge(buf, left.X, y, left.W, ctx.Snap.Badge, ctx.Snap.Elapsed)
	y += 2
	if y < left.Y+left.H {
		buf.BoldText(left.X, y, heroTitle, render.TextBright, left.W)
		y++
	}
	if y < left.Y+left.H {
		buf.Text(left.X, y, heroSubtitle, render.TextMuted, left.W)
		y += 2
	}
	if y+1 < left.Y+left.H {
		drawKPIs(buf, render.Rect{X: left.X, Y: y, W: left.W, H: left.Y + left.H - y}, ctx.Snap.KPIs)
	}

	if !chart.Empty() {
		frame(buf, chart)
		buf.Text(chart.X+2, chart.Y, " Signal Flow ", render.TextMuted, chart.W-4)
		render.Line(buf, chart.Inset(1), ctx.Snap.HeroLine, render.Cyan)
	}
}

// heroColumns splits the hero into the text column and, when wide enough, the chart beside it
func heroColumns(area render.Rect) (left, chart render.Rect) {
	left = area
	if area.W >= 60 {
		left.W = area.W / 2
		chart = render.Rect{X: area.X + left.W + 1, Y: area.Y + 1, W: area.W - left.W - 1, H: area.H - 1}
	}
	return left, chart
}

// drawBadge writes "● label" with the dot pulsing between dim and full
func drawBadge(buf *render.RenderBuffer, x, y, maxW int, b page.Badge, elapsed time.Duration) {
	color := render.Cyan
	if b.State == page.BadgeWarn {
		color = render.Magenta
	}
	// EaseInOutSine peaks mid-cycle, so the dot dims and recovers once per period
	alpha := 1 - 0.6*vmath.EaseInOutSine(elapsed.Seconds()/badgePulsePeriod.Seconds())
	buf.Set(x, y, '●', color, alpha)
	buf.Text(x+2, y, b.Label, render.TextNormal, maxW-2)
}

func drawKPIs(buf *render.RenderBuffer, r render.Rect, kpis []page.KPI) {
	x := r.X
	for _, k := range kpis {
		if x+kpiCardWidth > r.X+r.W {
			break
		}
		accent := render.Tint(k.Accent)
		buf.Text(x, r.Y, k.Title, render.TextMuted, kpiCardWidth-1)
		buf.BoldText(x, r.Y+1, FormatKPI(k), render.TextBright, kpiCardWidth-1)
		if r.H > 2 {
			meter(buf, x, r.Y+2, kpiCardWidth-2, accent)
		}
		x += kpiCardWidth
	}
}

// FormatKPI renders the count-up value with thousands separators followed by its suffix
func FormatKPI(k page.KPI) string {
	return humanize.Comma(int64(k.Value)) + k.Suffix
}

// meter draws a fixed 70% gradient bar from purple into accent
func meter(buf *render.RenderBuffer, x, y, w int, accent colorful.Color) {
	filled := w * 7 / 10
	for i := 0; i < w; i++ {
		if i < filled {
			t := float64(i) / float64(max(filled-1, 1))
			buf.Set(x+i, y, '━', render.Gradient(render.Purple, accent, t), 1)
			continue
		}
		buf.Set(x+i, y, '━', render.Border, 1)
	}
}
