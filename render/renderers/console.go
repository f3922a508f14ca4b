package renderers

import (
	"fmt"

	"github.com/lixenwraith/neonops/page"
	"github.com/lixenwraith/neonops/render"
)

// Console tab indices
const (
	tabOverview = iota
	tabPipelines
	tabAlerts
	tabCompliance
)

// ConsoleRenderer draws the demo console: tab strip, energy toggle and the active panel
type ConsoleRenderer struct{}

// NewConsoleRenderer creates a console renderer
func NewConsoleRenderer() *ConsoleRenderer {
	return &ConsoleRenderer{}
}

// Render implements SystemRenderer
func (c *ConsoleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	box := ctx.Layout.Console
	if box.W < 12 || box.H < 5 || !ctx.Snap.Mounted {
		return
	}
	con := ctx.Snap.Console
	frame(buf, box)
	buf.Text(box.X+2, box.Y, " Console ", render.TextMuted, box.W-4)
	inner := box.Inset(1)

	drawTabs(buf, inner, con)
	drawToggle(buf, inner, con)

	body := render.Rect{X: inner.X, Y: inner.Y + 2, W: inner.W, H: inner.H - 2}
	if body.Empty() {
		return
	}
	switch con.ActiveTab {
	case tabOverview:
		half := body.H / 2
		buf.Text(body.X, body.Y, "Heat", render.TextMuted, body.W)
		render.Bars(buf, render.Rect{X: body.X, Y: body.Y + 1, W: body.W, H: max(half-1, 1)}, ctx.Snap.Heat, render.Purple, render.Magenta)
		if body.H > half+1 {
			buf.Text(body.X, body.Y+half, "Signals", render.TextMuted, body.W)
			render.Sparkline(buf, render.Rect{X: body.X, Y: body.Y + half + 1, W: body.W, H: 1}, ctx.Snap.Spark, render.Cyan)
		}
	case tabPipelines:
		drawStream(buf, body, con.Stream)
	case tabAlerts:
		buf.Text(body.X, body.Y, "Correlation", render.TextMuted, body.W)
		render.Area(buf, render.Rect{X: body.X, Y: body.Y + 1, W: body.W, H: body.H - 1}, ctx.Snap.Correlation, render.HoloBlue)
	case tabCompliance:
		drawCompliance(buf, body, con.Compliance)
	}
}

func drawTabs(buf *render.RenderBuffer, r render.Rect, con page.Console) {
	x := r.X
	for i, tab := range con.Tabs {
		label := " " + tab + " "
		if x+len(label) > r.X+r.W {
			break
		}
		if i == con.ActiveTab {
			for j := 0; j < len(label); j++ {
				buf.TintBg(x+j, r.Y, render.Purple, 0.35)
			}
			buf.BoldText(x, r.Y, label, render.TextBright, len(label))
		} else {
			buf.Text(x, r.Y, label, render.TextMuted, len(label))
		}
		x += len(label) + 1
	}
}

// drawToggle right-aligns the auto-remediation switch on the row under the tabs
func drawToggle(buf *render.RenderBuffer, r render.Rect, con page.Console) {
	if r.H < 2 {
		return
	}
	state, color := "OFF", render.TextMuted
	if con.AutoRemediate {
		state, color = "ON", render.Cyan
	}
	label := fmt.Sprintf("Auto-remediation [%-3s]", state)
	x := max(r.X, r.X+r.W-len(label))
	n := buf.Text(x, r.Y+1, label[:len(label)-5], render.TextNormal, r.W)
	buf.BoldText(x+n, r.Y+1, label[len(label)-5:], color, r.W-n)

	drawBadge(buf, r.X, r.Y+1, x-r.X-1, con.Badge, 0)
}

func drawStream(buf *render.RenderBuffer, r render.Rect, events []page.StreamEvent) {
	for i, ev := range events {
		if i >= r.H {
			break
		}
		y := r.Y + i
		n := buf.Text(r.X, y, ev.Time+"  ", render.TextMuted, r.W)
		n += buf.Text(r.X+n, y, ev.Event, render.TextNormal, r.W-n)
		if sx := r.X + r.W - len(ev.Status); sx > r.X+n {
			buf.BoldText(sx, y, ev.Status, render.Cyan, len(ev.Status))
		}
	}
}

func drawCompliance(buf *render.RenderBuffer, r render.Rect, items []page.ComplianceItem) {
	if len(items) == 0 {
		return
	}
	cellW := r.W / len(items)
	for i, item := range items {
		x := r.X + i*cellW
		buf.Text(x, r.Y, item.Key, render.TextMuted, cellW-1)
		if r.H > 1 {
			buf.BoldText(x, r.Y+1, item.Value, render.Cyan, cellW-1)
		}
	}
}
