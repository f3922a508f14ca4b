package renderers

import (
	"fmt"

	"github.com/lixenwraith/neonops/page"
	"github.com/lixenwraith/neonops/render"
	"github.com/lixenwraith/neonops/vmath"
)

// Flow sweep: a half-width pulse runs through every connector each 1.6s, all in phase
var flowSweep = vmath.Sweep{
	Period:  1.6,
	Offset:  vmath.Track{{At: 0, Value: -0.6}, {At: 0.6, Value: 1.6}, {At: 1, Value: 2.2}},
	Opacity: vmath.Track{{At: 0, Value: 0}, {At: 0.2, Value: 1}, {At: 0.6, Value: 1}, {At: 1, Value: 0}},
}

const (
	connectorWidth  = 6
	flowPeakAlpha   = 0.9
	pipelineMinSlot = connectorWidth + 8
)

// PipelineRenderer draws the workflow steps joined by connectors carrying a moving current
// Under reduced motion Elapsed stays at zero, where the pulse is fully faded
type PipelineRenderer struct {
	cover []float64
}

// NewPipelineRenderer creates a pipeline renderer
func NewPipelineRenderer() *PipelineRenderer {
	return &PipelineRenderer{cover: make([]float64, connectorWidth)}
}

// Render implements SystemRenderer
func (p *PipelineRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	box := ctx.Layout.Workflow
	steps := page.PipelineSteps
	if box.H < 5 || len(steps) == 0 || !ctx.Snap.Mounted {
		return
	}
	inner := box.Inset(1)
	slot := inner.W / len(steps)
	if slot < pipelineMinSlot {
		return
	}
	frame(buf, box)
	buf.Text(box.X+2, box.Y, " Glowing Data Pipeline ", render.TextMuted, box.W-4)

	offset, opacity := flowSweep.At(ctx.Snap.Elapsed.Seconds())
	vmath.Coverage(p.cover, offset, opacity, connectorWidth/2)

	for i, step := range steps {
		x := inner.X + i*slot
		titleW := slot - 1
		if i < len(steps)-1 {
			titleW = slot - connectorWidth - 2
			cx, cy := connector(inner, slot, i)
			p.drawConnector(buf, cx, cy)
		}
		buf.Text(x, inner.Y, fmt.Sprintf("STEP %d", i+1), render.Cyan, titleW)
		buf.BoldText(x, inner.Y+1, ellipsize(step.Title, titleW), render.TextBright, titleW)
		buf.Text(x, inner.Y+2, ellipsize(step.Desc, slot-1), render.TextMuted, slot-1)
	}
}

// connector returns the first cell of the connector after step i
func connector(inner render.Rect, slot, i int) (x, y int) {
	return inner.X + (i+1)*slot - connectorWidth - 1, inner.Y + 1
}

func (p *PipelineRenderer) drawConnector(buf *render.RenderBuffer, x, y int) {
	for i, c := range p.cover {
		if c <= 0 {
			buf.Set(x+i, y, '─', render.Border, 1)
			continue
		}
		buf.Set(x+i, y, '━', render.Blend(render.Border, render.Cyan, c*flowPeakAlpha), 1)
	}
}
