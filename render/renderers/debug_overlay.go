package renderers

import (
	"fmt"
	"time"

	"github.com/lixenwraith/neonops/render"
)

// DebugOverlayRenderer shows frame rate, mount id and motion mode in the bottom right corner
type DebugOverlayRenderer struct {
	visible bool
	now     func() time.Time

	// FPS tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewDebugOverlayRenderer creates a debug overlay, now defaults to time.Now
func NewDebugOverlayRenderer(visible bool, now func() time.Time) *DebugOverlayRenderer {
	if now == nil {
		now = time.Now
	}
	return &DebugOverlayRenderer{
		visible:       visible,
		now:           now,
		lastFpsUpdate: now(),
	}
}

// IsVisible implements VisibilityToggle
func (d *DebugOverlayRenderer) IsVisible() bool {
	return d.visible
}

// Toggle flips overlay visibility
func (d *DebugOverlayRenderer) Toggle() {
	d.visible = !d.visible
}

// FPS returns the frame rate measured over the last whole second
func (d *DebugOverlayRenderer) FPS() int {
	return d.currentFps
}

// Render implements SystemRenderer
func (d *DebugOverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	d.frameCount++
	now := d.now()
	if now.Sub(d.lastFpsUpdate) >= time.Second {
		d.currentFps = d.frameCount
		d.frameCount = 0
		d.lastFpsUpdate = now
	}

	mode := "full"
	if ctx.Snap.Reduced {
		mode = "reduced"
	}
	id := "unmounted"
	if ctx.Snap.Mounted {
		id = ctx.Snap.MountID.String()[:8]
	}
	text := fmt.Sprintf(" %d fps | %s | motion %s ", d.currentFps, id, mode)

	w, h := buf.Bounds()
	x := max(0, w-len(text))
	for i := 0; i < len(text) && x+i < w; i++ {
		buf.TintBg(x+i, h-1, render.Background, 1)
	}
	buf.Text(x, h-1, text, render.TextMuted, w-x)
}
