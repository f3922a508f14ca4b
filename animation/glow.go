package animation

import (
	"github.com/lixenwraith/neonops/engine"
	"github.com/lixenwraith/neonops/motion"
	"github.com/lixenwraith/neonops/vmath"
)

// DefaultGlowPosition is used until the first pointer move and whenever motion is reduced
var DefaultGlowPosition = Position{XPct: 50, YPct: 30}

// Position is a point relative to a container, in percent of its width and height
type Position struct {
	XPct, YPct float64
}

// Offset returns p shifted by dx, dy percentage points
func (p Position) Offset(dx, dy float64) Position {
	return Position{XPct: p.XPct + dx, YPct: p.YPct + dy}
}

// Rect is a container bounding box in screen cell coordinates
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rect has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// GlowTracker follows the pointer and exposes its position within a container
type GlowTracker struct {
	src    engine.PointerSource
	bounds func() Rect
	pref   motion.Preference

	pos         Position
	moved       bool
	unsubscribe func()
	disposed    bool
}

// NewGlowTracker creates a tracker reading the container bounds on every move
func NewGlowTracker(src engine.PointerSource, bounds func() Rect, pref motion.Preference) *GlowTracker {
	return &GlowTracker{
		src:    src,
		bounds: bounds,
		pref:   pref,
		pos:    DefaultGlowPosition,
	}
}

// Mount subscribes to pointer moves, skipped entirely under reduced motion
func (g *GlowTracker) Mount() {
	if g.disposed || g.pref.Reduce || g.unsubscribe != nil {
		return
	}
	g.unsubscribe = g.src.SubscribePointer(g.onMove)
}

// Unmount removes the subscription, events after this are ignored
func (g *GlowTracker) Unmount() {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.unsubscribe = nil
	}
	g.disposed = true
}

// Subscribed reports whether a pointer subscription is installed
func (g *GlowTracker) Subscribed() bool {
	return g.unsubscribe != nil
}

// Position returns the last tracked position or the default
func (g *GlowTracker) Position() Position {
	return g.pos
}

// Moved reports whether any pointer event has been applied
func (g *GlowTracker) Moved() bool {
	return g.moved
}

func (g *GlowTracker) onMove(ev engine.PointerEvent) {
	if g.disposed || g.bounds == nil {
		return
	}
	r := g.bounds()
	if r.Empty() {
		return
	}
	g.pos = Position{
		XPct: vmath.Clamp01((ev.X-r.X)/r.W) * 100,
		YPct: vmath.Clamp01((ev.Y-r.Y)/r.H) * 100,
	}
	g.moved = true
}
