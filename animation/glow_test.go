package animation

import (
	"math"
	"testing"

	"github.com/lixenwraith/neonops/engine"
	"github.com/lixenwraith/neonops/motion"
)

func heroBounds() Rect {
	return Rect{X: 10, Y: 5, W: 80, H: 20}
}

func TestGlowTrackerNormalizesPointer(t *testing.T) {
	loop, _ := newHarness()
	g := NewGlowTracker(loop, heroBounds, motion.Full())
	g.Mount()

	if g.Position() != DefaultGlowPosition {
		t.Errorf("Expected default position before first move, got %+v", g.Position())
	}

	loop.DispatchPointer(engine.PointerEvent{X: 30, Y: 10})
	pos := g.Position()
	if math.Abs(pos.XPct-25) > 1e-9 || math.Abs(pos.YPct-25) > 1e-9 {
		t.Errorf("Expected (25,25), got %+v", pos)
	}
	if !g.Moved() {
		t.Error("Moved should be true after an event")
	}
}

func TestGlowTrackerClampsOutsideContainer(t *testing.T) {
	loop, _ := newHarness()
	g := NewGlowTracker(loop, heroBounds, motion.Full())
	g.Mount()

	loop.DispatchPointer(engine.PointerEvent{X: 0, Y: 100})
	if pos := g.Position(); pos.XPct != 0 || pos.YPct != 100 {
		t.Errorf("Expected clamp to (0,100), got %+v", pos)
	}
}

func TestGlowTrackerReducedMotionNeverSubscribes(t *testing.T) {
	loop, _ := newHarness()
	g := NewGlowTracker(loop, heroBounds, motion.Reduced())
	g.Mount()

	if g.Subscribed() {
		t.Error("Reduced motion tracker must not subscribe")
	}
	if _, _, pointers := loop.Pending(); pointers != 0 {
		t.Errorf("Expected no pointer subscriptions, got %d", pointers)
	}

	loop.DispatchPointer(engine.PointerEvent{X: 50, Y: 20})
	if g.Position() != DefaultGlowPosition {
		t.Errorf("Reduced motion position must stay default, got %+v", g.Position())
	}
}

func TestGlowTrackerNoListenerLeak(t *testing.T) {
	loop, _ := newHarness()

	for i := 0; i < 5; i++ {
		g := NewGlowTracker(loop, heroBounds, motion.Full())
		g.Mount()
		g.Mount()
		if _, _, pointers := loop.Pending(); pointers != 1 {
			t.Fatalf("mount %d: expected 1 subscription, got %d", i, pointers)
		}
		g.Unmount()
	}

	if _, _, pointers := loop.Pending(); pointers != 0 {
		t.Errorf("Expected all subscriptions removed, got %d", pointers)
	}
}

func TestGlowTrackerIgnoresEventsAfterUnmount(t *testing.T) {
	loop, _ := newHarness()
	g := NewGlowTracker(loop, heroBounds, motion.Full())
	g.Mount()
	loop.DispatchPointer(engine.PointerEvent{X: 50, Y: 15})
	before := g.Position()

	g.Unmount()
	loop.DispatchPointer(engine.PointerEvent{X: 10, Y: 5})
	if g.Position() != before {
		t.Errorf("Position changed after unmount: %+v -> %+v", before, g.Position())
	}

	g.Mount()
	if g.Subscribed() {
		t.Error("Disposed tracker must not resubscribe")
	}
}

func TestGlowTrackerZeroAreaBounds(t *testing.T) {
	loop, _ := newHarness()
	g := NewGlowTracker(loop, func() Rect { return Rect{X: 3, Y: 3} }, motion.Full())
	g.Mount()

	loop.DispatchPointer(engine.PointerEvent{X: 4, Y: 4})
	if g.Position() != DefaultGlowPosition || g.Moved() {
		t.Errorf("Zero-area container should ignore moves, got %+v", g.Position())
	}
}

func TestPositionOffset(t *testing.T) {
	p := DefaultGlowPosition.Offset(18, 12)
	if p.XPct != 68 || p.YPct != 42 {
		t.Errorf("Offset = %+v, want (68,42)", p)
	}
}
