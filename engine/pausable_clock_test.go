package engine

import (
	"testing"
	"time"
)

func TestPausableClockFreezesAndSkips(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	base := NewMockTimeProvider(start)
	pc := NewPausableClock(base)

	base.Advance(time.Second)
	if got := pc.Now().Sub(start); got != time.Second {
		t.Fatalf("Expected 1s before pause, got %v", got)
	}

	pc.Pause()
	base.Advance(5 * time.Second)
	if got := pc.Now().Sub(start); got != time.Second {
		t.Errorf("Paused clock moved to %v", got)
	}
	if pc.TotalPaused() != 5*time.Second {
		t.Errorf("Expected 5s paused so far, got %v", pc.TotalPaused())
	}

	pc.Resume()
	base.Advance(2 * time.Second)
	if got := pc.Now().Sub(start); got != 3*time.Second {
		t.Errorf("Expected 3s after resume, got %v", got)
	}
}

func TestPausableClockToggleIdempotent(t *testing.T) {
	base := NewMockTimeProvider(time.Unix(0, 0))
	pc := NewPausableClock(base)

	pc.Resume()
	if pc.IsPaused() {
		t.Fatal("Resume on a running clock should be a no-op")
	}
	if !pc.Toggle() || !pc.IsPaused() {
		t.Fatal("Toggle should pause")
	}
	pc.Pause()
	base.Advance(time.Second)
	if pc.Toggle() {
		t.Fatal("Toggle should resume")
	}
	if pc.TotalPaused() != time.Second {
		t.Errorf("Double pause should not reset the pause start, got %v", pc.TotalPaused())
	}
}

func TestPausableClockHoldsLoopTimers(t *testing.T) {
	base := NewMockTimeProvider(time.Unix(0, 0))
	pc := NewPausableClock(base)
	loop := NewLoop(pc)

	fired := 0
	loop.SetInterval(100*time.Millisecond, func() { fired++ })

	pc.Pause()
	base.Advance(time.Second)
	loop.Step()
	if fired != 0 {
		t.Errorf("Timers fired %d times while paused", fired)
	}

	pc.Resume()
	base.Advance(100 * time.Millisecond)
	loop.Step()
	if fired != 1 {
		t.Errorf("Expected one fire after resume, got %d", fired)
	}
}
