package animation

import (
	"testing"
	"time"

	"github.com/lixenwraith/neonops/motion"
)

var quotes = []string{"a", "b", "c", "d"}

func TestCarouselAdvancesEveryInterval(t *testing.T) {
	loop, clock := newHarness()
	c := NewCarousel(loop, quotes, DefaultCarouselInterval, motion.Full())

	if c.State() != CarouselIdle {
		t.Fatalf("Expected idle before mount, got %v", c.State())
	}
	c.Mount()
	if c.State() != CarouselRunning {
		t.Fatalf("Expected running after mount, got %v", c.State())
	}

	for i := 0; i < 3; i++ {
		clock.Advance(5200 * time.Millisecond)
		loop.AdvanceTimers()
	}

	if c.Index() != 3 {
		t.Errorf("Expected index 3 after three ticks, got %d", c.Index())
	}

	clock.Advance(5200 * time.Millisecond)
	loop.AdvanceTimers()
	if c.Index() != 0 {
		t.Errorf("Expected wrap to 0 after fourth tick, got %d", c.Index())
	}
}

func TestCarouselGoToDoesNotResetTimer(t *testing.T) {
	loop, clock := newHarness()
	c := NewCarousel(loop, quotes, DefaultCarouselInterval, motion.Full())
	c.Mount()

	clock.Advance(5199 * time.Millisecond)
	loop.AdvanceTimers()
	c.GoTo(1)

	// Originally scheduled tick fires 1ms after the manual pick
	clock.Advance(time.Millisecond)
	loop.AdvanceTimers()

	if c.Index() != 2 {
		t.Errorf("Expected scheduled tick to advance manual pick to 2, got %d", c.Index())
	}
}

func TestCarouselGoToWraps(t *testing.T) {
	loop, _ := newHarness()
	c := NewCarousel(loop, quotes, DefaultCarouselInterval, motion.Full())

	tests := []struct{ in, want int }{
		{0, 0}, {3, 3}, {4, 0}, {9, 1}, {-1, 3}, {-6, 2},
	}
	for _, tt := range tests {
		c.GoTo(tt.in)
		if c.Index() != tt.want {
			t.Errorf("GoTo(%d) -> %d, want %d", tt.in, c.Index(), tt.want)
		}
	}

	c.GoTo(0)
	c.Prev()
	if c.Index() != 3 {
		t.Errorf("Prev from 0 -> %d, want 3", c.Index())
	}
	c.Next()
	if c.Index() != 0 {
		t.Errorf("Next from 3 -> %d, want 0", c.Index())
	}
}

func TestCarouselReducedMotionNeverAdvances(t *testing.T) {
	loop, clock := newHarness()
	c := NewCarousel(loop, quotes, DefaultCarouselInterval, motion.Reduced())
	c.Mount()

	if c.State() != CarouselPaused {
		t.Errorf("Expected paused under reduced motion, got %v", c.State())
	}
	if _, timers, _ := loop.Pending(); timers != 0 {
		t.Errorf("Reduced motion must not install a timer, got %d", timers)
	}

	clock.Advance(time.Minute)
	loop.AdvanceTimers()
	c.Resume()
	clock.Advance(time.Minute)
	loop.AdvanceTimers()

	if c.Index() != 0 {
		t.Errorf("Expected index 0, got %d", c.Index())
	}

	// Manual navigation still works
	c.GoTo(2)
	if c.Index() != 2 {
		t.Errorf("Expected manual GoTo under reduced motion, got %d", c.Index())
	}
}

func TestCarouselEmptyItems(t *testing.T) {
	loop, clock := newHarness()
	c := NewCarousel[string](loop, nil, DefaultCarouselInterval, motion.Full())
	c.Mount()

	if c.State() != CarouselPaused {
		t.Errorf("Expected paused for empty carousel, got %v", c.State())
	}
	c.GoTo(3)
	c.Next()
	clock.Advance(time.Minute)
	loop.AdvanceTimers()

	if c.Index() != 0 {
		t.Errorf("Expected index 0, got %d", c.Index())
	}
	if _, ok := c.Active(); ok {
		t.Error("Active should report false for empty carousel")
	}
}

func TestCarouselUnmountClearsTimer(t *testing.T) {
	loop, clock := newHarness()
	c := NewCarousel(loop, quotes, DefaultCarouselInterval, motion.Full())
	c.Mount()
	c.Unmount()

	if _, timers, _ := loop.Pending(); timers != 0 {
		t.Errorf("Unmount must clear the timer, %d pending", timers)
	}

	clock.Advance(time.Minute)
	loop.AdvanceTimers()
	c.GoTo(2)
	if c.Index() != 0 {
		t.Errorf("Unmounted carousel changed index to %d", c.Index())
	}

	// Mount after unmount stays disposed
	c.Mount()
	if _, timers, _ := loop.Pending(); timers != 0 {
		t.Errorf("Remounting a disposed carousel installed a timer")
	}
}

func TestCarouselPauseResume(t *testing.T) {
	loop, clock := newHarness()
	c := NewCarousel(loop, quotes, time.Second, motion.Full())
	c.Mount()

	clock.Advance(time.Second)
	loop.AdvanceTimers()
	c.Pause()

	clock.Advance(10 * time.Second)
	loop.AdvanceTimers()
	if c.Index() != 1 {
		t.Fatalf("Paused carousel advanced to %d", c.Index())
	}

	c.Resume()
	if c.State() != CarouselRunning {
		t.Fatalf("Expected running after resume, got %v", c.State())
	}
	clock.Advance(time.Second)
	loop.AdvanceTimers()
	if c.Index() != 2 {
		t.Errorf("Expected index 2 after resume tick, got %d", c.Index())
	}
	if _, timers, _ := loop.Pending(); timers != 1 {
		t.Errorf("Expected a single timer after pause/resume, got %d", timers)
	}
}

func TestCarouselOnAdvance(t *testing.T) {
	loop, clock := newHarness()

	var seen []int
	c := NewCarousel(loop, quotes, time.Second, motion.Full(), OnAdvance(func(i int) {
		seen = append(seen, i)
	}))
	c.Mount()
	c.GoTo(2)

	clock.Advance(2 * time.Second)
	loop.AdvanceTimers()

	if len(seen) != 2 || seen[0] != 3 || seen[1] != 0 {
		t.Errorf("Expected advances [3 0], got %v", seen)
	}
	if item, ok := c.Active(); !ok || item != "a" {
		t.Errorf("Expected active item a, got %q", item)
	}
}

func TestCarouselCopiesItems(t *testing.T) {
	loop, _ := newHarness()
	items := []string{"x", "y"}
	c := NewCarousel(loop, items, time.Second, motion.Full())
	items[0] = "mutated"

	if item, _ := c.Active(); item != "x" {
		t.Errorf("Carousel should own its items, got %q", item)
	}
}
