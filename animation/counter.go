// Package animation holds the per-component state machines driven by the engine loop:
// the count-up counter, the carousel scheduler and the cursor glow tracker
package animation

import (
	"math"
	"time"

	"github.com/lixenwraith/neonops/engine"
	"github.com/lixenwraith/neonops/motion"
	"github.com/lixenwraith/neonops/vmath"
)

// Counter defaults
const (
	DefaultCountDuration = 900 * time.Millisecond
	MinCountDuration     = time.Millisecond
)

// CounterOption configures a Counter
type CounterOption func(*Counter)

// WithObserver registers fn to receive every emitted value
func WithObserver(fn func(float64)) CounterOption {
	return func(c *Counter) {
		c.observer = fn
	}
}

// Counter interpolates a displayed number from 0 to a target with an ease-out curve, one step per frame
type Counter struct {
	frames engine.FrameScheduler
	clock  engine.TimeProvider
	pref   motion.Preference

	target    float64
	current   float64
	duration  time.Duration
	startedAt time.Time

	pending    engine.FrameID
	hasPending bool
	running    bool
	disposed   bool

	// run increments on every Start so callbacks from a superseded run are ignored
	run uint64

	observer func(float64)
}

// NewCounter creates an idle counter at 0
func NewCounter(frames engine.FrameScheduler, clock engine.TimeProvider, pref motion.Preference, opts ...CounterOption) *Counter {
	c := &Counter{
		frames:   frames,
		clock:    clock,
		pref:     pref,
		duration: DefaultCountDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start counts from 0 to target over duration, cancelling any run in flight
// Reduced motion snaps to target in a single emission without scheduling
func (c *Counter) Start(target float64, duration time.Duration) {
	if c.disposed {
		return
	}
	c.cancelPending()
	c.run++

	if target < 0 || math.IsNaN(target) {
		target = 0
	}
	if duration < MinCountDuration {
		duration = MinCountDuration
	}

	c.target = target
	c.duration = duration
	c.current = 0

	if c.pref.Reduce {
		c.running = false
		c.emit(target)
		return
	}

	c.running = true
	c.startedAt = c.clock.Now()
	c.schedule()
}

// Value returns the value last written by a frame
func (c *Counter) Value() float64 {
	return c.current
}

// Target returns the current target
func (c *Counter) Target() float64 {
	return c.target
}

// Running reports whether a frame is pending
func (c *Counter) Running() bool {
	return c.running
}

// Done reports whether the counter has landed on its target
func (c *Counter) Done() bool {
	return !c.running && c.current == c.target
}

// Dispose cancels any pending frame, later frames and Start calls are no-ops
func (c *Counter) Dispose() {
	if c.disposed {
		return
	}
	c.cancelPending()
	c.disposed = true
	c.running = false
}

func (c *Counter) schedule() {
	run := c.run
	c.pending = c.frames.RequestFrame(func(now time.Time) {
		c.tick(run, now)
	})
	c.hasPending = true
}

func (c *Counter) cancelPending() {
	if c.hasPending {
		c.frames.CancelFrame(c.pending)
		c.hasPending = false
	}
}

func (c *Counter) tick(run uint64, now time.Time) {
	// Stale callback from a cancelled or superseded run
	if c.disposed || run != c.run || !c.running {
		return
	}
	c.hasPending = false

	elapsed := now.Sub(c.startedAt)
	p := vmath.Progress(float64(elapsed), float64(c.duration))

	if p >= 1 {
		c.running = false
		c.emit(c.target)
		return
	}

	next := math.Round(c.target * vmath.EaseOutCubic(p))
	// Rounding never overshoots a fractional target before the terminal frame
	if next > c.target {
		next = math.Floor(c.target)
	}
	c.emit(next)
	c.schedule()
}

func (c *Counter) emit(v float64) {
	c.current = v
	if c.observer != nil {
		c.observer(v)
	}
}
