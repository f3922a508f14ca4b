package animation

import (
	"time"

	"github.com/lixenwraith/neonops/engine"
	"github.com/lixenwraith/neonops/motion"
)

// DefaultCarouselInterval is the automatic rotation period
const DefaultCarouselInterval = 5200 * time.Millisecond

// CarouselState is the scheduler lifecycle state
type CarouselState uint8

const (
	CarouselIdle CarouselState = iota
	CarouselRunning
	CarouselPaused
)

func (s CarouselState) String() string {
	switch s {
	case CarouselIdle:
		return "idle"
	case CarouselRunning:
		return "running"
	case CarouselPaused:
		return "paused"
	}
	return "unknown"
}

// CarouselOption configures a Carousel
type CarouselOption func(*carouselConfig)

type carouselConfig struct {
	onAdvance func(index int)
}

// OnAdvance registers fn for automatic advances only, manual navigation does not call it
func OnAdvance(fn func(index int)) CarouselOption {
	return func(cfg *carouselConfig) {
		cfg.onAdvance = fn
	}
}

// Carousel cycles an active index over items on a fixed interval
// Manual navigation moves the index without resetting the running countdown
type Carousel[T any] struct {
	timers   engine.IntervalScheduler
	pref     motion.Preference
	interval time.Duration

	items  []T
	active int
	state  CarouselState

	timer    engine.TimerID
	hasTimer bool
	disposed bool

	onAdvance func(index int)
}

// NewCarousel creates an idle carousel over a copy of items
func NewCarousel[T any](timers engine.IntervalScheduler, items []T, interval time.Duration, pref motion.Preference, opts ...CarouselOption) *Carousel[T] {
	if interval < engine.MinInterval {
		interval = engine.MinInterval
	}
	var cfg carouselConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Carousel[T]{
		timers:    timers,
		pref:      pref,
		interval:  interval,
		items:     append([]T(nil), items...),
		state:     CarouselIdle,
		onAdvance: cfg.onAdvance,
	}
}

// Mount starts automatic rotation, or parks in Paused under reduced motion or with no items
func (c *Carousel[T]) Mount() {
	if c.disposed || c.state != CarouselIdle {
		return
	}
	if c.pref.Reduce || len(c.items) == 0 {
		c.state = CarouselPaused
		return
	}
	c.startTimer()
	c.state = CarouselRunning
}

// Unmount clears the timer, the carousel ignores all further calls
func (c *Carousel[T]) Unmount() {
	if c.disposed {
		return
	}
	c.stopTimer()
	c.disposed = true
	c.state = CarouselPaused
}

// Pause stops automatic rotation
func (c *Carousel[T]) Pause() {
	if c.disposed || c.state != CarouselRunning {
		return
	}
	c.stopTimer()
	c.state = CarouselPaused
}

// Resume restarts automatic rotation with a fresh interval, no-op under reduced motion
func (c *Carousel[T]) Resume() {
	if c.disposed || c.state != CarouselPaused || c.pref.Reduce || len(c.items) == 0 {
		return
	}
	c.startTimer()
	c.state = CarouselRunning
}

// GoTo sets the active index, wrapped modulo the item count
func (c *Carousel[T]) GoTo(i int) {
	if c.disposed || len(c.items) == 0 {
		return
	}
	c.active = wrap(i, len(c.items))
}

// Next moves to the following item
func (c *Carousel[T]) Next() {
	c.GoTo(c.active + 1)
}

// Prev moves to the preceding item
func (c *Carousel[T]) Prev() {
	c.GoTo(c.active - 1)
}

// Index returns the active index, 0 for an empty carousel
func (c *Carousel[T]) Index() int {
	return c.active
}

// Len returns the item count
func (c *Carousel[T]) Len() int {
	return len(c.items)
}

// Active returns the active item, false when there are no items
func (c *Carousel[T]) Active() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[c.active], true
}

// State returns the lifecycle state
func (c *Carousel[T]) State() CarouselState {
	return c.state
}

// Interval returns the rotation period
func (c *Carousel[T]) Interval() time.Duration {
	return c.interval
}

func (c *Carousel[T]) startTimer() {
	c.stopTimer()
	c.timer = c.timers.SetInterval(c.interval, c.advance)
	c.hasTimer = true
}

func (c *Carousel[T]) stopTimer() {
	if c.hasTimer {
		c.timers.ClearInterval(c.timer)
		c.hasTimer = false
	}
}

func (c *Carousel[T]) advance() {
	if c.disposed || c.state != CarouselRunning || len(c.items) == 0 {
		return
	}
	c.active = (c.active + 1) % len(c.items)
	if c.onAdvance != nil {
		c.onAdvance(c.active)
	}
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
