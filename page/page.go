// Package page composes the animated components of the landing page and exposes
// their combined state as a presentation snapshot for the render layer
package page

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/neonops/animation"
	"github.com/lixenwraith/neonops/config"
	"github.com/lixenwraith/neonops/engine"
	"github.com/lixenwraith/neonops/motion"
	"github.com/lixenwraith/neonops/procgen"
	"github.com/lixenwraith/neonops/vmath"
)

// Host provides the scheduling primitives and clock, satisfied by *engine.Loop
type Host interface {
	engine.FrameScheduler
	engine.IntervalScheduler
	engine.PointerSource
	Now() time.Time
}

// Deps are the collaborators injected into a Page
type Deps struct {
	Host   Host
	Config config.Config
	Pref   motion.Preference
	Logger *slog.Logger

	// GlowBounds returns the hero container in screen cells
	GlowBounds func() animation.Rect
	// NewSource supplies randomness for each mount, nil uses procgen.NewSource
	NewSource func() procgen.Source
	// OnRotate is called on automatic testimonial rotation
	OnRotate func(index int)
}

// OrbitNode is an integration placed on the orbit
type OrbitNode struct {
	Label     string
	Tint      string
	AngleRad  float64
	RadiusPct float64
	X, Y      float64
}

// mount is the per-mount component arena, replaced wholesale on remount
type mount struct {
	id        uuid.UUID
	mountedAt time.Time

	counters []*animation.Counter
	carousel *animation.Carousel[Testimonial]
	glow     *animation.GlowTracker

	particles   []procgen.Particle
	heroLine    []procgen.Sample
	heat        []procgen.Sample
	spark       []procgen.Sample
	correlation []procgen.Sample
	orbit       []OrbitNode
	shimmerSeed int64

	slideChangedAt time.Time

	activeTab     int
	autoRemediate bool
}

// Page owns every animated component for one mount of the landing page
type Page struct {
	deps   Deps
	logger *slog.Logger

	cur *mount
}

// New creates an unmounted page
func New(deps Deps) *Page {
	if deps.NewSource == nil {
		deps.NewSource = procgen.NewSource
	}
	if deps.GlowBounds == nil {
		deps.GlowBounds = func() animation.Rect { return animation.Rect{} }
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Page{
		deps:   deps,
		logger: logger.With("component", "page"),
	}
}

// Mounted reports whether the page has live components
func (p *Page) Mounted() bool {
	return p.cur != nil
}

// MountID returns the identity of the current mount, uuid.Nil when unmounted
func (p *Page) MountID() uuid.UUID {
	if p.cur == nil {
		return uuid.Nil
	}
	return p.cur.id
}

// Mount creates fresh components, generates the fields once and starts every animation
func (p *Page) Mount() {
	if p.cur != nil {
		return
	}

	host := p.deps.Host
	cfg := p.deps.Config
	pref := p.deps.Pref
	now := host.Now()
	src := p.deps.NewSource()

	m := &mount{
		id:             uuid.New(),
		mountedAt:      now,
		slideChangedAt: now,
		autoRemediate:  true,
		particles:      procgen.Particles(src, cfg.Particles.Count),
		heroLine:       procgen.Series(src, procgen.HeroLine),
		heat:           procgen.Series(src, procgen.Heatmap),
		spark:          procgen.Series(src, procgen.Spark),
		correlation:    procgen.Series(src, procgen.Correlation),
		orbit:          layoutOrbit(Integrations),
		shimmerSeed:    int64(src.Float64() * (1 << 53)),
	}

	for i := range KPISpecs {
		c := animation.NewCounter(host, host, pref)
		c.Start(kpiTarget(cfg, i), cfg.CountDuration())
		m.counters = append(m.counters, c)
	}

	m.carousel = animation.NewCarousel(host, Testimonials, cfg.CarouselInterval(), pref,
		animation.OnAdvance(func(index int) {
			m.slideChangedAt = host.Now()
			if p.deps.OnRotate != nil {
				p.deps.OnRotate(index)
			}
		}),
	)
	m.carousel.Mount()

	m.glow = animation.NewGlowTracker(host, p.deps.GlowBounds, pref)
	m.glow.Mount()

	p.cur = m
	p.logger.Info("page mounted",
		"mount", m.id,
		"reduced_motion", pref.Reduce,
		"motion_source", pref.Source,
		"particles", len(m.particles),
		"carousel", m.carousel.State().String(),
	)
}

// Unmount tears down every component, pending callbacks become no-ops
func (p *Page) Unmount() {
	m := p.cur
	if m == nil {
		return
	}
	for _, c := range m.counters {
		c.Dispose()
	}
	m.carousel.Unmount()
	m.glow.Unmount()
	p.cur = nil

	p.logger.Info("page unmounted", "mount", m.id)
}

// Remount replaces the current mount, regenerating all random fields
func (p *Page) Remount() {
	p.Unmount()
	p.Mount()
}

// --- Interaction ---

// NextTestimonial moves the carousel forward
func (p *Page) NextTestimonial() {
	p.navigate(func(c *animation.Carousel[Testimonial]) { c.Next() })
}

// PrevTestimonial moves the carousel back
func (p *Page) PrevTestimonial() {
	p.navigate(func(c *animation.Carousel[Testimonial]) { c.Prev() })
}

// GoToTestimonial selects a testimonial by index
func (p *Page) GoToTestimonial(i int) {
	p.navigate(func(c *animation.Carousel[Testimonial]) { c.GoTo(i) })
}

// TestimonialCount returns the number of carousel slides, 0 while unmounted
func (p *Page) TestimonialCount() int {
	if p.cur == nil {
		return 0
	}
	return p.cur.carousel.Len()
}

// ToggleCarousel pauses a running carousel or resumes a paused one
func (p *Page) ToggleCarousel() {
	if p.cur == nil {
		return
	}
	c := p.cur.carousel
	if c.State() == animation.CarouselRunning {
		c.Pause()
	} else {
		c.Resume()
	}
}

// CycleTab selects the next console tab
func (p *Page) CycleTab() {
	if p.cur == nil {
		return
	}
	p.cur.activeTab = (p.cur.activeTab + 1) % len(ConsoleTabs)
}

// ToggleAutoRemediate flips the energy toggle
func (p *Page) ToggleAutoRemediate() {
	if p.cur == nil {
		return
	}
	p.cur.autoRemediate = !p.cur.autoRemediate
}

func (p *Page) navigate(fn func(*animation.Carousel[Testimonial])) {
	if p.cur == nil {
		return
	}
	before := p.cur.carousel.Index()
	fn(p.cur.carousel)
	if p.cur.carousel.Index() != before {
		p.cur.slideChangedAt = p.deps.Host.Now()
	}
}

func kpiTarget(cfg config.Config, i int) float64 {
	if i < len(cfg.Counter.Targets) {
		return cfg.Counter.Targets[i]
	}
	return 0
}

func layoutOrbit(items []Integration) []OrbitNode {
	points := vmath.OrbitLayout(len(items), vmath.DefaultOrbitRings)
	nodes := make([]OrbitNode, len(points))
	for i, pt := range points {
		nodes[i] = OrbitNode{
			Label:     items[i].Name,
			Tint:      items[i].Tint,
			AngleRad:  pt.AngleRad,
			RadiusPct: pt.RadiusPct,
			X:         pt.X,
			Y:         pt.Y,
		}
	}
	return nodes
}
