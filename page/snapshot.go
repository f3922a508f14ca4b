package page

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/neonops/animation"
	"github.com/lixenwraith/neonops/procgen"
)

// Ring rotation periods for the orbit
const (
	OuterRingPeriod = 28 * time.Second
	InnerRingPeriod = 22 * time.Second
)

// KPI is one hero metric as displayed this frame
type KPI struct {
	KPISpec
	Value  float64
	Target float64
}

// Carousel is the testimonial slot as displayed this frame
type Carousel struct {
	Item  Testimonial
	Index int
	Count int
	State animation.CarouselState
	// Age is the time since the active testimonial last changed
	Age time.Duration
}

// Console is the demo console state
type Console struct {
	Tabs          []string
	ActiveTab     int
	AutoRemediate bool
	Stream        []StreamEvent
	Compliance    []ComplianceItem
	Badge         Badge
}

// Snapshot is everything the render layer reads for one frame
// Slices are shared with the mount and must not be modified
type Snapshot struct {
	MountID uuid.UUID
	Mounted bool
	Reduced bool

	// Elapsed drives the continuous effects, held at zero under reduced motion
	Elapsed time.Duration

	Badge     Badge
	KPIs      []KPI
	Particles []procgen.Particle
	HeroLine  []procgen.Sample
	Glow      animation.Position
	// ShimmerSeed seeds the grid background noise for this mount
	ShimmerSeed int64

	Orbit []OrbitNode

	Heat        []procgen.Sample
	Spark       []procgen.Sample
	Correlation []procgen.Sample
	Console     Console

	Carousel Carousel
}

// Snapshot reads the current state of every component without mutating any of them
func (p *Page) Snapshot() Snapshot {
	m := p.cur
	if m == nil {
		return Snapshot{Reduced: p.deps.Pref.Reduce}
	}
	now := p.deps.Host.Now()

	snap := Snapshot{
		MountID:     m.id,
		Mounted:     true,
		Reduced:     p.deps.Pref.Reduce,
		Badge:       Badge{Label: "All systems nominal", State: BadgeOK},
		Particles:   m.particles,
		HeroLine:    m.heroLine,
		Glow:        m.glow.Position(),
		ShimmerSeed: m.shimmerSeed,
		Orbit:       m.orbit,
		Heat:        m.heat,
		Spark:       m.spark,
		Correlation: m.correlation,
		Console: Console{
			Tabs:          ConsoleTabs,
			ActiveTab:     m.activeTab,
			AutoRemediate: m.autoRemediate,
			Stream:        EventStream,
			Compliance:    Compliance,
			Badge:         Badge{Label: "Live", State: BadgeOK},
		},
	}
	if !snap.Reduced {
		snap.Elapsed = now.Sub(m.mountedAt)
	}

	snap.KPIs = make([]KPI, len(m.counters))
	for i, c := range m.counters {
		snap.KPIs[i] = KPI{
			KPISpec: KPISpecs[i],
			Value:   c.Value(),
			Target:  c.Target(),
		}
	}

	item, _ := m.carousel.Active()
	snap.Carousel = Carousel{
		Item:  item,
		Index: m.carousel.Index(),
		Count: m.carousel.Len(),
		State: m.carousel.State(),
		Age:   now.Sub(m.slideChangedAt),
	}
	return snap
}
