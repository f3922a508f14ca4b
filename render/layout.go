package render

import "github.com/lixenwraith/neonops/animation"

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the region has no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether cell (x,y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by n cells on every side
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Anim converts r to the container bounds used by the glow tracker
func (r Rect) Anim() animation.Rect {
	return animation.Rect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Layout splits the screen into the page sections
type Layout struct {
	Width, Height int

	Nav      Rect
	Hero     Rect
	Orbit    Rect
	Console  Rect
	Workflow Rect
	Carousel Rect
}

// Section sizing
const (
	navHeight      = 1
	carouselHeight = 7
	workflowHeight = 5
	minHeroHeight  = 8
	minCarouselFit = 24
	minWorkflowFit = 36
)

// ComputeLayout places sections top to bottom: nav, hero, orbit beside console, workflow, carousel
// Sections that do not fit are left empty
func ComputeLayout(w, h int) Layout {
	l := Layout{Width: w, Height: h}
	if w <= 0 || h <= 0 {
		return l
	}

	l.Nav = Rect{X: 0, Y: 0, W: w, H: min(navHeight, h)}
	rest := h - l.Nav.H

	carH := 0
	if h >= minCarouselFit {
		carH = carouselHeight
	}
	flowH := 0
	if h >= minWorkflowFit {
		flowH = workflowHeight
	}
	body := rest - carH - flowH
	if body <= 0 {
		return l
	}

	heroH := body * 9 / 20
	if heroH < minHeroHeight {
		heroH = min(minHeroHeight, body)
	}
	l.Hero = Rect{X: 0, Y: l.Nav.H, W: w, H: heroH}

	midY := l.Hero.Y + heroH
	midH := body - heroH
	if midH > 0 {
		orbitW := w * 2 / 5
		l.Orbit = Rect{X: 0, Y: midY, W: orbitW, H: midH}
		l.Console = Rect{X: orbitW, Y: midY, W: w - orbitW, H: midH}
	}

	if flowH > 0 {
		l.Workflow = Rect{X: 0, Y: h - carH - flowH, W: w, H: flowH}
	}
	if carH > 0 {
		l.Carousel = Rect{X: 0, Y: h - carH, W: w, H: carH}
	}
	return l
}
