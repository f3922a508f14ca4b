package render

import "testing"

func TestComputeLayoutFullScreen(t *testing.T) {
	l := ComputeLayout(120, 40)

	if l.Nav != (Rect{X: 0, Y: 0, W: 120, H: 1}) {
		t.Errorf("Unexpected nav %+v", l.Nav)
	}
	if l.Hero != (Rect{X: 0, Y: 1, W: 120, H: 12}) {
		t.Errorf("Unexpected hero %+v", l.Hero)
	}
	if l.Orbit != (Rect{X: 0, Y: 13, W: 48, H: 15}) {
		t.Errorf("Unexpected orbit %+v", l.Orbit)
	}
	if l.Console != (Rect{X: 48, Y: 13, W: 72, H: 15}) {
		t.Errorf("Unexpected console %+v", l.Console)
	}
	if l.Workflow != (Rect{X: 0, Y: 28, W: 120, H: 5}) {
		t.Errorf("Unexpected workflow %+v", l.Workflow)
	}
	if l.Carousel != (Rect{X: 0, Y: 33, W: 120, H: 7}) {
		t.Errorf("Unexpected carousel %+v", l.Carousel)
	}
}

func TestComputeLayoutShortScreenDropsCarousel(t *testing.T) {
	l := ComputeLayout(80, 20)
	if !l.Carousel.Empty() {
		t.Errorf("Carousel should not fit in 20 rows, got %+v", l.Carousel)
	}
	if !l.Workflow.Empty() {
		t.Errorf("Workflow should not fit in 20 rows, got %+v", l.Workflow)
	}
	if l.Hero.H != 8 || l.Orbit.H != 11 {
		t.Errorf("Expected hero 8 and orbit 11 rows, got %d and %d", l.Hero.H, l.Orbit.H)
	}
}

func TestComputeLayoutTinyScreen(t *testing.T) {
	if l := ComputeLayout(0, 0); !l.Nav.Empty() || !l.Hero.Empty() {
		t.Errorf("Zero screen should have empty sections, got %+v", l)
	}

	l := ComputeLayout(40, 5)
	if l.Hero.H != 4 {
		t.Errorf("Hero should take the whole body, got %d rows", l.Hero.H)
	}
	if !l.Orbit.Empty() || !l.Console.Empty() {
		t.Error("No room should remain for orbit and console")
	}
}

func TestRectInsetAndContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 10, H: 4}
	in := r.Inset(1)
	if in != (Rect{X: 3, Y: 4, W: 8, H: 2}) {
		t.Errorf("Unexpected inset %+v", in)
	}
	if !r.Contains(2, 3) || r.Contains(12, 3) || r.Contains(2, 7) {
		t.Error("Contains should be half-open")
	}
	if got := r.Inset(5); !got.Empty() {
		t.Errorf("Over-inset should be empty, got %+v", got)
	}
	if a := r.Anim(); a.X != 2 || a.W != 10 {
		t.Errorf("Unexpected anim rect %+v", a)
	}
}
