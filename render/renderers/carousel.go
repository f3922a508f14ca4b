package renderers

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/neonops/animation"
	"github.com/lixenwraith/neonops/page"
	"github.com/lixenwraith/neonops/render"
)

// Entrance spring parameters
const (
	entranceFPS       = 60
	entranceFrequency = 6.0
	entranceDamping   = 0.7
	entranceSlide     = 6.0 // cells the quote starts to the right
	entranceSteps     = 90
)

// CarouselRenderer draws the active testimonial with a spring entrance and the position dots
type CarouselRenderer struct {
	// entrance[i] is the remaining displacement in [0,1] i spring frames after a change
	entrance []float64
}

// NewCarouselRenderer creates a carousel renderer, precomputing the entrance trajectory
func NewCarouselRenderer() *CarouselRenderer {
	spring := harmonica.NewSpring(harmonica.FPS(entranceFPS), entranceFrequency, entranceDamping)
	traj := make([]float64, entranceSteps)
	pos, vel := 1.0, 0.0
	for i := range traj {
		traj[i] = pos
		pos, vel = spring.Update(pos, vel, 0)
	}
	return &CarouselRenderer{entrance: traj}
}

// Displacement returns the entrance offset in [0,1] at age, 0 once settled or under reduced motion
func (c *CarouselRenderer) Displacement(age time.Duration, reduced bool) float64 {
	if reduced || age < 0 {
		return 0
	}
	step := int(age / (time.Second / entranceFPS))
	if step >= len(c.entrance) {
		return 0
	}
	return c.entrance[step]
}

// Render implements SystemRenderer
func (c *CarouselRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	box := ctx.Layout.Carousel
	if box.W < 10 || box.H < 4 || !ctx.Snap.Mounted {
		return
	}
	car := ctx.Snap.Carousel
	frame(buf, box)
	buf.Text(box.X+2, box.Y, " Feedback ", render.TextMuted, box.W-4)
	inner := box.Inset(1)
	if car.Count == 0 {
		return
	}

	d := c.Displacement(car.Age, ctx.Snap.Reduced)
	shift := int(math.Round(d * entranceSlide))
	// Overshoot past the target reads as full opacity
	alpha := 1 - math.Max(0, math.Min(1, math.Abs(d)))

	textW := inner.W - 2
	lines := wrap("“"+car.Item.Quote+"”", textW)
	maxLines := inner.H - 2
	for i, line := range lines {
		if i >= maxLines {
			break
		}
		x := inner.X + 1 + shift
		for j, r := range []rune(line) {
			if x+j >= inner.X+inner.W {
				break
			}
			buf.Set(x+j, inner.Y+i, r, render.TextBright, alpha)
		}
	}

	attr := "— " + car.Item.Name + ", " + car.Item.Org
	buf.Text(inner.X+1, inner.Y+inner.H-2, attr, render.TextMuted, textW)

	drawDots(buf, inner, car)
}

// drawDots centers one dot per testimonial on the last row, the active one lit
func drawDots(buf *render.RenderBuffer, r render.Rect, car page.Carousel) {
	y := r.Y + r.H - 1
	x := r.X + (r.W-(car.Count*2-1))/2
	for i := 0; i < car.Count; i++ {
		if i == car.Index {
			buf.SetBold(x+i*2, y, '●', render.Cyan)
			continue
		}
		buf.Set(x+i*2, y, '○', render.TextMuted, 1)
	}
	if car.State == animation.CarouselPaused {
		buf.Text(r.X+r.W-len("paused"), y, "paused", render.TextMuted, len("paused"))
	}
}
