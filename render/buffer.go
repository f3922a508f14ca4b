package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cell is one composited screen cell
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
	Bold bool
}

// RenderBuffer is a compositor renderers blend into before a single flush to the screen
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to a blank on the page background
func (b *RenderBuffer) Clear() {
	blank := Cell{Rune: ' ', Fg: TextNormal, Bg: Background}
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Get returns the cell at (x,y), a zero cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune with fg blended over the cell background by alpha
func (b *RenderBuffer) Set(x, y int, r rune, fg colorful.Color, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = Blend(c.Bg, fg, alpha)
	c.Bold = false
}

// SetBold writes a fully opaque bold rune
func (b *RenderBuffer) SetBold(x, y int, r rune, fg colorful.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
	c.Bold = true
}

// TintBg blends the cell background toward color by alpha, keeping the rune
func (b *RenderBuffer) TintBg(x, y int, color colorful.Color, alpha float64) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = Blend(c.Bg, color, alpha)
}

// Text writes s left to right clipped to maxW cells, returns cells written
func (b *RenderBuffer) Text(x, y int, s string, fg colorful.Color, maxW int) int {
	n := 0
	for _, r := range s {
		if n >= maxW {
			break
		}
		b.Set(x+n, y, r, fg, 1)
		n++
	}
	return n
}

// BoldText is Text in bold
func (b *RenderBuffer) BoldText(x, y int, s string, fg colorful.Color, maxW int) int {
	n := 0
	for _, r := range s {
		if n >= maxW {
			break
		}
		b.SetBold(x+n, y, r, fg)
		n++
	}
	return n
}

// Row reads the runes of row y as a string, used by tests and debugging
func (b *RenderBuffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	rs := make([]rune, b.width)
	for x := 0; x < b.width; x++ {
		rs[x] = b.cells[y*b.width+x].Rune
	}
	return string(rs)
}

// FlushToScreen copies every cell to the screen and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Foreground(ToTcell(c.Fg)).Background(ToTcell(c.Bg))
			if c.Bold {
				style = style.Bold(true)
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
