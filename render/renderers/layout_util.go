package renderers

import (
	"github.com/lixenwraith/neonops/render"
)

// cellAt maps a percentage coordinate to a cell column or row inside [origin, origin+size)
func cellAt(origin, size int, pct float64) int {
	if size <= 1 {
		return origin
	}
	c := origin + int(pct/100*float64(size-1)+0.5)
	if c < origin {
		return origin
	}
	if c >= origin+size {
		return origin + size - 1
	}
	return c
}

// pctOf returns the position of cell c inside [origin, origin+size) in percent
func pctOf(origin, size, c int) float64 {
	if size <= 1 {
		return 50
	}
	return float64(c-origin) / float64(size-1) * 100
}

// frame draws a single-line border around r
func frame(buf *render.RenderBuffer, r render.Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		buf.Set(x, r.Y, '─', render.Border, 1)
		buf.Set(x, bottom, '─', render.Border, 1)
	}
	for y := r.Y + 1; y < bottom; y++ {
		buf.Set(r.X, y, '│', render.Border, 1)
		buf.Set(right, y, '│', render.Border, 1)
	}
	buf.Set(r.X, r.Y, '╭', render.Border, 1)
	buf.Set(right, r.Y, '╮', render.Border, 1)
	buf.Set(r.X, bottom, '╰', render.Border, 1)
	buf.Set(right, bottom, '╯', render.Border, 1)
}

// wrap splits s into lines no wider than width, breaking on spaces
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var (
		lines []string
		line  []rune
		word  []rune
	)
	flush := func() {
		if len(word) == 0 {
			return
		}
		if len(line) > 0 && len(line)+1+len(word) > width {
			lines = append(lines, string(line))
			line = line[:0:0]
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		for len(word) > width {
			lines = append(lines, string(word[:width]))
			word = word[width:]
		}
		line = append(line, word...)
		word = word[:0:0]
	}
	for _, r := range s {
		if r == ' ' {
			flush()
			continue
		}
		word = append(word, r)
	}
	flush()
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// ellipsize shortens s to at most width runes, marking the cut with an ellipsis
func ellipsize(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:max(width, 0)])
	}
	return string(r[:width-1]) + "…"
}
