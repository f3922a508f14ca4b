package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Neon palette
var (
	Background = mustHex("#05060A")
	Cyan       = mustHex("#00F5FF")
	Purple     = mustHex("#7A2CFF")
	Magenta    = mustHex("#FF2EEA")
	HoloBlue   = mustHex("#3AA0FF")
	White      = colorful.Color{R: 1, G: 1, B: 1}

	// Text levels mirror white at 90/70/55 percent over the background
	TextBright = Blend(Background, White, 0.9)
	TextNormal = Blend(Background, White, 0.7)
	TextMuted  = Blend(Background, White, 0.55)
	Border     = Blend(Background, White, 0.12)
)

var (
	tintMu    sync.Mutex
	tintCache = map[string]colorful.Color{}
)

// Tint resolves a hex token, unparsable tokens fall back to white
func Tint(hex string) colorful.Color {
	tintMu.Lock()
	defer tintMu.Unlock()

	if c, ok := tintCache[hex]; ok {
		return c
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c = White
	}
	tintCache[hex] = c
	return c
}

// Blend mixes a toward b by t in [0,1]
func Blend(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.BlendRgb(b, t)
}

// Gradient interpolates from a to b in Lab space, for bars and meters
func Gradient(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.BlendLab(b, t).Clamped()
}

// ToTcell converts to a 24-bit terminal color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
