package sim

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// paletteHues are the hues the ball cycles through on each bounce:
// red, green, blue, yellow, magenta, cyan.
var paletteHues = []float64{0, 120, 240, 60, 300, 180}

// Palette is a fixed list of fully saturated colors. Cycling is
// deterministic: a bounce always advances to the next entry.
type Palette []colorful.Color

// NewPalette builds the standard six-color palette.
func NewPalette() Palette {
	p := make(Palette, len(paletteHues))
	for i, h := range paletteHues {
		p[i] = colorful.Hsv(h, 1, 1)
	}
	return p
}

// Cycle returns the index following i, wrapping at the palette length.
func (p Palette) Cycle(i int) int {
	return (i + 1) % len(p)
}

// RGBA returns entry i as an opaque color.RGBA.
func (p Palette) RGBA(i int) color.RGBA {
	r, g, b := p[i].RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Faded returns entry i blended toward black by 1-t, with t clamped to
// [0, 1]. t=1 is the full color, t=0 is black. On the black background
// this reads the same as alpha fading.
func (p Palette) Faded(i int, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	black := colorful.Color{}
	r, g, b := black.BlendRgb(p[i], t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
