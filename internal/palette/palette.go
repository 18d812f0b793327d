// Package palette holds the color values threaded through mesh building,
// shading and compositing. Nothing here reads global state; callers pass a
// Palette explicitly.
package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied RGBA color with channels in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

// RGBA builds a Color from float channels.
func RGBA(r, g, b, a float64) Color {
	return Color{Color: colorful.Color{R: r, G: g, B: b}, A: a}
}

// Hex parses "#rrggbb" with the given alpha.
func Hex(s string, alpha float64) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("palette: %w", err)
	}
	return Color{Color: c, A: alpha}, nil
}

// MustHex is Hex for package-level literals.
func MustHex(s string, alpha float64) Color {
	c, err := Hex(s, alpha)
	if err != nil {
		panic(err)
	}
	return c
}

// Scale multiplies R, G and B by k and clamps them to [0, 1]. Alpha is kept.
func (c Color) Scale(k float64) Color {
	scaled := colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
	return Color{Color: scaled.Clamped(), A: c.A}
}

// WithAlpha returns c with a replaced alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA converts to an 8-bit image/color value.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// Over blends c on top of dst using c's alpha.
func (c Color) Over(dst color.NRGBA) color.NRGBA {
	src := c.NRGBA()
	a := float64(src.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return color.NRGBA{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: 255}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Palette is the set of colors a frame is drawn with.
type Palette struct {
	Name         string
	Faces        []Color
	Outline      Color
	OutlineWidth float64
	Background   Color
	Grid         Color
}

// Face returns the base color for face or segment index i. The lookup
// wraps, so any index is valid.
func (p Palette) Face(i int) Color {
	if i < 0 {
		i = -i
	}
	if len(p.Faces) == 0 {
		return Default.Faces[i%len(Default.Faces)]
	}
	return p.Faces[i%len(p.Faces)]
}

// Default is used when a caller does not supply a palette.
var Default = Palette{
	Name: "default",
	Faces: []Color{
		MustHex("#7c4dff", 1),
		MustHex("#00bcd4", 1),
		MustHex("#ff4081", 1),
	},
	Outline:      MustHex("#ffffff", 0.25),
	OutlineWidth: 2,
	Background:   MustHex("#101018", 1),
	Grid:         MustHex("#ffffff", 0.06),
}
