// Package colorutil provides the packed ARGB color type used by the theme
// renderer and the HSL/HSV adjustments its paint routines derive colors with.
package colorutil

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 32-bit ARGB value, alpha in the top byte.
type Color uint32

const (
	Black Color = 0xff000000
	White Color = 0xffffffff
)

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB packs an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xff, r, g, b)
}

func (c Color) Alpha() uint8 { return uint8(c >> 24) }
func (c Color) Red() uint8   { return uint8(c >> 16) }
func (c Color) Green() uint8 { return uint8(c >> 8) }
func (c Color) Blue() uint8  { return uint8(c) }

// WithAlpha returns the color with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return ARGB(a, c.Red(), c.Green(), c.Blue())
}

// NRGBA converts to the stdlib non-premultiplied representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}

// FromColor converts any stdlib color to a packed Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB(n.A, n.R, n.G, n.B)
}

// HSL is a hue/saturation/lightness triple. H is in degrees [0,360),
// S and L in [0,1].
type HSL struct {
	H float64
	S float64
	L float64
}

// HSV is a hue/saturation/value triple. H is in degrees [0,360),
// S and V in [0,1].
type HSV struct {
	H float64
	S float64
	V float64
}

// HSL converts the color, ignoring alpha.
func (c Color) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{H: h, S: s, L: l}
}

// HSV converts the color, ignoring alpha.
func (c Color) HSV() HSV {
	h, s, v := c.colorful().Hsv()
	return HSV{H: h, S: s, V: v}
}

// Color recombines the triple with the given alpha.
func (h HSL) Color(alpha uint8) Color {
	r, g, b := colorful.Hsl(h.H, h.S, h.L).Clamped().RGB255()
	return ARGB(alpha, r, g, b)
}

// Color recombines the triple as an opaque color.
func (h HSV) Color() Color {
	r, g, b := colorful.Hsv(h.H, h.S, h.V).Clamped().RGB255()
	return RGB(r, g, b)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.Red()) / 255.0,
		G: float64(c.Green()) / 255.0,
		B: float64(c.Blue()) / 255.0,
	}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
