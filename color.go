package colormap

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	icolor "github.com/gogpu/colormap/internal/color"
)

// Color is an 8-bit, non-premultiplied sRGB color.
// It is the element type of every materialized palette.
type Color struct {
	R, G, B, A uint8
}

// ARGB creates a color from alpha, red, green and blue components.
func ARGB(a, r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 creates an opaque color.
func RGB8(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromUnit converts a normalized sRGB triple to a Color with the given alpha.
// Channels are rounded to nearest and clamped to [0,255].
func FromUnit(c colorful.Color, alpha uint8) Color {
	return Color{
		R: icolor.UnitToByte(c.R),
		G: icolor.UnitToByte(c.G),
		B: icolor.UnitToByte(c.B),
		A: alpha,
	}
}

// FromColor converts any color.Color to a non-premultiplied Color.
func FromColor(c color.Color) Color {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Unit returns the color's normalized sRGB triple. Alpha is dropped.
func (c Color) Unit() colorful.Color {
	return colorful.Color{
		R: icolor.ByteToUnit(c.R),
		G: icolor.ByteToUnit(c.G),
		B: icolor.ByteToUnit(c.B),
	}
}

// Opaque returns c with full alpha.
func (c Color) Opaque() Color {
	c.A = 255
	return c
}

// String formats c as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// lerpColor interpolates each channel of a and b by t and forces full opacity.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: icolor.LerpByte(a.R, b.R, t),
		G: icolor.LerpByte(a.G, b.G, t),
		B: icolor.LerpByte(a.B, b.B, t),
		A: 255,
	}
}

// Common colors
var (
	Black       = RGB8(0, 0, 0)
	White       = RGB8(255, 255, 255)
	Red         = RGB8(255, 0, 0)
	Green       = RGB8(0, 255, 0)
	Blue        = RGB8(0, 0, 255)
	Transparent = Color{}
)
