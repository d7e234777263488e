package colormap

import (
	"image"
	"image/color"
	"slices"

	"github.com/gogpu/gputypes"
)

// PaletteView is a read-only view of a SparseGradient's cached palette.
// It always reflects the gradient's current palette; use Colors for a
// snapshot.
type PaletteView struct {
	g *SparseGradient
}

// Len returns the number of entries.
func (v PaletteView) Len() int { return len(v.g.palette) }

// At returns entry i. It panics if i is out of range, like a slice index.
func (v PaletteView) At(i int) Color { return v.g.palette[i] }

// Colors returns a copy of the entries.
func (v PaletteView) Colors() []Color { return slices.Clone(v.g.palette) }

// All iterates over the entries with their indices.
func (v PaletteView) All(yield func(int, Color) bool) {
	for i, c := range v.g.palette {
		if !yield(i, c) {
			return
		}
	}
}

// ColorPalette returns a copy of the entries as a color.Palette, e.g. for
// building an image.Paletted.
func (v PaletteView) ColorPalette() color.Palette {
	p := make(color.Palette, len(v.g.palette))
	for i, c := range v.g.palette {
		p[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return p
}

// Pixels encodes the entries as 4-byte pixels in the layout of format.
func (v PaletteView) Pixels(format gputypes.TextureFormat) ([]byte, error) {
	return encodePixels(v.g.msgs, nil, v.g.palette, format)
}

// Swatch renders the entries stretched to a width×height image.
func (v PaletteView) Swatch(width, height int) (*image.NRGBA, error) {
	return renderSwatch(v.g.msgs, v.g.palette, width, height)
}
