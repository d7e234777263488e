package colormap

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// renderSwatch draws colors as a horizontal strip, one column band per
// entry, stretched to width×height with nearest-neighbor scaling.
func renderSwatch(msgs MessageProvider, colors []Color, width, height int) (*image.NRGBA, error) {
	if len(colors) == 0 {
		return nil, newError(msgs, ErrNullOrMissingInput, "Swatch", "colors")
	}
	if width < 1 || height < 1 {
		return nil, newError(msgs, ErrOutOfRange, "Swatch", image.Pt(width, height))
	}

	strip := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for x, c := range colors {
		strip.SetNRGBA(x, 0, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), strip, strip.Bounds(), draw.Src, nil)
	return dst, nil
}

// Swatch renders colors stretched to a width×height image.
func Swatch(colors []Color, width, height int) (*image.NRGBA, error) {
	return renderSwatch(nil, colors, width, height)
}
