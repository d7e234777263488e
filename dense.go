package colormap

import (
	"image"
	"math"

	"github.com/gogpu/gputypes"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/colormap/internal/cache"
	icolor "github.com/gogpu/colormap/internal/color"
)

// ColorScaleLength is the sample count required by NewColorScale.
const ColorScaleLength = 256

// DenseGradient interpolates between evenly spaced sRGB samples.
// Sample i sits at position i/(Len()-1).
//
// A DenseGradient is immutable after construction and safe for concurrent use.
type DenseGradient struct {
	samples []colorful.Color
	msgs    MessageProvider
	memo    *cache.Memo[paletteKey, []Color]
}

// paletteKey identifies a memoized palette.
type paletteKey struct {
	count   int
	inverse bool
}

// NewDenseGradient creates a gradient from samples, which are copied.
//
// It fails with ErrNullOrMissingInput if samples is nil or empty, with
// ErrInvalidLength if WithFixedLength was given and the length differs, and
// with ErrOutOfRange if any channel of any sample lies outside [0,1].
func NewDenseGradient(samples []colorful.Color, opts ...Option) (*DenseGradient, error) {
	o := applyOptions(opts)

	if len(samples) == 0 {
		return nil, newError(o.msgs, ErrNullOrMissingInput, "NewDenseGradient", "samples")
	}
	if o.fixedLength > 0 && len(samples) != o.fixedLength {
		return nil, newError(o.msgs, ErrInvalidLength, "NewDenseGradient", len(samples))
	}
	for i, s := range samples {
		if !s.IsValid() {
			return nil, newError(o.msgs, ErrOutOfRange, "NewDenseGradient", sampleRef{i, s})
		}
	}

	g := &DenseGradient{
		samples: make([]colorful.Color, len(samples)),
		msgs:    o.msgs,
		memo:    cache.New[paletteKey, []Color](o.memoLimit),
	}
	copy(g.samples, samples)
	return g, nil
}

// NewColorScale creates a gradient of exactly ColorScaleLength samples.
func NewColorScale(samples []colorful.Color, opts ...Option) (*DenseGradient, error) {
	return NewDenseGradient(samples, append([]Option{WithFixedLength(ColorScaleLength)}, opts...)...)
}

// NewColorMap creates a gradient of any non-empty length. It overrides a
// WithFixedLength given in opts.
func NewColorMap(samples []colorful.Color, opts ...Option) (*DenseGradient, error) {
	return NewDenseGradient(samples, append(opts, WithFixedLength(0))...)
}

// NewDenseGradientTriples creates a gradient from raw red, green, blue
// triples in [0,1], as supplied by external colormap tables.
// A nil or empty table fails with ErrNullOrMissingInput.
func NewDenseGradientTriples(rgb [][3]float64, opts ...Option) (*DenseGradient, error) {
	if len(rgb) == 0 {
		return NewDenseGradient(nil, opts...)
	}
	samples := make([]colorful.Color, len(rgb))
	for i, t := range rgb {
		samples[i] = colorful.Color{R: t[0], G: t[1], B: t[2]}
	}
	return NewDenseGradient(samples, opts...)
}

// sampleRef identifies a rejected sample in error values.
type sampleRef struct {
	Index int
	Color colorful.Color
}

// Len returns the number of samples.
func (g *DenseGradient) Len() int { return len(g.samples) }

// Samples returns a copy of the samples.
func (g *DenseGradient) Samples() []colorful.Color {
	out := make([]colorful.Color, len(g.samples))
	copy(out, g.samples)
	return out
}

// Interpolate returns the opaque color at position. With inverse set the
// gradient is read from the end, i.e. position p yields the color at 1-p.
// It fails with ErrOutOfRange if position is outside [0,1].
func (g *DenseGradient) Interpolate(position float64, inverse bool) (Color, error) {
	c, err := g.InterpolateSRGB(position, inverse)
	if err != nil {
		return Transparent, err
	}
	return FromUnit(c, 255), nil
}

// InterpolateSRGB is like Interpolate but returns the normalized sRGB triple
// without rounding to 8 bits.
func (g *DenseGradient) InterpolateSRGB(position float64, inverse bool) (colorful.Color, error) {
	if !icolor.InUnitRange(position) {
		return colorful.Color{}, newError(g.msgs, ErrOutOfRange, "DenseGradient.Interpolate", position)
	}
	if inverse {
		position = 1 - position
	}
	return g.at(position), nil
}

// at interpolates at a position already known to be in [0,1].
func (g *DenseGradient) at(position float64) colorful.Color {
	last := len(g.samples) - 1
	if position == 1 || last == 0 {
		return g.samples[last]
	}

	index := position * float64(last)
	low := int(math.Floor(index))
	if low >= last {
		return g.samples[last]
	}
	factor := index - float64(low)

	// BlendRgb is a per-channel lerp in sRGB space.
	return g.samples[low].BlendRgb(g.samples[low+1], factor)
}

// Palette materializes count opaque colors, entry i taken at position
// i/count. The last entry therefore never lands exactly on position 1.
// It fails with ErrOutOfRange if count < 1.
//
// Palettes are memoized per count; the returned slice is always a fresh copy.
func (g *DenseGradient) Palette(count int) ([]Color, error) {
	return g.palette("DenseGradient.Palette", count, false)
}

// PaletteInverse is like Palette but entry i equals Interpolate(i/count, true),
// so the first entry is the last sample.
func (g *DenseGradient) PaletteInverse(count int) ([]Color, error) {
	return g.palette("DenseGradient.PaletteInverse", count, true)
}

func (g *DenseGradient) palette(op string, count int, inverse bool) ([]Color, error) {
	if count < 1 {
		return nil, newError(g.msgs, ErrOutOfRange, op, count)
	}

	palette, hit := g.memo.GetOrCreate(paletteKey{count, inverse}, func() []Color {
		p := make([]Color, count)
		for i := range p {
			pos := float64(i) / float64(count)
			if inverse {
				pos = 1 - pos
			}
			p[i] = FromUnit(g.at(pos), 255)
		}
		return p
	})
	Logger().Debug("colormap: dense palette", "count", count, "inverse", inverse, "memo_hit", hit)

	out := make([]Color, len(palette))
	copy(out, palette)
	return out, nil
}

// Pixels materializes count colors (see Palette) and encodes them in the
// byte layout of format.
func (g *DenseGradient) Pixels(count int, format gputypes.TextureFormat) ([]byte, error) {
	palette, err := g.Palette(count)
	if err != nil {
		return nil, err
	}
	return encodePixels(g.msgs, nil, palette, format)
}

// Swatch renders a count-entry palette stretched to a width×height image.
func (g *DenseGradient) Swatch(count, width, height int) (*image.NRGBA, error) {
	palette, err := g.Palette(count)
	if err != nil {
		return nil, err
	}
	return renderSwatch(g.msgs, palette, width, height)
}
