package colormap

import (
	"slices"

	"github.com/gogpu/gputypes"
)

// DefaultPixelFormat is the blue, green, red, alpha byte layout used by
// most desktop surfaces.
var DefaultPixelFormat = gputypes.TextureFormatBGRA8Unorm

// channelOrder returns, for each output byte of a 4-byte pixel, which
// channel of Color it holds (0=R, 1=G, 2=B, 3=A).
func channelOrder(format gputypes.TextureFormat) ([4]int, bool) {
	switch format {
	case gputypes.TextureFormatRGBA8Unorm:
		return [4]int{0, 1, 2, 3}, true
	case gputypes.TextureFormatBGRA8Unorm:
		return [4]int{2, 1, 0, 3}, true
	default:
		return [4]int{}, false
	}
}

// SupportsPixelFormat reports whether EncodePixels can write format.
func SupportsPixelFormat(format gputypes.TextureFormat) bool {
	_, ok := channelOrder(format)
	return ok
}

// EncodePixels appends colors to dst as 4-byte pixels in the layout of format.
// Channel values are written unchanged; palette colors are already sRGB encoded.
func EncodePixels(dst []byte, colors []Color, format gputypes.TextureFormat) ([]byte, error) {
	return encodePixels(nil, dst, colors, format)
}

func encodePixels(msgs MessageProvider, dst []byte, colors []Color, format gputypes.TextureFormat) ([]byte, error) {
	order, ok := channelOrder(format)
	if !ok {
		return nil, newError(msgs, ErrUnsupportedFormat, "EncodePixels", format)
	}
	dst = slices.Grow(dst, 4*len(colors))
	for _, c := range colors {
		ch := [4]uint8{c.R, c.G, c.B, c.A}
		dst = append(dst, ch[order[0]], ch[order[1]], ch[order[2]], ch[order[3]])
	}
	return dst, nil
}

