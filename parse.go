package colormap

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor parses a color given as #rgb, #rrggbb, #rrggbbaa or an SVG
// color name such as "steelblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		if len(s) == 9 {
			return parseHexAlpha(s)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, newError(nil, ErrSyntax, "ParseColor", s)
		}
		return FromUnit(c, 255), nil
	}
	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Color{}, newError(nil, ErrSyntax, "ParseColor", s)
	}
	return FromColor(named), nil
}

// parseHexAlpha parses #rrggbbaa.
func parseHexAlpha(s string) (Color, error) {
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, newError(nil, ErrSyntax, "ParseColor", s)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ParseKeys parses a comma separated list of position:color pairs, e.g.
//
//	0:black, 0.5:#ff0000, 1:white
//
// Positions must lie in [0,1]; colors use the ParseColor syntax.
// An empty string yields no keys.
func ParseKeys(s string) ([]ColorKey, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	keys := make([]ColorKey, 0, len(fields))
	for _, f := range fields {
		pos, col, ok := strings.Cut(strings.TrimSpace(f), ":")
		if !ok {
			return nil, newError(nil, ErrSyntax, "ParseKeys", f)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(pos), 64)
		if err != nil {
			return nil, newError(nil, ErrSyntax, "ParseKeys", f)
		}
		c, err := ParseColor(col)
		if err != nil {
			return nil, err
		}
		k, err := NewColorKey(p, c)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// FormatKeys is the inverse of ParseKeys.
func FormatKeys(keys []ColorKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = formatPosition(k.position) + ":" + k.color.String()
	}
	return strings.Join(parts, ",")
}

func formatPosition(p float64) string {
	return strconv.FormatFloat(p, 'g', -1, 64)
}
