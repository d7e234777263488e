package colormap

import "cmp"

// ColorKey pins a color to a position in [0,1] of a sparse gradient.
//
// The zero value is a transparent key at position 0. ColorKey is a
// comparable value type: two keys are == iff position and color match.
type ColorKey struct {
	position float64
	color    Color
}

// NewColorKey creates a key. It fails with ErrOutOfRange if position is
// outside [0,1].
func NewColorKey(position float64, c Color) (ColorKey, error) {
	var k ColorKey
	if err := k.SetPosition(position); err != nil {
		return ColorKey{}, err
	}
	k.color = c
	return k, nil
}

// Position returns the key position.
func (k ColorKey) Position() float64 { return k.position }

// Color returns the key color.
func (k ColorKey) Color() Color { return k.color }

// SetPosition moves the key. The key is unchanged on error.
func (k *ColorKey) SetPosition(p float64) error {
	if !(p >= 0 && p <= 1) {
		return newError(nil, ErrOutOfRange, "ColorKey.SetPosition", p)
	}
	k.position = p
	return nil
}

// SetColor changes the key color.
func (k *ColorKey) SetColor(c Color) { k.color = c }

// Equal reports whether k and other have the same position and color.
func (k ColorKey) Equal(other ColorKey) bool { return k == other }

func (k ColorKey) String() string {
	return k.color.String() + "@" + formatPosition(k.position)
}

// CompareKeys orders keys by position only. It is the sort function used to
// keep sparse gradients ordered; keys at the same position compare equal.
func CompareKeys(a, b ColorKey) int {
	return cmp.Compare(a.position, b.position)
}
