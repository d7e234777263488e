package colormap

import (
	"math"
	"slices"
	"sort"

	icolor "github.com/gogpu/colormap/internal/color"
)

// Property names an observable property of a SparseGradient.
type Property string

// Observable properties.
const (
	PropertyInverted    Property = "Inverted"
	PropertyPaletteSize Property = "PaletteSize"
	PropertyPalette     Property = "Palette"
)

// SparseGradient is a gradient defined by positioned color keys, with a
// cached palette of PaletteSize entries.
//
// Palette entry i is the gradient sampled at position i/(PaletteSize-1).
// Between two keys the channels are interpolated linearly and the result is
// opaque; before the first key the gradient is transparent; after the last
// key it holds the last key's color. The palette is rebuilt in full after
// every mutation, so it always reflects the current keys.
//
// SparseGradient is not safe for concurrent use.
type SparseGradient struct {
	keys      []ColorKey
	palette   []Color
	inverted  bool
	msgs      MessageProvider
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(Property)
}

// NewSparseGradient creates a gradient with no keys and a palette of
// paletteSize transparent entries. It fails with ErrOutOfRange if
// paletteSize <= 1.
func NewSparseGradient(paletteSize int, opts ...Option) (*SparseGradient, error) {
	o := applyOptions(opts)
	if paletteSize <= 1 {
		return nil, newError(o.msgs, ErrOutOfRange, "NewSparseGradient", paletteSize)
	}
	g := &SparseGradient{
		palette:  make([]Color, paletteSize),
		inverted: o.inverted,
		msgs:     o.msgs,
	}
	g.rebuild()
	return g, nil
}

// Len returns the number of keys.
func (g *SparseGradient) Len() int { return len(g.keys) }

// Key returns the i-th key in position order.
func (g *SparseGradient) Key(i int) (ColorKey, error) {
	if i < 0 || i >= len(g.keys) {
		return ColorKey{}, newError(g.msgs, ErrOutOfRange, "SparseGradient.Key", i)
	}
	return g.keys[i], nil
}

// Keys returns a copy of the keys in position order.
func (g *SparseGradient) Keys() []ColorKey {
	return slices.Clone(g.keys)
}

// IndexOf returns the index of the first key equal to key, or -1.
func (g *SparseGradient) IndexOf(key ColorKey) int {
	return slices.Index(g.keys, key)
}

// Contains reports whether a key equal to key is present.
func (g *SparseGradient) Contains(key ColorKey) bool {
	return g.IndexOf(key) >= 0
}

// Add appends key and rebuilds the palette.
func (g *SparseGradient) Add(key ColorKey) {
	g.keys = append(g.keys, key)
	g.rebuild()
}

// AddColor adds a key built from position and c.
// It fails with ErrOutOfRange if position is outside [0,1].
func (g *SparseGradient) AddColor(position float64, c Color) error {
	k, err := NewColorKey(position, c)
	if err != nil {
		return err
	}
	g.Add(k)
	return nil
}

// Insert inserts key at index i, 0 <= i <= Len(), and rebuilds the palette.
// Keys are re-sorted by position afterwards; i only decides the order among
// keys sharing a position.
func (g *SparseGradient) Insert(i int, key ColorKey) error {
	if i < 0 || i > len(g.keys) {
		return newError(g.msgs, ErrOutOfRange, "SparseGradient.Insert", i)
	}
	g.keys = slices.Insert(g.keys, i, key)
	g.rebuild()
	return nil
}

// RemoveAt removes the i-th key and rebuilds the palette.
func (g *SparseGradient) RemoveAt(i int) error {
	if i < 0 || i >= len(g.keys) {
		return newError(g.msgs, ErrOutOfRange, "SparseGradient.RemoveAt", i)
	}
	g.keys = slices.Delete(g.keys, i, i+1)
	g.rebuild()
	return nil
}

// Remove removes the first key equal to key. It reports whether a key was
// removed; the palette is rebuilt only in that case.
func (g *SparseGradient) Remove(key ColorKey) bool {
	i := g.IndexOf(key)
	if i < 0 {
		return false
	}
	g.keys = slices.Delete(g.keys, i, i+1)
	g.rebuild()
	return true
}

// Replace overwrites the i-th key and rebuilds the palette.
func (g *SparseGradient) Replace(i int, key ColorKey) error {
	if i < 0 || i >= len(g.keys) {
		return newError(g.msgs, ErrOutOfRange, "SparseGradient.Replace", i)
	}
	g.keys[i] = key
	g.rebuild()
	return nil
}

// SetKeys replaces all keys at once and rebuilds the palette a single time.
func (g *SparseGradient) SetKeys(keys []ColorKey) {
	g.keys = slices.Clone(keys)
	g.rebuild()
}

// Clear removes every key. The palette becomes fully transparent.
func (g *SparseGradient) Clear() {
	g.keys = g.keys[:0]
	g.rebuild()
}

// PaletteSize returns the number of palette entries.
func (g *SparseGradient) PaletteSize() int { return len(g.palette) }

// SetPaletteSize resizes the palette to n entries and rebuilds it.
// It fails with ErrOutOfRange if n <= 1.
func (g *SparseGradient) SetPaletteSize(n int) error {
	if n <= 1 {
		return newError(g.msgs, ErrOutOfRange, "SparseGradient.SetPaletteSize", n)
	}
	changed := n != len(g.palette)
	g.palette = make([]Color, n)
	g.rebuild()
	if changed {
		g.notify(PropertyPaletteSize)
	}
	return nil
}

// Inverted reports whether the palette is stored end to start.
func (g *SparseGradient) Inverted() bool { return g.inverted }

// SetInverted sets the inversion flag. When the value changes the palette is
// rebuilt and observers receive PropertyInverted.
func (g *SparseGradient) SetInverted(inverted bool) {
	if g.inverted == inverted {
		return
	}
	g.inverted = inverted
	g.rebuild()
	g.notify(PropertyInverted)
}

// QueryPalette returns the cached palette entry nearest to scale, i.e.
// entry round(scale*(PaletteSize-1)), counted from the end when inverse is
// set. It fails with ErrOutOfRange if scale is outside [0,1].
func (g *SparseGradient) QueryPalette(scale float64, inverse bool) (Color, error) {
	if !icolor.InUnitRange(scale) {
		return Transparent, newError(g.msgs, ErrOutOfRange, "SparseGradient.QueryPalette", scale)
	}
	last := len(g.palette) - 1
	index := int(math.Round(scale * float64(last)))
	if inverse {
		return g.palette[last-index], nil
	}
	return g.palette[index], nil
}

// ColorAt evaluates the gradient at position without going through the
// palette. The inversion flag applies.
func (g *SparseGradient) ColorAt(position float64) (Color, error) {
	if !icolor.InUnitRange(position) {
		return Transparent, newError(g.msgs, ErrOutOfRange, "SparseGradient.ColorAt", position)
	}
	if g.inverted {
		position = 1 - position
	}
	return computeColor(g.keys, position), nil
}

// Palette returns a read-only view of the cached palette.
func (g *SparseGradient) Palette() PaletteView {
	return PaletteView{g: g}
}

// Subscribe registers fn to be called synchronously, in registration order,
// after an observable property changes. The returned function unregisters it.
// A nil fn is not registered and yields a no-op unsubscribe.
func (g *SparseGradient) Subscribe(fn func(Property)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	g.nextID++
	id := g.nextID
	g.observers = append(g.observers, observer{id: id, fn: fn})
	return func() {
		g.observers = slices.DeleteFunc(g.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

func (g *SparseGradient) notify(p Property) {
	// Observers may unsubscribe while being notified.
	for _, o := range slices.Clone(g.observers) {
		o.fn(p)
	}
}

// rebuild sorts the keys and recomputes every palette entry.
func (g *SparseGradient) rebuild() {
	slices.SortStableFunc(g.keys, CompareKeys)

	last := len(g.palette) - 1
	for i := range g.palette {
		step := i
		if g.inverted {
			step = last - i
		}
		g.palette[i] = computeColor(g.keys, float64(step)/float64(last))
	}

	Logger().Debug("colormap: palette rebuilt",
		"size", len(g.palette), "keys", len(g.keys), "inverted", g.inverted)
	g.notify(PropertyPalette)
}

// computeColor evaluates the gradient defined by sorted keys at position.
func computeColor(keys []ColorKey, position float64) Color {
	if len(keys) == 0 {
		return Transparent
	}

	// First key at or after position.
	idx := sort.Search(len(keys), func(i int) bool {
		return keys[i].position >= position
	})

	if idx < len(keys) && keys[idx].position == position {
		return keys[idx].color
	}
	if idx == 0 {
		// Before every key.
		return Transparent
	}
	start := keys[idx-1]
	if idx == len(keys) {
		// After every key.
		return start.color
	}
	end := keys[idx]

	t := (position - start.position) / (end.position - start.position)
	return lerpColor(start.color, end.color, t)
}
