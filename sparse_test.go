package colormap

import (
	"errors"
	"slices"
	"testing"
)

func newSparse(t *testing.T, size int, opts ...Option) *SparseGradient {
	t.Helper()
	g, err := NewSparseGradient(size, opts...)
	if err != nil {
		t.Fatalf("NewSparseGradient(%d): %v", size, err)
	}
	return g
}

func TestNewSparseGradient_Size(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := NewSparseGradient(n); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("NewSparseGradient(%d) error = %v, want ErrOutOfRange", n, err)
		}
	}
	g := newSparse(t, 2)
	if g.PaletteSize() != 2 {
		t.Errorf("PaletteSize() = %d, want 2", g.PaletteSize())
	}
}

func TestSparseGradient_NoKeysIsTransparent(t *testing.T) {
	g := newSparse(t, 16)
	for i, c := range g.Palette().All {
		if c != Transparent {
			t.Errorf("palette[%d] = %v, want transparent", i, c)
		}
	}
	for _, s := range []float64{0, 0.3, 1} {
		c, err := g.QueryPalette(s, false)
		if err != nil || c != Transparent {
			t.Errorf("QueryPalette(%v) = %v, %v", s, c, err)
		}
	}
}

func TestSparseGradient_SingleKey(t *testing.T) {
	c := RGB8(10, 20, 30)
	g := newSparse(t, 11)
	g.Add(mustKey(t, 0.5, c))

	p := g.Palette()
	for i := 0; i < p.Len(); i++ {
		want := Transparent
		if i >= 5 {
			want = c
		}
		if p.At(i) != want {
			t.Errorf("palette[%d] = %v, want %v", i, p.At(i), want)
		}
	}
}

func TestSparseGradient_BlackToWhite(t *testing.T) {
	g := newSparse(t, 11)
	g.Add(mustKey(t, 1, White))
	g.Add(mustKey(t, 0, Black))

	p := g.Palette()
	if p.At(0) != Black {
		t.Errorf("palette[0] = %v, want black", p.At(0))
	}
	if p.At(10) != White {
		t.Errorf("palette[10] = %v, want white", p.At(10))
	}
	mid := p.At(5)
	if mid.A != 255 || mid.R < 127 || mid.R > 128 || mid.R != mid.G || mid.G != mid.B {
		t.Errorf("palette[5] = %v, want opaque mid gray", mid)
	}

	got, err := g.QueryPalette(0.5, false)
	if err != nil || got != mid {
		t.Errorf("QueryPalette(0.5) = %v, %v; want %v", got, err, mid)
	}
	got, _ = g.QueryPalette(0.1, true)
	if got != p.At(9) {
		t.Errorf("QueryPalette(0.1, inverse) = %v, want palette[9] %v", got, p.At(9))
	}
}

func TestSparseGradient_AfterLastKeyKeepsAlpha(t *testing.T) {
	g := newSparse(t, 5)
	half := ARGB(128, 0, 0, 255)
	g.Add(mustKey(t, 0, Red))
	g.Add(mustKey(t, 0.5, half))

	p := g.Palette()
	if p.At(2) != half || p.At(3) != half || p.At(4) != half {
		t.Errorf("entries after last key = %v", p.Colors()[2:])
	}
	// Interpolated entries are forced opaque.
	if p.At(1).A != 255 {
		t.Errorf("palette[1] alpha = %d, want 255", p.At(1).A)
	}
}

func TestSparseGradient_TightestSegment(t *testing.T) {
	g := newSparse(t, 5)
	g.SetKeys([]ColorKey{
		mustKey(t, 1, White),
		mustKey(t, 0, Black),
		mustKey(t, 0.5, Red),
	})
	// Position 0.25 lies between black and red, not black and white.
	got := g.Palette().At(1)
	if got != RGB8(128, 0, 0) {
		t.Errorf("palette[1] = %v, want half red", got)
	}
	if keys := g.Keys(); !slices.IsSortedFunc(keys, CompareKeys) {
		t.Errorf("keys not sorted: %v", keys)
	}
}

func TestSparseGradient_DuplicatePositions(t *testing.T) {
	g := newSparse(t, 3)
	g.Add(mustKey(t, 0.5, Red))
	g.Add(mustKey(t, 0.5, Blue))
	g.Add(mustKey(t, 1, Green))

	p := g.Palette()
	// The exact match picks the first key at that position.
	if p.At(1) != Red {
		t.Errorf("palette[1] = %v, want red", p.At(1))
	}
	if p.At(2) != Green {
		t.Errorf("palette[2] = %v, want green", p.At(2))
	}
}

func TestSparseGradient_SetPaletteSize(t *testing.T) {
	g := newSparse(t, 4)
	g.Add(mustKey(t, 0, Black))
	g.Add(mustKey(t, 1, White))

	if err := g.SetPaletteSize(1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("SetPaletteSize(1) error = %v, want ErrOutOfRange", err)
	}
	if g.PaletteSize() != 4 {
		t.Errorf("PaletteSize() = %d after failed resize, want 4", g.PaletteSize())
	}

	if err := g.SetPaletteSize(9); err != nil {
		t.Fatal(err)
	}
	first := g.Palette().Colors()
	if err := g.SetPaletteSize(9); err != nil {
		t.Fatal(err)
	}
	second := g.Palette().Colors()
	if len(first) != 9 || !slices.Equal(first, second) {
		t.Errorf("SetPaletteSize is not idempotent: %v vs %v", first, second)
	}
}

func TestSparseGradient_InsertRemoveRoundTrip(t *testing.T) {
	g := newSparse(t, 32)
	g.Add(mustKey(t, 0, Red))
	g.Add(mustKey(t, 1, Blue))
	before := g.Palette().Colors()

	k := mustKey(t, 0.3, Green)
	if err := g.Insert(1, k); err != nil {
		t.Fatal(err)
	}
	if slices.Equal(before, g.Palette().Colors()) {
		t.Fatal("insert did not change the palette")
	}
	if !g.Remove(k) {
		t.Fatal("Remove reported the key missing")
	}
	if after := g.Palette().Colors(); !slices.Equal(before, after) {
		t.Errorf("palette after insert/remove = %v, want %v", after, before)
	}
	if g.Remove(k) {
		t.Error("second Remove reported success")
	}
}

func TestSparseGradient_IndexErrors(t *testing.T) {
	g := newSparse(t, 4)
	g.Add(mustKey(t, 0.5, Red))
	k := mustKey(t, 0.2, Blue)

	tests := []struct {
		name string
		call func() error
	}{
		{"insert negative", func() error { return g.Insert(-1, k) }},
		{"insert past end", func() error { return g.Insert(2, k) }},
		{"remove past end", func() error { return g.RemoveAt(1) }},
		{"replace negative", func() error { return g.Replace(-1, k) }},
		{"key past end", func() error { _, err := g.Key(1); return err }},
		{"add bad position", func() error { return g.AddColor(1.5, Red) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("error = %v, want ErrOutOfRange", err)
			}
			if g.Len() != 1 {
				t.Errorf("Len() = %d, want 1", g.Len())
			}
		})
	}
}

func TestSparseGradient_ReplaceAndRemoveAt(t *testing.T) {
	g := newSparse(t, 3)
	g.Add(mustKey(t, 0, Black))
	g.Add(mustKey(t, 0.5, White))

	// Replacing the first key with one at the far end re-sorts the keys.
	if err := g.Replace(0, mustKey(t, 1, Red)); err != nil {
		t.Fatal(err)
	}
	if k, _ := g.Key(0); k.Color() != White {
		t.Errorf("Key(0) = %v, want white key", k)
	}
	if got := g.Palette().At(0); got != Transparent {
		t.Errorf("palette[0] = %v, want transparent", got)
	}

	if err := g.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if g.Len() != 1 || !g.Contains(mustKey(t, 1, Red)) {
		t.Errorf("keys = %v", g.Keys())
	}

	g.Clear()
	if g.Len() != 0 || g.Palette().At(2) != Transparent {
		t.Errorf("Clear left keys %v, palette %v", g.Keys(), g.Palette().Colors())
	}
}

func TestSparseGradient_QueryPaletteOutOfRange(t *testing.T) {
	g := newSparse(t, 4)
	for _, s := range []float64{-0.01, 1.01} {
		if _, err := g.QueryPalette(s, false); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("QueryPalette(%v) error = %v, want ErrOutOfRange", s, err)
		}
	}
	if _, err := g.ColorAt(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ColorAt(2) error = %v, want ErrOutOfRange", err)
	}
}

func TestSparseGradient_Inverted(t *testing.T) {
	g := newSparse(t, 7)
	g.Add(mustKey(t, 0.2, Red))
	g.Add(mustKey(t, 0.9, Blue))
	forward := g.Palette().Colors()

	var got []Property
	unsubscribe := g.Subscribe(func(p Property) { got = append(got, p) })

	g.SetInverted(true)
	if !g.Inverted() {
		t.Fatal("Inverted() = false after SetInverted(true)")
	}
	inverted := g.Palette().Colors()
	slices.Reverse(forward)
	if !slices.Equal(inverted, forward) {
		t.Errorf("inverted palette = %v, want reverse %v", inverted, forward)
	}
	if want := []Property{PropertyPalette, PropertyInverted}; !slices.Equal(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}

	// Same value: no rebuild, no notification.
	got = nil
	g.SetInverted(true)
	if len(got) != 0 {
		t.Errorf("notifications for unchanged value = %v", got)
	}

	c, err := g.ColorAt(0.1)
	if err != nil || c != Blue {
		t.Errorf("ColorAt(0.1) inverted = %v, %v; want blue", c, err)
	}

	unsubscribe()
	g.SetInverted(false)
	if len(got) != 0 {
		t.Errorf("notified after unsubscribe: %v", got)
	}
}

func TestSparseGradient_WithInverted(t *testing.T) {
	g := newSparse(t, 3, WithInverted(true))
	g.Add(mustKey(t, 0, Black))
	if g.Palette().At(2) != Black || g.Palette().At(0) != Black {
		t.Errorf("palette = %v", g.Palette().Colors())
	}
	g.SetInverted(false)
	if g.Palette().At(0) != Black {
		t.Errorf("palette = %v", g.Palette().Colors())
	}
}

func TestSparseGradient_Observers(t *testing.T) {
	g := newSparse(t, 4)

	var order []string
	var unsubscribeFirst func()
	unsubscribeFirst = g.Subscribe(func(p Property) {
		order = append(order, "first:"+string(p))
		unsubscribeFirst()
	})
	g.Subscribe(func(p Property) { order = append(order, "second:"+string(p)) })

	if err := g.SetPaletteSize(8); err != nil {
		t.Fatal(err)
	}
	want := []string{"first:Palette", "second:Palette", "second:PaletteSize"}
	if !slices.Equal(order, want) {
		t.Errorf("notifications = %v, want %v", order, want)
	}
}

func TestSparseGradient_SubscribeNil(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SparseGradient) error
	}{
		{"add", func(g *SparseGradient) error { g.Add(mustKey(t, 0.5, Red)); return nil }},
		{"set inverted", func(g *SparseGradient) error { g.SetInverted(true); return nil }},
		{"set palette size", func(g *SparseGradient) error { return g.SetPaletteSize(9) }},
		{"clear", func(g *SparseGradient) error { g.Clear(); return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newSparse(t, 4)
			g.Add(mustKey(t, 0, Black))

			unsubscribe := g.Subscribe(nil)
			var got int
			g.Subscribe(func(Property) { got++ })
			if len(g.observers) != 1 {
				t.Fatalf("observers = %d, want 1", len(g.observers))
			}

			if err := tt.mutate(g); err != nil {
				t.Fatal(err)
			}
			if got == 0 {
				t.Error("registered observer was not notified")
			}
			unsubscribe()
			if len(g.observers) != 1 {
				t.Errorf("nil unsubscribe removed an observer")
			}
		})
	}
}

func TestComputeColor(t *testing.T) {
	keys := []ColorKey{
		mustKey(t, 0.25, RGB8(0, 0, 0)),
		mustKey(t, 0.75, RGB8(200, 100, 0)),
	}
	tests := []struct {
		name string
		pos  float64
		want Color
	}{
		{"before", 0.1, Transparent},
		{"exact first", 0.25, RGB8(0, 0, 0)},
		{"middle", 0.5, RGB8(100, 50, 0)},
		{"exact last", 0.75, RGB8(200, 100, 0)},
		{"after", 1, RGB8(200, 100, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeColor(keys, tt.pos); got != tt.want {
				t.Errorf("computeColor(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
	if got := computeColor(nil, 0.5); got != Transparent {
		t.Errorf("computeColor(no keys) = %v", got)
	}
}
