// Package colormap maps fractional positions in [0,1] to colors and
// materializes those mappings into fixed-length palettes.
//
// # Overview
//
// Two gradient kinds are provided:
//   - [DenseGradient] holds an immutable, evenly spaced array of sRGB samples
//     and interpolates directly between neighboring samples.
//   - [SparseGradient] holds a mutable set of [ColorKey] values at arbitrary
//     positions and keeps a cached palette that is rebuilt after every change.
//
// # Quick Start
//
//	import "github.com/gogpu/colormap"
//
//	g, _ := colormap.NewSparseGradient(11)
//	black, _ := colormap.NewColorKey(0, colormap.Black)
//	white, _ := colormap.NewColorKey(1, colormap.White)
//	g.Add(black)
//	g.Add(white)
//
//	mid, _ := g.QueryPalette(0.5, false) // mid gray
//
// # Sampling Conventions
//
// The two gradient kinds sample their palettes differently, and both are kept:
//   - SparseGradient entry i of n sits at position i/(n-1), so the last entry
//     is exactly position 1.
//   - DenseGradient.Palette(count) samples position i/count, so the last entry
//     never reaches position 1. PaletteInverse(count) samples 1-i/count, so
//     its first entry is the last sample.
//
// # Errors
//
// Invalid arguments are rejected eagerly with an [*Error] that wraps one of
// the sentinel errors ([ErrNullOrMissingInput], [ErrInvalidLength],
// [ErrOutOfRange], ...). The error text is localized through
// golang.org/x/text; see [WithLanguage].
//
// # Concurrency
//
// DenseGradient is immutable and safe for concurrent reads. SparseGradient is
// not synchronized: a single goroutine must own all mutations.
package colormap

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
