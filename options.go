package colormap

import (
	"golang.org/x/text/language"

	"github.com/gogpu/colormap/internal/locale"
)

// Option configures a gradient during creation.
// Options that do not apply to a gradient kind are ignored by it.
//
// Example:
//
//	// Any number of samples, German error text
//	g, err := colormap.NewDenseGradient(samples, colormap.WithLanguage(language.German))
//
//	// Sparse gradient that starts inverted
//	s, err := colormap.NewSparseGradient(256, colormap.WithInverted(true))
type Option func(*options)

// options holds optional configuration for gradient creation.
type options struct {
	fixedLength int
	memoLimit   int
	inverted    bool
	msgs        MessageProvider
}

// defaultOptions returns the default gradient options.
func defaultOptions() options {
	return options{
		fixedLength: 0,  // any non-empty length
		memoLimit:   16, // generated palettes kept per dense gradient
		inverted:    false,
		msgs:        locale.Default,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFixedLength makes a dense gradient require exactly n samples.
// Zero accepts any non-empty sequence.
func WithFixedLength(n int) Option {
	return func(o *options) {
		o.fixedLength = n
	}
}

// WithPaletteMemo sets how many generated palettes a dense gradient keeps
// for reuse. Zero or less keeps all of them.
func WithPaletteMemo(limit int) Option {
	return func(o *options) {
		o.memoLimit = limit
	}
}

// WithInverted starts a sparse gradient with its inversion flag set.
func WithInverted(inverted bool) Option {
	return func(o *options) {
		o.inverted = inverted
	}
}

// WithMessages sets the provider of error text.
// Passing nil restores the English default.
func WithMessages(p MessageProvider) Option {
	return func(o *options) {
		if p == nil {
			p = locale.Default
		}
		o.msgs = p
	}
}

// WithLanguage selects the language of error text. Languages without
// translations fall back to English.
func WithLanguage(tag language.Tag) Option {
	return WithMessages(locale.New(tag))
}
