// SPDX-License-Identifier: MIT

package source

import (
	"log/slog"
	"math"
	"math/rand/v2"
)

// Defaults shared by every source constructor.
const (
	// DefaultDuration is the forecast duration in years.
	DefaultDuration = 1.0

	// DefaultMinMag is the smallest magnitude turned into ruptures.
	DefaultMinMag = 5.0

	// DefaultFullRuptureMag disables whole-fault ruptures for realistic magnitudes.
	DefaultFullRuptureMag = 12.0

	// DefaultLineSpacing is the grid spacing in km of point-to-line surfaces.
	DefaultLineSpacing = 1.0

	// minRate is the rate at or below which a floating bin is skipped.
	minRate = 1e-15
)

const (
	panicDurationInvalid = "source: WithDuration: duration must be finite and positive"
	panicMinMagInvalid   = "source: WithMinMag: minimum magnitude must not be NaN"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); user-facing validation returns errors.
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	name     string
	duration float64
	minMag   float64
	src      rand.Source
	log      *slog.Logger
}

// WithName sets the display label of the source.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithDuration sets the forecast duration in years.
// Panics when d is not finite and positive.
func WithDuration(d float64) Option {
	if !(d > 0) || math.IsInf(d, 0) {
		panic(panicDurationInvalid)
	}
	return func(o *options) { o.duration = d }
}

// WithMinMag sets the smallest magnitude turned into ruptures.
// Panics on NaN.
func WithMinMag(m float64) Option {
	if math.IsNaN(m) {
		panic(panicMinMagInvalid)
	}
	return func(o *options) { o.minMag = m }
}

// WithRandSource sets the random source for random strikes. A nil source
// draws from the process-wide generator.
func WithRandSource(src rand.Source) Option {
	return func(o *options) { o.src = src }
}

// WithLogger sets the logger for generation summaries (debug level).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(defaultName string, opts []Option) options {
	o := options{
		name:     defaultName,
		duration: DefaultDuration,
		minMag:   DefaultMinMag,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	o.log = o.log.With(slog.String("source", o.name))
	return o
}
