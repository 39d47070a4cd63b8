// SPDX-License-Identifier: MIT

package erf

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/rupcast/source"
)

// Forecast holds one source built from Parameters. It is not safe for
// concurrent use.
type Forecast struct {
	params Parameters
	src    source.Source
	dirty  bool
	log    *slog.Logger
}

// New returns a dirty forecast for p. A nil logger uses slog.Default.
func New(p Parameters, log *slog.Logger) *Forecast {
	if log == nil {
		log = slog.Default()
	}
	return &Forecast{params: p, dirty: true, log: log}
}

// Name returns the forecast name.
func (f *Forecast) Name() string { return f.params.Name }

// Parameters returns a copy of the current parameters.
func (f *Forecast) Parameters() Parameters { return f.params }

// IsDirty reports whether parameters changed since the last rebuild.
func (f *Forecast) IsDirty() bool { return f.dirty }

// Update applies fn to the parameters and marks the forecast dirty.
func (f *Forecast) Update(fn func(*Parameters)) {
	fn(&f.params)
	f.dirty = true
}

// SetDuration changes the forecast duration and marks the forecast dirty.
// Fixed-probability kinds return source.ErrNotPoissonian.
func (f *Forecast) SetDuration(d float64) error {
	if !f.params.Poissonian() {
		return fmt.Errorf("%s: %w", f.params.Kind, source.ErrNotPoissonian)
	}
	if !(d > 0) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: %v", source.ErrBadDuration, d)
	}
	f.Update(func(p *Parameters) { p.Duration = d })
	return nil
}

// UpdateForecast rebuilds the source when dirty. On error the forecast
// stays dirty.
func (f *Forecast) UpdateForecast() error {
	if !f.dirty {
		return nil
	}
	start := time.Now()
	src, err := Build(f.params, f.log)
	if err != nil {
		f.src = nil
		return err
	}
	f.src, f.dirty = src, false
	f.log.Info("forecast updated",
		slog.String("name", f.params.Name),
		slog.String("kind", string(f.params.Kind)),
		slog.Int("ruptures", src.NumRuptures()),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

// NumSources returns 1.
func (f *Forecast) NumSources() int { return 1 }

// Source returns the source at index 0.
func (f *Forecast) Source(i int) (source.Source, error) {
	if i != 0 {
		return nil, fmt.Errorf("%w: %d", ErrSourceIndex, i)
	}
	if f.dirty {
		return nil, ErrStale
	}
	return f.src, nil
}

// Sources returns the single source as a list.
func (f *Forecast) Sources() ([]source.Source, error) {
	s, err := f.Source(0)
	if err != nil {
		return nil, err
	}
	return []source.Source{s}, nil
}
