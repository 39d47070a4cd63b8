// SPDX-License-Identifier: MIT

package source

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/magfreq"
	"github.com/katalvlaran/rupcast/rupture"
	"github.com/katalvlaran/rupcast/surface"
)

// Fault emits ruptures that each break the whole surface.
type Fault struct {
	base
	ruptureList
	surface surface.Surface
}

var _ Source = (*Fault)(nil)

// NewFault builds a Poissonian source with one whole-surface rupture per
// magnitude bin with positive rate and magnitude at or above the minimum.
//
// Complexity: O(M).
func NewFault(mfd magfreq.Supplier, surf surface.Surface, rake float64, opts ...Option) (*Fault, error) {
	if mfd == nil || surf == nil {
		return nil, ErrNilInput
	}
	o := gatherOptions("Fault Source", opts)
	f := &Fault{base: newBase(o, true), surface: surf}
	for i := 0; i < mfd.Len(); i++ {
		mag, rate := mfd.Mag(i), mfd.Rate(i)
		if !(rate > 0) || mag < f.minMag {
			continue
		}
		f.ruptures = append(f.ruptures, &rupture.Rupture{
			Mag:     mag,
			Rake:    rake,
			Prob:    rupture.PoissonProb(rate, o.duration),
			Surface: surf,
		})
	}
	f.log.Debug("fault ruptures generated", slog.Int("ruptures", len(f.ruptures)))
	return f, nil
}

// NewSingleRupture builds a fixed probability source holding exactly one
// rupture on surf. SetDuration is rejected with ErrNotPoissonian.
//
// Complexity: O(1).
func NewSingleRupture(mag, prob, rake float64, surf surface.Surface, opts ...Option) (*Fault, error) {
	if surf == nil {
		return nil, ErrNilInput
	}
	if !(prob > 0 && prob <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrBadProbability, prob)
	}
	o := gatherOptions("Single Rupture Source", opts)
	f := &Fault{base: newBase(o, false), surface: surf}
	f.ruptures = []*rupture.Rupture{{Mag: mag, Rake: rake, Prob: prob, Surface: surf}}
	return f, nil
}

// Surface returns the fault surface.
func (f *Fault) Surface() surface.Surface { return f.surface }

// MinDistance implements Source.
func (f *Fault) MinDistance(site geo.Location) float64 {
	return surface.MinHorzDistance(f.surface, site)
}

// SetDuration implements Source.
func (f *Fault) SetDuration(d float64) error {
	if err := f.checkDuration(d); err != nil {
		return err
	}
	f.rescale(f.duration, d)
	f.duration = d
	return nil
}
