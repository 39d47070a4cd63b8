// SPDX-License-Identifier: MIT

package source

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/rupture"
)

// Source is an indexable collection of probabilistic ruptures.
type Source interface {
	// Name returns the display label.
	Name() string
	// NumRuptures returns the number of ruptures.
	NumRuptures() int
	// Rupture returns the i-th rupture or ErrRuptureIndex.
	Rupture(i int) (*rupture.Rupture, error)
	// MinDistance returns the smallest horizontal distance in km from site
	// to the source geometry.
	MinDistance(site geo.Location) float64
	// IsPoissonian reports whether probabilities derive from rates.
	IsPoissonian() bool
	// Duration returns the forecast duration in years.
	Duration() float64
	// SetDuration rescales every probability to a new duration.
	SetDuration(d float64) error
}

// Ruptures returns every rupture of s in index order.
// Complexity: O(NumRuptures).
func Ruptures(s Source) ([]*rupture.Rupture, error) {
	n := s.NumRuptures()
	out := make([]*rupture.Rupture, 0, n)
	for i := 0; i < n; i++ {
		r, err := s.Rupture(i)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// TotalProb returns the probability that at least one rupture of s occurs,
// 1 - Π(1 - p_i), treating ruptures as independent.
// Complexity: O(NumRuptures).
func TotalProb(s Source) (float64, error) {
	logNone := 0.0
	for i := 0; i < s.NumRuptures(); i++ {
		r, err := s.Rupture(i)
		if err != nil {
			return 0, err
		}
		logNone += math.Log1p(-r.Prob)
	}
	return -math.Expm1(logNone), nil
}

// base carries the state shared by every source kind.
type base struct {
	name       string
	duration   float64
	minMag     float64
	poissonian bool
	log        *slog.Logger
}

func newBase(o options, poissonian bool) base {
	return base{
		name:       o.name,
		duration:   o.duration,
		minMag:     o.minMag,
		poissonian: poissonian,
		log:        o.log,
	}
}

// Name implements Source.
func (b *base) Name() string { return b.name }

// IsPoissonian implements Source.
func (b *base) IsPoissonian() bool { return b.poissonian }

// Duration implements Source.
func (b *base) Duration() float64 { return b.duration }

// MinMag returns the smallest magnitude turned into ruptures.
func (b *base) MinMag() float64 { return b.minMag }

// checkDuration validates a new duration for SetDuration.
func (b *base) checkDuration(d float64) error {
	if !b.poissonian {
		return ErrNotPoissonian
	}
	if !(d > 0) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: %v", ErrBadDuration, d)
	}
	return nil
}

// ruptureList is an eagerly materialised rupture sequence.
type ruptureList struct {
	ruptures []*rupture.Rupture
}

// NumRuptures implements Source.
func (l *ruptureList) NumRuptures() int { return len(l.ruptures) }

// Rupture implements Source.
func (l *ruptureList) Rupture(i int) (*rupture.Rupture, error) {
	if i < 0 || i >= len(l.ruptures) {
		return nil, fmt.Errorf("%w: %d of %d", ErrRuptureIndex, i, len(l.ruptures))
	}
	return l.ruptures[i], nil
}

// rescale converts every probability from one duration to another.
func (l *ruptureList) rescale(from, to float64) {
	for _, r := range l.ruptures {
		r.Prob = rupture.RescaleProb(r.Prob, from, to)
	}
}
