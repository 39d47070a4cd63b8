// SPDX-License-Identifier: MIT

package source

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/magfreq"
	"github.com/katalvlaran/rupcast/rupture"
)

// AreaMode selects the rupture type emitted at each node of an area source.
type AreaMode int

const (
	// AreaPoint emits point ruptures.
	AreaPoint AreaMode = iota
	// AreaLine emits line ruptures; Line configures strikes and lengths.
	AreaLine
)

// String implements fmt.Stringer.
func (m AreaMode) String() string {
	switch m {
	case AreaPoint:
		return "point"
	case AreaLine:
		return "line"
	default:
		return fmt.Sprintf("AreaMode(%d)", int(m))
	}
}

// AreaParams configures an area source.
type AreaParams struct {
	Region *geo.GriddedRegion
	Dists  []magfreq.MechanismDist
	Depth  DepthParams
	Mode   AreaMode
	// Line applies when Mode is AreaLine.
	Line LineParams
}

// Area spreads point or line ruptures over the nodes of a gridded region.
// Node i receives the fraction w_i = cos(lat_i)/Σcos(lat) of every rate.
type Area struct {
	base
	p   AreaParams
	src rand.Source

	once sync.Once
	gen  generated
	err  error
}

var _ Source = (*Area)(nil)

// NewArea validates the configuration and returns a lazily built area source.
//
// Complexity: O(K) here; O(N·K·M·S) on first access for N nodes.
func NewArea(p AreaParams, opts ...Option) (*Area, error) {
	if p.Region == nil {
		return nil, ErrNilInput
	}
	if err := checkDists(p.Dists); err != nil {
		return nil, err
	}
	switch p.Mode {
	case AreaPoint:
	case AreaLine:
		if err := p.Line.validate(p.Dists, p.Depth); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("source: unknown area mode %s", p.Mode)
	}
	o := gatherOptions("Area Source", opts)
	return &Area{base: newBase(o, true), p: p, src: o.src}, nil
}

// expected returns the rupture count implied by the bins, strikes and nodes.
func (a *Area) expected() int {
	perNode := 0
	for _, md := range a.p.Dists {
		for i := 0; i < md.MFD.Len(); i++ {
			if md.MFD.Rate(i) > 0 && md.MFD.Mag(i) >= a.minMag {
				perNode++
			}
		}
	}
	if a.p.Mode == AreaLine {
		perNode *= a.p.Line.Strike.perBin()
	}
	return perNode * a.p.Region.NumNodes()
}

func (a *Area) build() {
	a.once.Do(func() {
		if a.err = a.generate(); a.err != nil {
			a.gen = generated{}
		}
		a.gen.setProbs(a.duration)
	})
}

func (a *Area) generate() error {
	weights := a.p.Region.AreaWeights()
	strikes := newStrikeSampler(a.p.Line.Strike, a.src)
	for i, node := range a.p.Region.Nodes() {
		if a.p.Mode == AreaLine {
			if err := lineRuptures(&a.gen, node, a.p.Dists, a.p.Depth, &a.p.Line, strikes, weights[i], a.minMag); err != nil {
				return err
			}
			continue
		}
		pointRuptures(&a.gen, node, a.p.Dists, a.p.Depth, weights[i], a.minMag)
	}
	if n, want := len(a.gen.ruptures), a.expected(); n != want {
		return fmt.Errorf("%w: got %d, want %d", ErrInconsistentCount, n, want)
	}
	a.log.Debug("area ruptures generated",
		slog.Int("ruptures", len(a.gen.ruptures)),
		slog.Int("nodes", a.p.Region.NumNodes()),
		slog.String("mode", a.p.Mode.String()))
	return nil
}

// Err returns the error of the deferred build, if any.
func (a *Area) Err() error {
	a.build()
	return a.err
}

// NumRuptures implements Source.
func (a *Area) NumRuptures() int {
	a.build()
	return a.gen.NumRuptures()
}

// Rupture implements Source.
func (a *Area) Rupture(i int) (*rupture.Rupture, error) {
	a.build()
	if a.err != nil {
		return nil, a.err
	}
	return a.gen.Rupture(i)
}

// MinDistance implements Source. The distance is measured to the nearest node.
func (a *Area) MinDistance(site geo.Location) float64 {
	return minNodeDistance(a.p.Region.Nodes(), site)
}

// SetDuration implements Source.
func (a *Area) SetDuration(d float64) error {
	if err := a.checkDuration(d); err != nil {
		return err
	}
	a.build()
	a.gen.setProbs(d)
	a.duration = d
	return nil
}

func minNodeDistance(nodes []geo.Location, site geo.Location) float64 {
	best := math.Inf(1)
	for _, n := range nodes {
		if d := geo.HorzDistance(n, site); d < best {
			best = d
		}
	}
	return best
}
