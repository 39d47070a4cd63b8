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

// GriddedParams configures a gridded-region source.
type GriddedParams struct {
	Region    *geo.GriddedRegion
	MFD       magfreq.Supplier
	Mechanism magfreq.FocalMechanism
	// Depth of every rupture in km.
	Depth float64
}

type rateBin struct {
	mag, rate float64
}

// GriddedRegion divides one distribution evenly over the nodes of a region
// and emits a point rupture per node and retained bin. Ruptures are created
// on access, node-major.
type GriddedRegion struct {
	base
	p     GriddedParams
	nodes []geo.Location
	bins  []rateBin
}

var _ Source = (*GriddedRegion)(nil)

// NewGriddedRegion builds a Poissonian gridded-region source.
//
// Complexity: O(N + M).
func NewGriddedRegion(p GriddedParams, opts ...Option) (*GriddedRegion, error) {
	if p.Region == nil || p.MFD == nil {
		return nil, ErrNilInput
	}
	o := gatherOptions("Gridded Region Source", opts)
	g := &GriddedRegion{base: newBase(o, true), p: p, nodes: p.Region.Nodes()}
	g.SetMinMag(o.minMag)
	return g, nil
}

// SetMinMag re-selects the bins whose per-node rate is positive and whose
// magnitude is at or above m.
// Complexity: O(M).
func (g *GriddedRegion) SetMinMag(m float64) {
	g.minMag = m
	g.bins = g.bins[:0]
	n := float64(len(g.nodes))
	for i := 0; i < g.p.MFD.Len(); i++ {
		mag, rate := g.p.MFD.Mag(i), g.p.MFD.Rate(i)/n
		if rate > 0 && mag >= m {
			g.bins = append(g.bins, rateBin{mag: mag, rate: rate})
		}
	}
	g.log.Debug("gridded bins selected",
		slog.Int("bins", len(g.bins)),
		slog.Int("nodes", len(g.nodes)),
		slog.Float64("min_mag", m))
}

// NumRuptures implements Source.
func (g *GriddedRegion) NumRuptures() int { return len(g.bins) * len(g.nodes) }

// Rupture implements Source. Index i maps to node i/bins and bin i%bins.
func (g *GriddedRegion) Rupture(i int) (*rupture.Rupture, error) {
	if n := g.NumRuptures(); i < 0 || i >= n {
		return nil, fmt.Errorf("%w: %d of %d", ErrRuptureIndex, i, n)
	}
	b := g.bins[i%len(g.bins)]
	loc := g.nodes[i/len(g.bins)]
	loc.Depth = g.p.Depth
	hypo := loc
	return &rupture.Rupture{
		Mag:        b.mag,
		Rake:       g.p.Mechanism.Rake,
		Prob:       rupture.PoissonProb(b.rate, g.duration),
		Surface:    &surface.Point{Loc: loc, Dip: g.p.Mechanism.Dip, Strike: g.p.Mechanism.Strike},
		Hypocenter: &hypo,
	}, nil
}

// MinDistance implements Source.
func (g *GriddedRegion) MinDistance(site geo.Location) float64 {
	return minNodeDistance(g.nodes, site)
}

// SetDuration implements Source.
func (g *GriddedRegion) SetDuration(d float64) error {
	if err := g.checkDuration(d); err != nil {
		return err
	}
	g.duration = d
	return nil
}
