// SPDX-License-Identifier: MIT

package source

import (
	"log/slog"

	"github.com/katalvlaran/rupcast/discretized"
	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/magfreq"
	"github.com/katalvlaran/rupcast/rupture"
	"github.com/katalvlaran/rupcast/surface"
)

// DepthParams maps magnitude to rupture-top depth in km.
type DepthParams struct {
	// TopVsMag holds depth as a function of magnitude. The depth of a
	// magnitude is the Y at the closest X. Nil means DefaultDepth everywhere.
	TopVsMag *discretized.Func
	// DefaultDepth applies below the table's smallest magnitude.
	DefaultDepth float64
}

// DepthFor returns the rupture-top depth for mag.
// Complexity: O(log n).
func (d DepthParams) DepthFor(mag float64) float64 {
	if d.TopVsMag == nil || mag < d.TopVsMag.MinX() {
		return d.DefaultDepth
	}
	return d.TopVsMag.ClosestY(mag)
}

// maxDepth returns the deepest depth DepthFor can return.
func (d DepthParams) maxDepth() float64 {
	deepest := d.DefaultDepth
	if d.TopVsMag != nil {
		for i := 0; i < d.TopVsMag.Len(); i++ {
			if y := d.TopVsMag.Y(i); y > deepest {
				deepest = y
			}
		}
	}
	return deepest
}

// generated holds ruptures with the annual rates behind their probabilities.
type generated struct {
	ruptureList
	rates []float64
}

func (g *generated) add(r *rupture.Rupture, rate float64) {
	g.ruptures = append(g.ruptures, r)
	g.rates = append(g.rates, rate)
}

// setProbs recomputes every probability from its rate for duration d.
func (g *generated) setProbs(d float64) {
	for i, r := range g.ruptures {
		r.Prob = rupture.PoissonProb(g.rates[i], d)
	}
}

// pointRuptures appends one point rupture per mechanism and bin with positive
// rate and magnitude at or above minMag. Rates are multiplied by weight.
func pointRuptures(out *generated, loc geo.Location, dists []magfreq.MechanismDist, depth DepthParams, weight, minMag float64) {
	for _, md := range dists {
		for i := 0; i < md.MFD.Len(); i++ {
			mag, rate := md.MFD.Mag(i), md.MFD.Rate(i)
			if !(rate > 0) || mag < minMag {
				continue
			}
			at := loc
			at.Depth = depth.DepthFor(mag)
			hypo := at
			out.add(&rupture.Rupture{
				Mag:        mag,
				Rake:       md.Mechanism.Rake,
				Surface:    &surface.Point{Loc: at, Dip: md.Mechanism.Dip, Strike: md.Mechanism.Strike},
				Hypocenter: &hypo,
			}, weight*rate)
		}
	}
}

func checkDists(dists []magfreq.MechanismDist) error {
	if len(dists) == 0 {
		return ErrNilInput
	}
	for _, md := range dists {
		if md.MFD == nil {
			return ErrNilInput
		}
	}
	return nil
}

// Point emits point ruptures at one location, one per focal mechanism and
// magnitude bin.
type Point struct {
	base
	generated
	loc geo.Location
}

var _ Source = (*Point)(nil)

// NewPoint builds a Poissonian point source from dist.
//
// Complexity: O(K·M) for K mechanisms of M bins.
func NewPoint(dist magfreq.PointDist, depth DepthParams, opts ...Option) (*Point, error) {
	if err := checkDists(dist.Dists); err != nil {
		return nil, err
	}
	o := gatherOptions("Point Source", opts)
	p := &Point{base: newBase(o, true), loc: dist.Location}
	pointRuptures(&p.generated, dist.Location, dist.Dists, depth, 1, p.minMag)
	p.setProbs(p.duration)
	p.log.Debug("point ruptures generated", slog.Int("ruptures", len(p.ruptures)))
	return p, nil
}

// MinDistance implements Source.
func (p *Point) MinDistance(site geo.Location) float64 {
	return geo.HorzDistance(p.loc, site)
}

// SetDuration implements Source.
func (p *Point) SetDuration(d float64) error {
	if err := p.checkDuration(d); err != nil {
		return err
	}
	p.setProbs(d)
	p.duration = d
	return nil
}
