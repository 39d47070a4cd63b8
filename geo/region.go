// SPDX-License-Identifier: MIT

package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Region is a closed polygon on the Earth's surface. The border is implicitly
// closed: the last vertex connects back to the first. Edges are treated as
// straight lines in latitude/longitude space.
type Region struct {
	border                         []Location
	ring                           orb.Ring
	minLat, maxLat, minLon, maxLon float64
}

// NewRegion builds a Region from its border vertices. The slice is copied.
// Returns ErrTooFewVertices if fewer than three vertices are given.
// Complexity: O(V).
func NewRegion(border []Location) (*Region, error) {
	if len(border) < 3 {
		return nil, ErrTooFewVertices
	}
	r := &Region{
		border: append([]Location(nil), border...),
		minLat: math.Inf(1), maxLat: math.Inf(-1),
		minLon: math.Inf(1), maxLon: math.Inf(-1),
	}
	r.ring = make(orb.Ring, 0, len(border)+1)
	for _, v := range border {
		r.ring = append(r.ring, v.point())
		r.minLat = math.Min(r.minLat, v.Lat)
		r.maxLat = math.Max(r.maxLat, v.Lat)
		r.minLon = math.Min(r.minLon, v.Lon)
		r.maxLon = math.Max(r.maxLon, v.Lon)
	}
	if !r.ring[0].Equal(r.ring[len(r.ring)-1]) {
		r.ring = append(r.ring, r.ring[0])
	}
	return r, nil
}

// NewRectangularRegion builds the lat/lon box [minLat,maxLat]×[minLon,maxLon].
// Bounds are swapped if given in reverse order.
func NewRectangularRegion(minLat, maxLat, minLon, maxLon float64) (*Region, error) {
	if minLat > maxLat {
		minLat, maxLat = maxLat, minLat
	}
	if minLon > maxLon {
		minLon, maxLon = maxLon, minLon
	}
	return NewRegion([]Location{
		{Lat: minLat, Lon: minLon},
		{Lat: maxLat, Lon: minLon},
		{Lat: maxLat, Lon: maxLon},
		{Lat: minLat, Lon: maxLon},
	})
}

// Border returns a copy of the border vertices.
func (r *Region) Border() []Location {
	return append([]Location(nil), r.border...)
}

// Bounds returns the bounding box of the border.
func (r *Region) Bounds() (minLat, maxLat, minLon, maxLon float64) {
	return r.minLat, r.maxLat, r.minLon, r.maxLon
}

// Contains reports whether loc lies inside the border. Points on an edge
// or vertex count as inside.
// Complexity: O(V).
func (r *Region) Contains(loc Location) bool {
	return planar.RingContains(r.ring, loc.point())
}
