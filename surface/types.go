// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"github.com/katalvlaran/rupcast/geo"
)

// Surface is a rows×cols grid of locations describing a rupture plane.
type Surface interface {
	NumRows() int
	NumCols() int
	// At returns the location at (row, col). It panics when out of range.
	At(row, col int) geo.Location
	// Length is the along-strike extent in km.
	Length() float64
	// Width is the down-dip extent in km.
	Width() float64
	AveDip() float64
	AveStrike() float64
}

// Locations returns all grid locations row-major.
// Complexity: O(rows×cols).
func Locations(s Surface) []geo.Location {
	out := make([]geo.Location, 0, s.NumRows()*s.NumCols())
	for r := 0; r < s.NumRows(); r++ {
		for c := 0; c < s.NumCols(); c++ {
			out = append(out, s.At(r, c))
		}
	}
	return out
}

// MinHorzDistance returns the smallest horizontal distance in km from site to
// any grid location of s.
// Complexity: O(rows×cols).
func MinHorzDistance(s Surface, site geo.Location) float64 {
	best := math.Inf(1)
	for r := 0; r < s.NumRows(); r++ {
		for c := 0; c < s.NumCols(); c++ {
			if d := geo.HorzDistance(site, s.At(r, c)); d < best {
				best = d
			}
		}
	}
	return best
}

// Point is the single-location surface of a point rupture.
type Point struct {
	Loc    geo.Location
	Dip    float64
	Strike float64
}

var _ Surface = (*Point)(nil)

// NumRows returns 1.
func (p *Point) NumRows() int { return 1 }

// NumCols returns 1.
func (p *Point) NumCols() int { return 1 }

// At returns the point location for (0,0).
func (p *Point) At(row, col int) geo.Location {
	if row != 0 || col != 0 {
		panic("surface: point surface index out of range")
	}
	return p.Loc
}

// Length returns 0.
func (p *Point) Length() float64 { return 0 }

// Width returns 0.
func (p *Point) Width() float64 { return 0 }

// AveDip returns the dip of the point rupture's mechanism.
func (p *Point) AveDip() float64 { return p.Dip }

// AveStrike returns the strike of the point rupture's mechanism.
func (p *Point) AveStrike() float64 { return p.Strike }
