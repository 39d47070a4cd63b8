// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"github.com/katalvlaran/rupcast/geo"
)

// Subset is a rectangular window onto a Gridded surface. It shares the
// parent's locations and never copies them.
type Subset struct {
	parent     *Gridded
	row0, col0 int
	rows, cols int
}

var _ Surface = (*Subset)(nil)

// NumRows returns the number of rows of the view.
func (s *Subset) NumRows() int { return s.rows }

// NumCols returns the number of columns of the view.
func (s *Subset) NumCols() int { return s.cols }

// At returns the parent location at (StartRow+row, StartCol+col).
func (s *Subset) At(row, col int) geo.Location {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		panic("surface: subset index out of range")
	}
	return s.parent.At(s.row0+row, s.col0+col)
}

// Length returns the along-strike extent in km.
func (s *Subset) Length() float64 { return float64(s.cols-1) * s.parent.strikeSpacing }

// Width returns the down-dip extent in km.
func (s *Subset) Width() float64 { return float64(s.rows-1) * s.parent.dipSpacing }

// AveDip returns the parent's dip.
func (s *Subset) AveDip() float64 { return s.parent.dip }

// AveStrike returns the parent's strike.
func (s *Subset) AveStrike() float64 { return s.parent.strike }

// Parent returns the surface this subset views.
func (s *Subset) Parent() *Gridded { return s.parent }

// StartRow returns the parent row of the subset's top edge.
func (s *Subset) StartRow() int { return s.row0 }

// StartCol returns the parent column of the subset's first column.
func (s *Subset) StartCol() int { return s.col0 }

// placement holds the grid dimensions of one subset request.
type placement struct {
	cols, rows       int
	offCols, offRows int
	nAlong, nDown    int
}

func clampPts(n, hi int) int {
	if n < 1 {
		return 1
	}
	if n > hi {
		return hi
	}
	return n
}

// toPts converts a distance to a point count. NaN and negative inputs map to
// 0 so that callers clamp them.
func toPts(dist, spacing float64) int {
	v := math.RoundToEven(dist / spacing)
	if !(v > 0) {
		return 0
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

func (g *Gridded) placement(length, width, offset float64) placement {
	p := placement{
		cols:    clampPts(toPts(length, g.strikeSpacing)+1, g.cols),
		rows:    clampPts(toPts(width, g.dipSpacing)+1, g.rows),
		offCols: clampPts(toPts(offset, g.strikeSpacing), math.MaxInt32),
		offRows: clampPts(toPts(offset, g.dipSpacing), math.MaxInt32),
	}
	p.nAlong = (g.cols-p.cols)/p.offCols + 1
	p.nDown = (g.rows-p.rows)/p.offRows + 1
	return p
}

// NumSubsets returns the number of length×width subsets placed every offset
// km along strike and down dip.
// Complexity: O(1).
func (g *Gridded) NumSubsets(length, width, offset float64) int {
	p := g.placement(length, width, offset)
	return p.nAlong * p.nDown
}

// Subset returns the n-th subset of NumSubsets(length, width, offset).
// Subsets advance along strike first, then down dip.
func (g *Gridded) Subset(length, width, offset float64, n int) (*Subset, error) {
	p := g.placement(length, width, offset)
	if n < 0 || n >= p.nAlong*p.nDown {
		return nil, ErrSubsetIndex
	}
	return &Subset{
		parent: g,
		row0:   (n / p.nAlong) * p.offRows,
		col0:   (n % p.nAlong) * p.offCols,
		rows:   p.rows,
		cols:   p.cols,
	}, nil
}

// NumSubsetsAlongLength returns the number of subsets placed every offset km
// along strike only.
// Complexity: O(1).
func (g *Gridded) NumSubsetsAlongLength(length, offset float64) int {
	return g.placement(length, 0, offset).nAlong
}

// SubsetCenteredDownDip returns the n-th along-strike subset of
// NumSubsetsAlongLength(length, offset), positioned in the middle of the
// down-dip extent.
func (g *Gridded) SubsetCenteredDownDip(length, width, offset float64, n int) (*Subset, error) {
	p := g.placement(length, width, offset)
	if n < 0 || n >= p.nAlong {
		return nil, ErrSubsetIndex
	}
	return &Subset{
		parent: g,
		row0:   (g.rows - p.rows) / 2,
		col0:   n * p.offCols,
		rows:   p.rows,
		cols:   p.cols,
	}, nil
}
