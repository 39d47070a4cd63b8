// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"github.com/katalvlaran/rupcast/geo"
)

// Gridded is an evenly gridded fault surface. It is immutable once built.
// Locations are stored row-major; NumRows runs down dip, NumCols along strike.
type Gridded struct {
	rows, cols int
	locs       []geo.Location

	strikeSpacing float64
	dipSpacing    float64
	dip           float64
	strike        float64
	upperDepth    float64
	lowerDepth    float64
}

var _ Surface = (*Gridded)(nil)

// NewSimpleFault grids the plane below trace dipping at dip degrees to the
// right of the trace direction, between upperDepth and lowerDepth (km).
// The trace is resampled to evenly spaced columns close to spacing km, and
// the down-dip width (lower-upper)/sin(dip) to evenly spaced rows.
// Trace points shallower or deeper than upperDepth are projected along dip.
// Complexity: O(rows×cols + len(trace)).
func NewSimpleFault(trace []geo.Location, dip, upperDepth, lowerDepth, spacing float64) (*Gridded, error) {
	if err := validateSimpleFault(trace, dip, upperDepth, lowerDepth, spacing); err != nil {
		return nil, err
	}

	cum, total := traceLengths(trace)
	if total <= 0 {
		return nil, ErrShortTrace
	}
	cols := int(math.Round(total/spacing)) + 1
	if cols < 2 {
		cols = 2
	}
	strikeSpacing := total / float64(cols-1)

	dipRad := dip * math.Pi / 180
	sinDip, cosDip := math.Sin(dipRad), math.Cos(dipRad)
	width := (lowerDepth - upperDepth) / sinDip
	rows, dipSpacing := 1, spacing
	if width > 0 {
		rows = int(math.Round(width/spacing)) + 1
		if rows < 2 {
			rows = 2
		}
		dipSpacing = width / float64(rows-1)
	}

	strike := geo.Azimuth(trace[0], trace[len(trace)-1])
	dipDir := strike + 90

	g := &Gridded{
		rows:          rows,
		cols:          cols,
		locs:          make([]geo.Location, rows*cols),
		strikeSpacing: strikeSpacing,
		dipSpacing:    dipSpacing,
		dip:           dip,
		strike:        strike,
		upperDepth:    upperDepth,
		lowerDepth:    lowerDepth,
	}
	for c := 0; c < cols; c++ {
		p := pointAlong(trace, cum, float64(c)*strikeSpacing)
		// move the trace point down dip to the upper seismogenic depth
		top := geo.Destination(p, dipDir, (upperDepth-p.Depth)*cosDip/sinDip, 0)
		top.Depth = upperDepth
		for r := 0; r < rows; r++ {
			d := float64(r) * dipSpacing
			loc := geo.Destination(top, dipDir, d*cosDip, 0)
			loc.Depth = upperDepth + d*sinDip
			g.locs[g.index(r, c)] = loc
		}
	}

	return g, nil
}

// NewLine builds the single-row surface along the two-point trace p1→p2 at
// the given depth. dip is recorded as the surface's average dip.
func NewLine(p1, p2 geo.Location, dip, depth, spacing float64) (*Gridded, error) {
	p1.Depth, p2.Depth = depth, depth
	return NewSimpleFault([]geo.Location{p1, p2}, dip, depth, depth, spacing)
}

func validateSimpleFault(trace []geo.Location, dip, upper, lower, spacing float64) error {
	if len(trace) < 2 {
		return ErrShortTrace
	}
	if !(dip > 0 && dip <= 90) {
		return ErrBadDip
	}
	if !(upper >= 0 && lower >= upper) {
		return ErrBadDepths
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return ErrBadSpacing
	}
	return nil
}

// traceLengths returns the cumulative horizontal distance at each trace point
// and the total trace length.
func traceLengths(trace []geo.Location) ([]float64, float64) {
	cum := make([]float64, len(trace))
	for i := 1; i < len(trace); i++ {
		cum[i] = cum[i-1] + geo.HorzDistance(trace[i-1], trace[i])
	}
	return cum, cum[len(cum)-1]
}

// pointAlong returns the trace location at distance s from the first point.
func pointAlong(trace []geo.Location, cum []float64, s float64) geo.Location {
	k := 0
	for k < len(trace)-2 && s > cum[k+1] {
		k++
	}
	a, b := trace[k], trace[k+1]
	seg := cum[k+1] - cum[k]
	if seg == 0 {
		return a
	}
	f := (s - cum[k]) / seg
	p := geo.Destination(a, geo.Azimuth(a, b), s-cum[k], 0)
	p.Depth = a.Depth + f*(b.Depth-a.Depth)
	return p
}

// index maps (row,col) to a row-major index.
func (g *Gridded) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Gridded) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}

// InBounds reports whether (row,col) lies on the grid.
func (g *Gridded) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// NumRows returns the number of rows down dip.
func (g *Gridded) NumRows() int { return g.rows }

// NumCols returns the number of columns along strike.
func (g *Gridded) NumCols() int { return g.cols }

// At returns the location at (row, col).
func (g *Gridded) At(row, col int) geo.Location {
	if !g.InBounds(row, col) {
		panic("surface: grid index out of range")
	}
	return g.locs[g.index(row, col)]
}

// Length returns the along-strike extent in km.
func (g *Gridded) Length() float64 { return float64(g.cols-1) * g.strikeSpacing }

// Width returns the down-dip extent in km.
func (g *Gridded) Width() float64 { return float64(g.rows-1) * g.dipSpacing }

// AveDip returns the dip in degrees the surface was built with.
func (g *Gridded) AveDip() float64 { return g.dip }

// AveStrike returns the azimuth from the first to the last trace point.
func (g *Gridded) AveStrike() float64 { return g.strike }

// StrikeSpacing returns the actual distance between columns in km.
func (g *Gridded) StrikeSpacing() float64 { return g.strikeSpacing }

// DipSpacing returns the actual distance between rows in km.
func (g *Gridded) DipSpacing() float64 { return g.dipSpacing }

// UpperDepth returns the depth of row 0.
func (g *Gridded) UpperDepth() float64 { return g.upperDepth }

// LowerDepth returns the depth of the last row.
func (g *Gridded) LowerDepth() float64 { return g.lowerDepth }
