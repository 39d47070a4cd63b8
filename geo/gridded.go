// SPDX-License-Identifier: MIT

package geo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// spacingTol absorbs rounding when the region extent is a multiple of the spacing.
const spacingTol = 1e-9

// GriddedRegion is a Region discretised into nodes at a fixed spacing.
// It is immutable once built.
//
// The bounding box is covered by Rows×Cols cells; a cell contributes a node
// when its centre lies inside the region. Nodes are stored row-major
// (south to north, then west to east).
type GriddedRegion struct {
	Region  *Region
	Spacing float64
	Rows    int
	Cols    int

	nodes []Location
	cells []int // row-major cell index of each node
}

// NewGriddedRegion discretises region at spacing degrees.
// Returns ErrBadSpacing for a non-positive spacing and ErrEmptyRegion when no
// cell centre falls inside the region.
// Complexity: O(Rows×Cols×V).
func NewGriddedRegion(region *Region, spacing float64) (*GriddedRegion, error) {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, ErrBadSpacing
	}
	minLat, maxLat, minLon, maxLon := region.Bounds()
	rows := int(math.Ceil((maxLat-minLat)/spacing - spacingTol))
	cols := int(math.Ceil((maxLon-minLon)/spacing - spacingTol))

	gr := &GriddedRegion{Region: region, Spacing: spacing, Rows: rows, Cols: cols}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			loc := gr.cellCentre(x, y)
			if region.Contains(loc) {
				gr.nodes = append(gr.nodes, loc)
				gr.cells = append(gr.cells, gr.index(x, y))
			}
		}
	}
	if len(gr.nodes) == 0 {
		return nil, ErrEmptyRegion
	}

	return gr, nil
}

// cellCentre returns the centre of cell (x,y) in the bounding grid.
func (gr *GriddedRegion) cellCentre(x, y int) Location {
	minLat, _, minLon, _ := gr.Region.Bounds()
	return Location{
		Lat: minLat + (float64(y)+0.5)*gr.Spacing,
		Lon: minLon + (float64(x)+0.5)*gr.Spacing,
	}
}

// InBounds reports whether cell (x,y) lies within the bounding grid.
// Complexity: O(1).
func (gr *GriddedRegion) InBounds(x, y int) bool {
	return x >= 0 && x < gr.Cols && y >= 0 && y < gr.Rows
}

// index maps (x,y) to a row-major cell index: y*Cols + x.
func (gr *GriddedRegion) index(x, y int) int {
	return y*gr.Cols + x
}

// Coordinate converts a row-major cell index back to (x,y).
// Complexity: O(1).
func (gr *GriddedRegion) Coordinate(idx int) (x, y int) {
	return idx % gr.Cols, idx / gr.Cols
}

// NumNodes returns the number of nodes inside the region.
func (gr *GriddedRegion) NumNodes() int {
	return len(gr.nodes)
}

// Node returns the i-th node location.
func (gr *GriddedRegion) Node(i int) (Location, error) {
	if i < 0 || i >= len(gr.nodes) {
		return Location{}, ErrNodeIndex
	}
	return gr.nodes[i], nil
}

// Nodes returns a copy of all node locations.
func (gr *GriddedRegion) Nodes() []Location {
	return append([]Location(nil), gr.nodes...)
}

// NodeCell returns the bounding-grid cell (x,y) of node i.
func (gr *GriddedRegion) NodeCell(i int) (x, y int, err error) {
	if i < 0 || i >= len(gr.cells) {
		return 0, 0, ErrNodeIndex
	}
	x, y = gr.Coordinate(gr.cells[i])
	return x, y, nil
}

// AreaWeights returns one weight per node proportional to cos(latitude) and
// normalised to sum to 1. A graticule cell of fixed angular size shrinks
// toward the poles in proportion to cos(latitude).
// Complexity: O(N).
func (gr *GriddedRegion) AreaWeights() []float64 {
	w := make([]float64, len(gr.nodes))
	for i, n := range gr.nodes {
		w[i] = math.Cos(n.Lat * math.Pi / 180)
	}
	floats.Scale(1/floats.Sum(w), w)
	return w
}
