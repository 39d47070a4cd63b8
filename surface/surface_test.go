// SPDX-License-Identifier: MIT

package surface_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/surface"
)

// eastTrace returns a two-point trace heading due east for length km.
func eastTrace(length float64) []geo.Location {
	o := geo.NewLocation(35, -118, 0)
	return []geo.Location{o, geo.Destination(o, 90, length, 0)}
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewSimpleFault_Errors verifies input validation.
func TestNewSimpleFault_Errors(t *testing.T) {
	tr := eastTrace(10)
	cases := []struct {
		name                      string
		trace                     []geo.Location
		dip, upper, lower, spaced float64
		err                       error
	}{
		{"ShortTrace", tr[:1], 90, 0, 10, 1, surface.ErrShortTrace},
		{"SamePoints", []geo.Location{tr[0], tr[0]}, 90, 0, 10, 1, surface.ErrShortTrace},
		{"ZeroDip", tr, 0, 0, 10, 1, surface.ErrBadDip},
		{"SteepDip", tr, 95, 0, 10, 1, surface.ErrBadDip},
		{"Depths", tr, 90, 10, 5, 1, surface.ErrBadDepths},
		{"NegativeDepth", tr, 90, -1, 5, 1, surface.ErrBadDepths},
		{"Spacing", tr, 90, 0, 10, 0, surface.ErrBadSpacing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := surface.NewSimpleFault(tc.trace, tc.dip, tc.upper, tc.lower, tc.spaced)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewSimpleFault error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNewSimpleFault_Vertical checks dimensions of a vertical fault.
func TestNewSimpleFault_Vertical(t *testing.T) {
	g, err := surface.NewSimpleFault(eastTrace(50), 90, 0, 10, 1)
	require.NoError(t, err)
	require.Equal(t, 51, g.NumCols())
	require.Equal(t, 11, g.NumRows())
	require.InDelta(t, 50.0, g.Length(), 1e-6)
	require.InDelta(t, 10.0, g.Width(), 1e-9)
	require.InDelta(t, 90.0, g.AveStrike(), 1e-6)
	require.Equal(t, 90.0, g.AveDip())

	top, bottom := g.At(0, 0), g.At(10, 0)
	require.InDelta(t, 0.0, top.Depth, 1e-12)
	require.InDelta(t, 10.0, bottom.Depth, 1e-9)
	require.InDelta(t, 0.0, geo.HorzDistance(top, bottom), 1e-6)

	require.Len(t, surface.Locations(g), 51*11)
	row, col := g.Coordinate(g.NumCols() + 3)
	require.Equal(t, 1, row)
	require.Equal(t, 3, col)
	require.Panics(t, func() { g.At(11, 0) })
}

// TestNewSimpleFault_Dipping checks the down-dip projection of a 45° fault.
func TestNewSimpleFault_Dipping(t *testing.T) {
	g, err := surface.NewSimpleFault(eastTrace(20), 45, 0, 10, 1)
	require.NoError(t, err)
	require.InDelta(t, 10*math.Sqrt2, g.Width(), 1e-9)

	top, bottom := g.At(0, 0), g.At(g.NumRows()-1, 0)
	require.InDelta(t, 10.0, bottom.Depth, 1e-9)
	require.InDelta(t, 10.0, geo.HorzDistance(top, bottom), 1e-6)
	// dips to the right of an eastward trace: south
	require.Less(t, bottom.Lat, top.Lat)
}

// TestNewLine builds a single-row surface at depth.
func TestNewLine(t *testing.T) {
	tr := eastTrace(12)
	g, err := surface.NewLine(tr[0], tr[1], 90, 5, 1)
	require.NoError(t, err)
	require.Equal(t, 1, g.NumRows())
	require.Equal(t, 13, g.NumCols())
	require.Zero(t, g.Width())
	require.InDelta(t, 5.0, g.At(0, 6).Depth, 1e-12)
}

// TestMinHorzDistance measures from a site north of the trace.
func TestMinHorzDistance(t *testing.T) {
	tr := eastTrace(20)
	g, err := surface.NewSimpleFault(tr, 90, 0, 10, 1)
	require.NoError(t, err)
	mid := geo.Destination(tr[0], 90, 10, 0)
	site := geo.Destination(mid, 0, 7, 0)
	require.InDelta(t, 7.0, surface.MinHorzDistance(g, site), 1e-3)

	p := &surface.Point{Loc: tr[0]}
	require.InDelta(t, 0.0, surface.MinHorzDistance(p, tr[0]), 1e-12)
	require.Equal(t, 1, p.NumRows())
	require.Panics(t, func() { p.At(0, 1) })
}

//----------------------------------------------------------------------------//
// Subset placement
//----------------------------------------------------------------------------//

// SubsetSuite exercises floating subset placement on a 51×11 vertical fault.
type SubsetSuite struct {
	suite.Suite
	g *surface.Gridded
}

func (s *SubsetSuite) SetupTest() {
	g, err := surface.NewSimpleFault(eastTrace(50), 90, 0, 10, 1)
	s.Require().NoError(err)
	s.g = g
}

// TestCounts checks two-dimensional and along-strike counts.
func (s *SubsetSuite) TestCounts() {
	s.Require().Equal(41*6, s.g.NumSubsets(10, 5, 1))
	s.Require().Equal(21*3, s.g.NumSubsets(10, 5, 2))
	s.Require().Equal(41, s.g.NumSubsetsAlongLength(10, 1))
	// longer than the fault: one placement along strike
	s.Require().Equal(1, s.g.NumSubsetsAlongLength(500, 1))
	// wider than the fault: one placement down dip
	s.Require().Equal(41, s.g.NumSubsets(10, 20, 1))
}

// TestSubsetOrder verifies along-strike-first enumeration.
func (s *SubsetSuite) TestSubsetOrder() {
	first, err := s.g.Subset(10, 5, 1, 0)
	s.Require().NoError(err)
	s.Require().Equal(0, first.StartRow())
	s.Require().Equal(0, first.StartCol())
	s.Require().Equal(11, first.NumCols())
	s.Require().Equal(6, first.NumRows())
	s.Require().InDelta(10.0, first.Length(), 1e-6)
	s.Require().InDelta(5.0, first.Width(), 1e-9)

	next, err := s.g.Subset(10, 5, 1, 41)
	s.Require().NoError(err)
	s.Require().Equal(1, next.StartRow())
	s.Require().Equal(0, next.StartCol())

	last, err := s.g.Subset(10, 5, 1, 41*6-1)
	s.Require().NoError(err)
	s.Require().Equal(5, last.StartRow())
	s.Require().Equal(40, last.StartCol())
	s.Require().Equal(s.g.At(10, 50), last.At(5, 10))
	s.Require().Same(s.g, last.Parent())

	_, err = s.g.Subset(10, 5, 1, 41*6)
	s.Require().ErrorIs(err, surface.ErrSubsetIndex)
	_, err = s.g.Subset(10, 5, 1, -1)
	s.Require().ErrorIs(err, surface.ErrSubsetIndex)
}

// TestFullWidthClamp verifies that an oversized width covers the full extent.
func (s *SubsetSuite) TestFullWidthClamp() {
	sub, err := s.g.Subset(10, 2*s.g.Width(), 1, 7)
	s.Require().NoError(err)
	s.Require().Equal(s.g.NumRows(), sub.NumRows())
	s.Require().Equal(s.g.Width(), sub.Width())
}

// TestCenteredDownDip places subsets in the middle rows.
func (s *SubsetSuite) TestCenteredDownDip() {
	sub, err := s.g.SubsetCenteredDownDip(10, 4, 1, 3)
	s.Require().NoError(err)
	s.Require().Equal(3, sub.StartRow())
	s.Require().Equal(3, sub.StartCol())
	s.Require().Equal(5, sub.NumRows())

	_, err = s.g.SubsetCenteredDownDip(10, 4, 1, 41)
	s.Require().ErrorIs(err, surface.ErrSubsetIndex)
}

// TestDegenerateInputs clamps NaN and negative sizes to single points.
func (s *SubsetSuite) TestDegenerateInputs() {
	s.Require().Equal(51*11, s.g.NumSubsets(math.NaN(), -3, 0))
}

func TestSubsetSuite(t *testing.T) {
	suite.Run(t, new(SubsetSuite))
}
