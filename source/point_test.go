// SPDX-License-Identifier: MIT

package source_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rupcast/discretized"
	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/magfreq"
	"github.com/katalvlaran/rupcast/rupture"
	"github.com/katalvlaran/rupcast/scaling"
	"github.com/katalvlaran/rupcast/source"
	"github.com/katalvlaran/rupcast/surface"
)

func depthTable(t testing.TB) source.DepthParams {
	t.Helper()
	f, err := discretized.NewFunc([]float64{6, 7}, []float64{3, 1})
	require.NoError(t, err)
	return source.DepthParams{TopVsMag: f, DefaultDepth: 5}
}

func TestDepthParams_DepthFor(t *testing.T) {
	d := depthTable(t)
	cases := []struct {
		mag, want float64
	}{
		{5.5, 5},
		{6.0, 3},
		{6.5, 3},
		{6.6, 1},
		{8.0, 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, d.DepthFor(tc.mag), "mag %v", tc.mag)
	}
	require.Equal(t, 7.0, source.DepthParams{DefaultDepth: 7}.DepthFor(9))
}

func TestNewPoint(t *testing.T) {
	loc := geo.NewLocation(34, -118, 0)
	dist := magfreq.PointDist{
		Location: loc,
		Dists: []magfreq.MechanismDist{
			{MFD: bins(t, []float64{5.0, 6.0, 7.0}, []float64{0.01, 0.001, 0}), Mechanism: magfreq.FocalMechanism{Strike: 10, Dip: 90, Rake: 0}},
			{MFD: single(6.5, 0.002), Mechanism: magfreq.FocalMechanism{Strike: 0, Dip: 45, Rake: 90}},
		},
	}
	src, err := source.NewPoint(dist, depthTable(t), source.WithDuration(10))
	require.NoError(t, err)
	require.Equal(t, 3, src.NumRuptures())
	requireProbBounds(t, src)

	want := []struct {
		mag, rate, depth, rake float64
	}{
		{5.0, 0.01, 5, 0},
		{6.0, 0.001, 3, 0},
		{6.5, 0.002, 3, 90},
	}
	for i, w := range want {
		r, err := src.Rupture(i)
		require.NoError(t, err)
		require.Equal(t, w.mag, r.Mag)
		require.Equal(t, w.rake, r.Rake)
		require.InEpsilon(t, rupture.PoissonProb(w.rate, 10), r.Prob, relTol)
		require.Equal(t, w.depth, r.Hypocenter.Depth)
		pt := r.Surface.(*surface.Point)
		require.Equal(t, w.depth, pt.Loc.Depth)
	}
	require.InDelta(t, 0, src.MinDistance(loc), kmTol)

	require.NoError(t, src.SetDuration(1))
	r, err := src.Rupture(0)
	require.NoError(t, err)
	require.InEpsilon(t, rupture.PoissonProb(0.01, 1), r.Prob, relTol)

	_, err = source.NewPoint(magfreq.PointDist{Location: loc}, depthTable(t))
	require.ErrorIs(t, err, source.ErrNilInput)
}

func lineDist(loc geo.Location, mfd magfreq.Supplier) magfreq.PointDist {
	return magfreq.PointDist{
		Location: loc,
		Dists:    []magfreq.MechanismDist{{MFD: mfd, Mechanism: magfreq.FocalMechanism{Dip: 90}}},
	}
}

func TestPointToLine_FixedStrike(t *testing.T) {
	loc := geo.NewLocation(10, 20, 0)
	line := source.LineParams{
		Scaling:        scaling.WC1994Length,
		LowerSeisDepth: 15,
		Strike:         source.StrikeParams{Mode: source.StrikeFixed, Strike: 30},
	}
	src, err := source.NewPointToLine(lineDist(loc, single(7.0, 0.001)),
		source.DepthParams{DefaultDepth: 5}, line, source.WithDuration(50))
	require.NoError(t, err)
	require.NoError(t, src.Err())
	require.Equal(t, 1, src.NumRuptures())

	r, err := src.Rupture(0)
	require.NoError(t, err)
	require.InEpsilon(t, 1-math.Exp(-0.05), r.Prob, relTol)
	require.InDelta(t, 0.0488, r.Prob, 1e-4)

	surf := r.Surface
	require.Equal(t, 1, surf.NumRows())
	first, last := surf.At(0, 0), surf.At(0, surf.NumCols()-1)
	half := scaling.WC1994Length.Median(7.0) / 2
	require.InDelta(t, half, geo.HorzDistance(loc, first), kmTol)
	require.InDelta(t, half, geo.HorzDistance(loc, last), kmTol)
	require.InDelta(t, 0, angleDiff(210, geo.Azimuth(loc, first)), 1e-6)
	require.InDelta(t, 0, angleDiff(30, geo.Azimuth(loc, last)), 1e-6)
	require.Equal(t, 5.0, first.Depth)
	require.Equal(t, 5.0, r.Hypocenter.Depth)
}

func TestPointToLine_Spoked(t *testing.T) {
	loc := geo.NewLocation(0, 0, 0)
	line := source.LineParams{
		Scaling:        scaling.WC1994Length,
		LowerSeisDepth: 15,
		Strike:         source.StrikeParams{Mode: source.StrikeSpoked, NumStrikes: 2, FirstStrike: 0},
	}
	mfd := bins(t, []float64{6.0, 6.5}, []float64{0.01, 0.004})
	src, err := source.NewPointToLine(lineDist(loc, mfd), source.DepthParams{DefaultDepth: 5}, line)
	require.NoError(t, err)
	require.Equal(t, 4, src.NumRuptures())

	strikes := []float64{0, 90, 0, 90}
	base := []float64{0.01, 0.01, 0.004, 0.004}
	for i, rate := range rates(t, src) {
		r, err := src.Rupture(i)
		require.NoError(t, err)
		require.InDelta(t, 0, angleDiff(strikes[i], r.Surface.AveStrike()), 1e-6, "rupture %d", i)
		require.InEpsilon(t, 0.5*base[i], rate, relTol)
	}
}

func TestPointToLine_AreaScaling(t *testing.T) {
	// PEER area at M6 is 100 km² over a 10 km vertical width.
	loc := geo.NewLocation(0, 0, 0)
	line := source.LineParams{
		Scaling:        scaling.PEERArea,
		LowerSeisDepth: 15,
		Strike:         source.StrikeParams{Mode: source.StrikeFixed, Strike: 90},
	}
	src, err := source.NewPointToLine(lineDist(loc, single(6.0, 0.01)), source.DepthParams{DefaultDepth: 5}, line)
	require.NoError(t, err)
	r, err := src.Rupture(0)
	require.NoError(t, err)
	require.InDelta(t, 10, r.Surface.Length(), kmTol)
}

func TestPointToLine_RandomStrikeSeeded(t *testing.T) {
	loc := geo.NewLocation(0, 0, 0)
	line := source.LineParams{
		Scaling:        scaling.WC1994Length,
		LowerSeisDepth: 15,
		Strike:         source.StrikeParams{Mode: source.StrikeRandom},
	}
	build := func() *source.PointToLine {
		src, err := source.NewPointToLine(lineDist(loc, single(6.5, 0.01)), source.DepthParams{DefaultDepth: 5}, line,
			source.WithRandSource(source.NewRandSource(42)))
		require.NoError(t, err)
		return src
	}
	a, err := build().Rupture(0)
	require.NoError(t, err)
	b, err := build().Rupture(0)
	require.NoError(t, err)
	require.Equal(t, a.Surface.At(0, 0), b.Surface.At(0, 0))
	require.Nil(t, source.NewRandSource(0))
}

func TestNewPointToLine_Errors(t *testing.T) {
	loc := geo.NewLocation(0, 0, 0)
	valid := source.LineParams{
		Scaling:        scaling.PEERArea,
		LowerSeisDepth: 15,
		Strike:         source.StrikeParams{Mode: source.StrikeFixed},
	}
	cases := []struct {
		name   string
		modify func(*source.LineParams, *magfreq.PointDist)
		want   error
	}{
		{"nil scaling", func(l *source.LineParams, _ *magfreq.PointDist) { l.Scaling = nil }, source.ErrNilInput},
		{"unknown kind", func(l *source.LineParams, _ *magfreq.PointDist) { l.Scaling = unknownKind{} }, scaling.ErrUnsupportedKind},
		{"too deep", func(l *source.LineParams, _ *magfreq.PointDist) { l.LowerSeisDepth = 5 }, source.ErrBadDepth},
		{"no spokes", func(l *source.LineParams, _ *magfreq.PointDist) {
			l.Strike = source.StrikeParams{Mode: source.StrikeSpoked}
		}, source.ErrBadStrikes},
		{"flat dip", func(_ *source.LineParams, d *magfreq.PointDist) { d.Dists[0].Mechanism.Dip = 0 }, surface.ErrBadDip},
		{"no dists", func(_ *source.LineParams, d *magfreq.PointDist) { d.Dists = nil }, source.ErrNilInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line := valid
			dist := lineDist(loc, single(6, 0.01))
			tc.modify(&line, &dist)
			_, err := source.NewPointToLine(dist, source.DepthParams{DefaultDepth: 5}, line)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
