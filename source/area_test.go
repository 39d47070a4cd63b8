// SPDX-License-Identifier: MIT

package source_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/magfreq"
	"github.com/katalvlaran/rupcast/scaling"
	"github.com/katalvlaran/rupcast/source"
)

// region2x2 is a 10°×10° box gridded at 5°: nodes at latitudes 2.5 and 7.5.
func region2x2(t testing.TB) *geo.GriddedRegion {
	t.Helper()
	r, err := geo.NewRectangularRegion(0, 10, 0, 10)
	require.NoError(t, err)
	g, err := geo.NewGriddedRegion(r, 5)
	require.NoError(t, err)
	require.Equal(t, 4, g.NumNodes())
	return g
}

func areaDists(t testing.TB) []magfreq.MechanismDist {
	return []magfreq.MechanismDist{{
		MFD:       bins(t, []float64{6.0, 6.5}, []float64{0.04, 0.01}),
		Mechanism: magfreq.FocalMechanism{Strike: 0, Dip: 90, Rake: 0},
	}}
}

func TestArea_PointWeights(t *testing.T) {
	src, err := source.NewArea(source.AreaParams{
		Region: region2x2(t),
		Dists:  areaDists(t),
		Depth:  source.DepthParams{DefaultDepth: 5},
		Mode:   source.AreaPoint,
	})
	require.NoError(t, err)
	require.NoError(t, src.Err())
	require.Equal(t, 2*4, src.NumRuptures())
	requireProbBounds(t, src)

	// Ruptures are node-major: bins 6.0, 6.5 at node 0, then node 1, ...
	rs := rates(t, src)
	weights := make([]float64, 0, 4)
	sum := 0.0
	for node := 0; node < 4; node++ {
		r, err := src.Rupture(2 * node)
		require.NoError(t, err)
		w := rs[2*node] / 0.04
		require.InEpsilon(t, w, rs[2*node+1]/0.01, relTol)
		weights = append(weights, w)
		sum += w

		first, err := src.Rupture(0)
		require.NoError(t, err)
		wantRatio := math.Cos(r.Hypocenter.Lat*math.Pi/180) / math.Cos(first.Hypocenter.Lat*math.Pi/180)
		require.InEpsilon(t, wantRatio, w/weights[0], relTol)
	}
	require.InDelta(t, 1, sum, 1e-9)
}

func TestArea_SpokedLines(t *testing.T) {
	region := region2x2(t)
	src, err := source.NewArea(source.AreaParams{
		Region: region,
		Dists:  areaDists(t),
		Depth:  source.DepthParams{DefaultDepth: 5},
		Mode:   source.AreaLine,
		Line: source.LineParams{
			Scaling:        scaling.WC1994Length,
			LowerSeisDepth: 15,
			Strike:         source.StrikeParams{Mode: source.StrikeSpoked, NumStrikes: 4, FirstStrike: 10},
		},
	}, source.WithDuration(5))
	require.NoError(t, err)
	require.Equal(t, 2*4*4, src.NumRuptures())

	total := 0.0
	for _, r := range rates(t, src) {
		total += r
	}
	require.InEpsilon(t, 0.05, total, 1e-9)

	node, err := region.Node(0)
	require.NoError(t, err)
	require.InDelta(t, 0, src.MinDistance(node), kmTol)

	r, err := src.Rupture(0)
	require.NoError(t, err)
	before := r.Prob
	require.NoError(t, src.SetDuration(10))
	require.InEpsilon(t, -math.Expm1(2*math.Log1p(-before)), r.Prob, relTol)
}

func TestNewArea_Errors(t *testing.T) {
	region := region2x2(t)
	_, err := source.NewArea(source.AreaParams{Dists: areaDists(t)})
	require.ErrorIs(t, err, source.ErrNilInput)

	_, err = source.NewArea(source.AreaParams{Region: region})
	require.ErrorIs(t, err, source.ErrNilInput)

	_, err = source.NewArea(source.AreaParams{
		Region: region,
		Dists:  areaDists(t),
		Mode:   source.AreaLine,
		Line:   source.LineParams{Scaling: scaling.WC1994Length, Strike: source.StrikeParams{Mode: source.StrikeSpoked}},
	})
	require.ErrorIs(t, err, source.ErrBadStrikes)
}
