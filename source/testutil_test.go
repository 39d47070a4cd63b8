// SPDX-License-Identifier: MIT

package source_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/magfreq"
	"github.com/katalvlaran/rupcast/rupture"
	"github.com/katalvlaran/rupcast/scaling"
	"github.com/katalvlaran/rupcast/source"
	"github.com/katalvlaran/rupcast/surface"
)

const (
	// relTol is the relative tolerance for probability round-trips.
	relTol = 1e-9
	// kmTol is the tolerance for geometric comparisons in km.
	kmTol = 1e-3
)

// eastFault builds a fault whose trace runs length km due east from (0,0).
func eastFault(t testing.TB, length, dip, upper, lower float64) *surface.Gridded {
	t.Helper()
	start := geo.NewLocation(0, 0, 0)
	trace := []geo.Location{start, geo.Destination(start, 90, length, 0)}
	f, err := surface.NewSimpleFault(trace, dip, upper, lower, 1)
	require.NoError(t, err)
	return f
}

// single returns a one-bin distribution.
func single(mag, rate float64) *magfreq.Dist {
	return magfreq.NewSingle(mag, rate)
}

// bins returns a distribution from explicit bins.
func bins(t testing.TB, mags, rates []float64) *magfreq.Dist {
	t.Helper()
	d, err := magfreq.FromBins(mags, rates)
	require.NoError(t, err)
	return d
}

// rates recovers the annual rate of every rupture of s.
func rates(t testing.TB, s source.Source) []float64 {
	t.Helper()
	rups, err := source.Ruptures(s)
	require.NoError(t, err)
	out := make([]float64, len(rups))
	for i, r := range rups {
		out[i] = rupture.PoissonRate(r.Prob, s.Duration())
	}
	return out
}

// requireProbBounds asserts 0 < p ≤ 1 for every rupture.
func requireProbBounds(t testing.TB, s source.Source) {
	t.Helper()
	for i := 0; i < s.NumRuptures(); i++ {
		r, err := s.Rupture(i)
		require.NoError(t, err)
		require.Greater(t, r.Prob, 0.0, "rupture %d", i)
		require.LessOrEqual(t, r.Prob, 1.0, "rupture %d", i)
	}
}

// angleDiff returns the absolute difference of two azimuths in [0, 180].
func angleDiff(a, b float64) float64 {
	d := math.Abs(geo.NormalizeAzimuth(a) - geo.NormalizeAzimuth(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// unknownKind is a relationship of a kind the generators do not handle.
type unknownKind struct{}

func (unknownKind) Name() string           { return "unknown" }
func (unknownKind) Kind() scaling.Kind     { return scaling.KindUnknown }
func (unknownKind) Median(float64) float64 { return 1 }
func (unknownKind) Sigma() float64         { return 0 }
