// SPDX-License-Identifier: MIT

package magfreq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rupcast/magfreq"
)

// DistSuite exercises construction and rescaling of distributions.
type DistSuite struct {
	suite.Suite
}

// TestEvenlyBins verifies magnitude spacing.
func (s *DistSuite) TestEvenlyBins() {
	d, err := magfreq.NewEvenly(5.0, 7.0, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, d.Len())
	for i, want := range []float64{5.0, 5.5, 6.0, 6.5, 7.0} {
		require.InDelta(s.T(), want, d.Mag(i), 1e-12)
		require.Zero(s.T(), d.Rate(i))
	}
}

// TestEvenlyErrors rejects invalid discretisations.
func (s *DistSuite) TestEvenlyErrors() {
	for _, tc := range []struct {
		min, max float64
		num      int
	}{
		{5, 7, 0}, {7, 5, 3}, {5, 6, 1}, {5, 5, 3},
	} {
		_, err := magfreq.NewEvenly(tc.min, tc.max, tc.num)
		require.ErrorIs(s.T(), err, magfreq.ErrBadBins, "%+v", tc)
	}
	_, err := magfreq.NewEvenly(6, 6, 1)
	require.NoError(s.T(), err)
}

// TestFromBins validates arbitrary bins.
func (s *DistSuite) TestFromBins() {
	d, err := magfreq.FromBins([]float64{5, 6}, []float64{0.1, 0.01})
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.11, d.TotalRate(), 1e-15)
	require.InDelta(s.T(), 0.01, d.CumRate(1), 1e-15)

	_, err = magfreq.FromBins([]float64{5, 6}, []float64{0.1})
	require.ErrorIs(s.T(), err, magfreq.ErrLengthMismatch)
	_, err = magfreq.FromBins([]float64{6, 5}, []float64{0.1, 0.1})
	require.ErrorIs(s.T(), err, magfreq.ErrBadBins)
	_, err = magfreq.FromBins([]float64{5, 6}, []float64{0.1, -1})
	require.ErrorIs(s.T(), err, magfreq.ErrNegativeRate)
}

// TestGutenbergRichter checks the b-value slope and the moment-rate budget.
func (s *DistSuite) TestGutenbergRichter() {
	const moRate = 1e17
	d, err := magfreq.NewGutenbergRichter(5.05, 7.45, 25, 5.05, 7.15, 0.9, moRate)
	require.NoError(s.T(), err)
	require.InEpsilon(s.T(), moRate, d.MomentRate(), 1e-12)

	ratio := d.Rate(0) / d.Rate(1)
	require.InDelta(s.T(), math.Pow(10, 0.9*0.1), ratio, 1e-9)
	// bins above magUpper stay empty
	require.Zero(s.T(), d.Rate(d.Len()-1))
	require.Greater(s.T(), d.Rate(21), 0.0)
}

// TestGaussian checks symmetry and the total rate.
func (s *DistSuite) TestGaussian() {
	d, err := magfreq.NewGaussian(6.0, 7.0, 11, 6.5, 0.25, 0.02)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.02, d.TotalRate(), 1e-15)
	require.InDelta(s.T(), d.Rate(0), d.Rate(10), 1e-15)
	require.Greater(s.T(), d.Rate(5), d.Rate(4))
}

// TestScaleErrors covers rescaling an empty distribution and bad SetRate.
func (s *DistSuite) TestScaleErrors() {
	d, err := magfreq.NewEvenly(5, 6, 2)
	require.NoError(s.T(), err)
	require.ErrorIs(s.T(), d.ScaleToTotalRate(1), magfreq.ErrZeroTotal)
	require.ErrorIs(s.T(), d.ScaleToMomentRate(1), magfreq.ErrZeroTotal)
	require.ErrorIs(s.T(), d.SetRate(2, 1), magfreq.ErrBinIndex)
	require.ErrorIs(s.T(), d.SetRate(0, -1), magfreq.ErrNegativeRate)

	require.NoError(s.T(), d.SetRate(1, 0.5))
	c := d.Clone()
	require.NoError(s.T(), c.SetRate(1, 0.25))
	require.Equal(s.T(), 0.5, d.Rate(1))
}

// TestMoment checks the Hanks-Kanamori constant.
func (s *DistSuite) TestMoment() {
	require.InEpsilon(s.T(), math.Pow(10, 18.05), magfreq.Moment(6), 1e-12)
}

func TestDistSuite(t *testing.T) {
	suite.Run(t, new(DistSuite))
}
