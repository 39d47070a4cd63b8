// SPDX-License-Identifier: MIT

package erf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rupcast/erf"
	"github.com/katalvlaran/rupcast/rupture"
	"github.com/katalvlaran/rupcast/source"
)

// ForecastSuite drives the dirty/clean state machine over the PEER
// non-planar fault forecast.
type ForecastSuite struct {
	suite.Suite
	f *erf.Forecast
}

func (s *ForecastSuite) SetupTest() {
	s.f = erf.New(erf.DefaultParameters(), nil)
}

func (s *ForecastSuite) TestStaleUntilUpdated() {
	s.Require().True(s.f.IsDirty())
	_, err := s.f.Source(0)
	s.Require().ErrorIs(err, erf.ErrStale)

	s.Require().NoError(s.f.UpdateForecast())
	s.Require().False(s.f.IsDirty())
	src, err := s.f.Source(0)
	s.Require().NoError(err)
	s.Require().Equal("PEER Non Planar Fault Forecast", src.Name())
	s.Require().Equal(1, s.f.NumSources())

	_, err = s.f.Source(1)
	s.Require().ErrorIs(err, erf.ErrSourceIndex)
	_, err = s.f.Source(-1)
	s.Require().ErrorIs(err, erf.ErrSourceIndex)
}

func (s *ForecastSuite) TestPEERRuptures() {
	s.Require().NoError(s.f.UpdateForecast())
	src, err := s.f.Source(0)
	s.Require().NoError(err)
	s.Require().True(src.IsPoissonian())
	s.Require().Greater(src.NumRuptures(), 0)

	for i := 0; i < src.NumRuptures(); i++ {
		r, err := src.Rupture(i)
		s.Require().NoError(err)
		s.Require().GreaterOrEqual(r.Mag, 5.0)
		s.Require().LessOrEqual(r.Mag, 7.15+1e-9)
		s.Require().Equal(-90.0, r.Rake)
		s.Require().Greater(r.Prob, 0.0)
		s.Require().LessOrEqual(r.Prob, 1.0)
	}
}

func (s *ForecastSuite) TestSetDurationRebuilds() {
	s.Require().NoError(s.f.UpdateForecast())
	src, err := s.f.Source(0)
	s.Require().NoError(err)
	first, err := src.Rupture(0)
	s.Require().NoError(err)
	p1 := first.Prob

	s.Require().NoError(s.f.SetDuration(50))
	s.Require().True(s.f.IsDirty())
	_, err = s.f.Source(0)
	s.Require().ErrorIs(err, erf.ErrStale)

	s.Require().NoError(s.f.UpdateForecast())
	src, err = s.f.Source(0)
	s.Require().NoError(err)
	s.Require().Equal(50.0, src.Duration())
	r, err := src.Rupture(0)
	s.Require().NoError(err)
	s.Require().InEpsilon(rupture.RescaleProb(p1, 1, 50), r.Prob, 1e-9)

	s.Require().ErrorIs(s.f.SetDuration(0), source.ErrBadDuration)
	s.Require().ErrorIs(s.f.SetDuration(math.Inf(1)), source.ErrBadDuration)
}

func (s *ForecastSuite) TestFailedRebuildStaysDirty() {
	s.f.Update(func(p *erf.Parameters) { p.Floating.Mode = "sideways" })
	err := s.f.UpdateForecast()
	s.Require().ErrorIs(err, erf.ErrBadParameters)
	s.Require().True(s.f.IsDirty())
	_, err = s.f.Source(0)
	s.Require().ErrorIs(err, erf.ErrStale)

	s.f.Update(func(p *erf.Parameters) { p.Floating.Mode = source.FullDownDipWidth.String() })
	s.Require().NoError(s.f.UpdateForecast())
}

func (s *ForecastSuite) TestCleanUpdateIsNoop() {
	s.Require().NoError(s.f.UpdateForecast())
	a, err := s.f.Source(0)
	s.Require().NoError(err)
	s.Require().NoError(s.f.UpdateForecast())
	b, err := s.f.Source(0)
	s.Require().NoError(err)
	s.Require().Same(a, b)

	list, err := s.f.Sources()
	s.Require().NoError(err)
	s.Require().Len(list, 1)
}

func (s *ForecastSuite) TestSetDurationFixedProbability() {
	cases := []struct {
		name   string
		modify func(*erf.Parameters)
	}{
		{"single rupture", func(p *erf.Parameters) {
			p.Kind = erf.KindSingleRupture
			p.Single = erf.Single{Mag: 7, Prob: 0.2}
		}},
		{"floating pdf", func(p *erf.Parameters) { p.Floating.TotalProb = 0.3 }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			p := erf.DefaultParameters()
			tc.modify(&p)
			f := erf.New(p, nil)
			s.Require().NoError(f.UpdateForecast())
			src, err := f.Source(0)
			s.Require().NoError(err)
			s.Require().False(src.IsPoissonian())

			s.Require().ErrorIs(f.SetDuration(50), source.ErrNotPoissonian)
			s.Require().False(f.IsDirty())
			s.Require().Equal(p.Duration, f.Parameters().Duration)
		})
	}
}

func TestForecastSuite(t *testing.T) {
	suite.Run(t, new(ForecastSuite))
}

func TestParameters_Validate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*erf.Parameters)
	}{
		{"unknown kind", func(p *erf.Parameters) { p.Kind = "volcano" }},
		{"zero duration", func(p *erf.Parameters) { p.Duration = 0 }},
		{"infinite duration", func(p *erf.Parameters) { p.Duration = math.Inf(1) }},
		{"nan min mag", func(p *erf.Parameters) { p.MinMag = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := erf.DefaultParameters()
			tc.modify(&p)
			require.ErrorIs(t, p.Validate(), erf.ErrBadParameters)
		})
	}
	require.NoError(t, erf.DefaultParameters().Validate())
}
