// SPDX-License-Identifier: MIT

package erf

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/rupcast/discretized"
	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/magfreq"
	"github.com/katalvlaran/rupcast/scaling"
	"github.com/katalvlaran/rupcast/source"
	"github.com/katalvlaran/rupcast/surface"
)

// Build constructs the source described by p.
func Build(p Parameters, log *slog.Logger) (source.Source, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	opts := []source.Option{
		source.WithDuration(p.Duration),
		source.WithMinMag(p.MinMag),
		source.WithRandSource(source.NewRandSource(p.Seed)),
		source.WithLogger(log),
	}
	if p.Name != "" {
		opts = append(opts, source.WithName(p.Name))
	}

	switch p.Kind {
	case KindFault:
		return buildFault(p, opts)
	case KindFloatingFault:
		return buildFloating(p, opts)
	case KindSingleRupture:
		surf, err := p.Fault.surface()
		if err != nil {
			return nil, err
		}
		return source.NewSingleRupture(p.Single.Mag, p.Single.Prob, p.Fault.Rake, surf, opts...)
	case KindPoint:
		dist, depth, err := p.Point.dists()
		if err != nil {
			return nil, err
		}
		return source.NewPoint(magfreq.PointDist{Location: p.Point.Location, Dists: dist}, depth, opts...)
	case KindPointLine:
		dist, depth, err := p.Point.dists()
		if err != nil {
			return nil, err
		}
		line, err := p.Line.params()
		if err != nil {
			return nil, err
		}
		return source.NewPointToLine(magfreq.PointDist{Location: p.Point.Location, Dists: dist}, depth, line, opts...)
	case KindArea:
		return buildArea(p, opts)
	default:
		return buildGridded(p, opts)
	}
}

func buildFault(p Parameters, opts []source.Option) (source.Source, error) {
	surf, err := p.Fault.surface()
	if err != nil {
		return nil, err
	}
	mfd, err := p.MFD.build(surf.Length() * surf.Width())
	if err != nil {
		return nil, err
	}
	return source.NewFault(mfd, surf, p.Fault.Rake, opts...)
}

func buildFloating(p Parameters, opts []source.Option) (source.Source, error) {
	surf, err := p.Fault.surface()
	if err != nil {
		return nil, err
	}
	mfd, err := p.MFD.build(surf.Length() * surf.Width())
	if err != nil {
		return nil, err
	}
	rel, err := scaling.ByName(p.Floating.Scaling)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadParameters, err)
	}
	mode, err := parseFloaterMode(p.Floating.Mode)
	if err != nil {
		return nil, err
	}
	fp := source.FloatingParams{
		MFD:            mfd,
		Surface:        surf,
		Scaling:        rel,
		Sigma:          p.Floating.Sigma,
		AspectRatio:    p.Floating.AspectRatio,
		Offset:         p.Floating.Offset,
		Rake:           p.Fault.Rake,
		Mode:           mode,
		FullRuptureMag: source.DefaultFullRuptureMag,
	}
	if p.Floating.FullRuptureMag != nil {
		fp.FullRuptureMag = *p.Floating.FullRuptureMag
	}
	if p.Floating.TotalProb > 0 {
		return source.NewFloatingFaultPDF(fp, p.Floating.TotalProb, opts...)
	}
	return source.NewFloatingFault(fp, opts...)
}

func buildArea(p Parameters, opts []source.Option) (source.Source, error) {
	region, err := p.Region.grid()
	if err != nil {
		return nil, err
	}
	dists, depth, err := p.Point.dists()
	if err != nil {
		return nil, err
	}
	ap := source.AreaParams{Region: region, Dists: dists, Depth: depth}
	switch p.Region.Mode {
	case "", source.AreaPoint.String():
		ap.Mode = source.AreaPoint
	case source.AreaLine.String():
		ap.Mode = source.AreaLine
		if ap.Line, err = p.Line.params(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown area mode %q", ErrBadParameters, p.Region.Mode)
	}
	src, err := source.NewArea(ap, opts...)
	if err != nil {
		return nil, err
	}
	// the build is deferred; surface its error here
	if err = src.Err(); err != nil {
		return nil, err
	}
	return src, nil
}

func buildGridded(p Parameters, opts []source.Option) (source.Source, error) {
	region, err := p.Region.grid()
	if err != nil {
		return nil, err
	}
	mfd, err := p.MFD.build(0)
	if err != nil {
		return nil, err
	}
	return source.NewGriddedRegion(source.GriddedParams{
		Region:    region,
		MFD:       mfd,
		Mechanism: p.Region.Mechanism,
		Depth:     p.Region.Depth,
	}, opts...)
}

// build returns the distribution. faultArea in km² is required by the
// slip-rate type only.
func (m MFD) build(faultArea float64) (*magfreq.Dist, error) {
	var (
		d   *magfreq.Dist
		err error
	)
	switch m.Type {
	case MFDSingle:
		return magfreq.NewSingle(m.Mag, m.Rate), nil
	case MFDBins:
		d, err = magfreq.FromBins(m.Mags, m.Rates)
	case MFDGutenbergRichter:
		d, err = magfreq.NewGutenbergRichter(m.Min, m.Max, m.Num, m.MagLower, m.MagUpper, m.BValue, m.MomentRate)
	case MFDSlipRate:
		if !(faultArea > 0) {
			return nil, fmt.Errorf("%w: slip-rate distribution needs a fault", ErrBadParameters)
		}
		moRate := ShearModulus * faultArea * 1e6 * m.SlipRate / 1000
		d, err = magfreq.NewGutenbergRichter(m.Min, m.Max, m.Num, m.MagLower, m.MagUpper, m.BValue, moRate)
	case MFDGaussian:
		d, err = magfreq.NewGaussian(m.Min, m.Max, m.Num, m.Mean, m.StdDev, m.TotalRate)
	default:
		return nil, fmt.Errorf("%w: unknown mfd type %q", ErrBadParameters, m.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("mfd %s: %w", m.Type, err)
	}
	return d, nil
}

func (f Fault) surface() (*surface.Gridded, error) {
	trace := f.Trace
	if f.ReverseTrace {
		trace = slices.Clone(trace)
		slices.Reverse(trace)
	}
	s, err := surface.NewSimpleFault(trace, f.Dip, f.UpperDepth, f.LowerDepth, f.Spacing)
	if err != nil {
		return nil, fmt.Errorf("fault surface: %w", err)
	}
	return s, nil
}

func (p Point) dists() ([]magfreq.MechanismDist, source.DepthParams, error) {
	depth := source.DepthParams{DefaultDepth: p.DefaultDepth}
	if len(p.DepthTable) > 0 {
		xs := make([]float64, len(p.DepthTable))
		ys := make([]float64, len(p.DepthTable))
		for i, e := range p.DepthTable {
			xs[i], ys[i] = e.Mag, e.Depth
		}
		f, err := discretized.NewFunc(xs, ys)
		if err != nil {
			return nil, depth, fmt.Errorf("depth table: %w", err)
		}
		depth.TopVsMag = f
	}
	out := make([]magfreq.MechanismDist, 0, len(p.Mechanisms))
	for i, m := range p.Mechanisms {
		mfd, err := m.MFD.build(0)
		if err != nil {
			return nil, depth, fmt.Errorf("mechanism %d: %w", i, err)
		}
		out = append(out, magfreq.MechanismDist{MFD: mfd, Mechanism: m.FocalMechanism})
	}
	return out, depth, nil
}

func (l Line) params() (source.LineParams, error) {
	rel, err := scaling.ByName(l.Scaling)
	if err != nil {
		return source.LineParams{}, fmt.Errorf("%w: %w", ErrBadParameters, err)
	}
	mode, err := parseStrikeMode(l.StrikeMode)
	if err != nil {
		return source.LineParams{}, err
	}
	return source.LineParams{
		Scaling:        rel,
		LowerSeisDepth: l.LowerSeisDepth,
		Strike: source.StrikeParams{
			Mode:        mode,
			Strike:      l.Strike,
			NumStrikes:  l.NumStrikes,
			FirstStrike: l.FirstStrike,
		},
		Spacing: l.Spacing,
	}, nil
}

func (r Region) grid() (*geo.GriddedRegion, error) {
	region, err := geo.NewRegion(r.Border)
	if err != nil {
		return nil, fmt.Errorf("region: %w", err)
	}
	g, err := geo.NewGriddedRegion(region, r.Spacing)
	if err != nil {
		return nil, fmt.Errorf("region: %w", err)
	}
	return g, nil
}

func parseFloaterMode(s string) (source.FloaterMode, error) {
	for _, m := range []source.FloaterMode{
		source.FullDownDipWidth, source.AlongStrikeAndDownDip, source.AlongStrikeCenteredDownDip,
	} {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown floater mode %q", ErrBadParameters, s)
}

func parseStrikeMode(s string) (source.StrikeMode, error) {
	for _, m := range []source.StrikeMode{source.StrikeRandom, source.StrikeFixed, source.StrikeSpoked} {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strike mode %q", ErrBadParameters, s)
}
