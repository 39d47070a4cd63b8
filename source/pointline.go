// SPDX-License-Identifier: MIT

package source

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/magfreq"
	"github.com/katalvlaran/rupcast/rupture"
	"github.com/katalvlaran/rupcast/scaling"
	"github.com/katalvlaran/rupcast/surface"
)

// StrikeMode selects the strike of point-to-line ruptures.
type StrikeMode int

const (
	// StrikeRandom draws one strike per bin uniformly from [-90, 90).
	StrikeRandom StrikeMode = iota
	// StrikeFixed uses the configured strike.
	StrikeFixed
	// StrikeSpoked emits NumStrikes evenly spaced strikes per bin, each
	// carrying 1/NumStrikes of the rate.
	StrikeSpoked
)

// String implements fmt.Stringer.
func (m StrikeMode) String() string {
	switch m {
	case StrikeRandom:
		return "random"
	case StrikeFixed:
		return "fixed"
	case StrikeSpoked:
		return "spoked"
	default:
		return fmt.Sprintf("StrikeMode(%d)", int(m))
	}
}

// StrikeParams configures rupture strikes.
type StrikeParams struct {
	Mode StrikeMode
	// Strike is the fixed strike in degrees (StrikeFixed).
	Strike float64
	// NumStrikes is the number of spokes (StrikeSpoked). Spokes are
	// 180/NumStrikes degrees apart since a line has no direction.
	NumStrikes int
	// FirstStrike is the strike of the first spoke (StrikeSpoked).
	FirstStrike float64
}

func (s StrikeParams) validate() error {
	switch s.Mode {
	case StrikeRandom, StrikeFixed:
		return nil
	case StrikeSpoked:
		if s.NumStrikes < 1 {
			return fmt.Errorf("%w: %d spokes", ErrBadStrikes, s.NumStrikes)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrBadStrikes, s.Mode)
	}
}

// perBin returns the number of ruptures emitted for one bin.
func (s StrikeParams) perBin() int {
	if s.Mode == StrikeSpoked {
		return s.NumStrikes
	}
	return 1
}

type weightedStrike struct {
	strike, weight float64
}

// strikeSampler yields the strikes of one bin.
type strikeSampler struct {
	p   StrikeParams
	uni distuv.Uniform
}

func newStrikeSampler(p StrikeParams, src rand.Source) *strikeSampler {
	return &strikeSampler{p: p, uni: distuv.Uniform{Min: -90, Max: 90, Src: src}}
}

func (s *strikeSampler) next() []weightedStrike {
	switch s.p.Mode {
	case StrikeFixed:
		return []weightedStrike{{s.p.Strike, 1}}
	case StrikeSpoked:
		out := make([]weightedStrike, s.p.NumStrikes)
		step := 180 / float64(s.p.NumStrikes)
		for k := range out {
			out[k] = weightedStrike{s.p.FirstStrike + float64(k)*step, 1 / float64(s.p.NumStrikes)}
		}
		return out
	default:
		return []weightedStrike{{s.uni.Rand(), 1}}
	}
}

// LineParams configures the conversion of point ruptures to line ruptures.
type LineParams struct {
	// Scaling maps magnitude to rupture area or length.
	Scaling scaling.Relationship
	// LowerSeisDepth is the bottom of the seismogenic zone in km. Area
	// relationships divide by the down-dip width between rupture top and
	// this depth.
	LowerSeisDepth float64
	Strike         StrikeParams
	// Spacing of the line surface grid in km. Zero means DefaultLineSpacing.
	Spacing float64
}

func (p *LineParams) validate(dists []magfreq.MechanismDist, depth DepthParams) error {
	if p.Scaling == nil {
		return ErrNilInput
	}
	switch p.Scaling.Kind() {
	case scaling.KindArea:
		if d := depth.maxDepth(); d >= p.LowerSeisDepth {
			return fmt.Errorf("%w: depth %v, lower %v", ErrBadDepth, d, p.LowerSeisDepth)
		}
	case scaling.KindLength:
	default:
		return fmt.Errorf("%s: %w", p.Scaling.Name(), scaling.ErrUnsupportedKind)
	}
	for _, md := range dists {
		if dip := md.Mechanism.Dip; !(dip > 0 && dip <= 90) {
			return fmt.Errorf("dip %v: %w", dip, surface.ErrBadDip)
		}
	}
	if p.Spacing == 0 {
		p.Spacing = DefaultLineSpacing
	}
	return p.Strike.validate()
}

// length returns the rupture length in km for mag at rupture-top depth.
func (p *LineParams) length(mag, depth, dip float64) float64 {
	median := p.Scaling.Median(mag)
	if p.Scaling.Kind() == scaling.KindArea {
		ddw := math.Abs(p.LowerSeisDepth-depth) / math.Sin(dip*math.Pi/180)
		return median / ddw
	}
	return median
}

// lineSurface returns the single-row surface of given length centred on loc.
func lineSurface(loc geo.Location, strike, length, depth, dip, spacing float64) (*surface.Gridded, error) {
	half := length / 2
	a := geo.Destination(loc, strike+180, half, 0)
	b := geo.Destination(loc, strike, half, 0)
	return surface.NewLine(a, b, dip, depth, spacing)
}

// lineRuptures appends line ruptures centred on loc for every mechanism,
// bin and strike. Rates are multiplied by weight and the strike weight.
func lineRuptures(out *generated, loc geo.Location, dists []magfreq.MechanismDist, depth DepthParams,
	p *LineParams, strikes *strikeSampler, weight, minMag float64) error {
	for _, md := range dists {
		for i := 0; i < md.MFD.Len(); i++ {
			mag, rate := md.MFD.Mag(i), md.MFD.Rate(i)
			if !(rate > 0) || mag < minMag {
				continue
			}
			d := depth.DepthFor(mag)
			length := p.length(mag, d, md.Mechanism.Dip)
			for _, ws := range strikes.next() {
				surf, err := lineSurface(loc, ws.strike, length, d, md.Mechanism.Dip, p.Spacing)
				if err != nil {
					return fmt.Errorf("line rupture M%.2f: %w", mag, err)
				}
				hypo := loc
				hypo.Depth = d
				out.add(&rupture.Rupture{
					Mag:        mag,
					Rake:       md.Mechanism.Rake,
					Surface:    surf,
					Hypocenter: &hypo,
				}, weight*ws.weight*rate)
			}
		}
	}
	return nil
}

// PointToLine converts the point ruptures of one location into finite line
// ruptures. Ruptures are built on first access.
type PointToLine struct {
	base
	dist  magfreq.PointDist
	depth DepthParams
	line  LineParams
	src   rand.Source

	once sync.Once
	gen  generated
	err  error
}

var _ Source = (*PointToLine)(nil)

// NewPointToLine validates the configuration and returns a lazily built
// point-to-line source.
//
// Complexity: O(K) here; O(K·M·S·L) on first access for K mechanisms, M
// bins, S strikes per bin and L grid points per line.
func NewPointToLine(dist magfreq.PointDist, depth DepthParams, line LineParams, opts ...Option) (*PointToLine, error) {
	if err := checkDists(dist.Dists); err != nil {
		return nil, err
	}
	if err := line.validate(dist.Dists, depth); err != nil {
		return nil, err
	}
	o := gatherOptions("Point-to-Line Source", opts)
	return &PointToLine{base: newBase(o, true), dist: dist, depth: depth, line: line, src: o.src}, nil
}

func (s *PointToLine) build() {
	s.once.Do(func() {
		s.err = lineRuptures(&s.gen, s.dist.Location, s.dist.Dists, s.depth, &s.line,
			newStrikeSampler(s.line.Strike, s.src), 1, s.minMag)
		if s.err != nil {
			s.gen = generated{}
		}
		s.gen.setProbs(s.duration)
		s.log.Debug("line ruptures generated",
			slog.Int("ruptures", len(s.gen.ruptures)),
			slog.String("strikes", s.line.Strike.Mode.String()))
	})
}

// Err returns the error of the deferred build, if any.
func (s *PointToLine) Err() error {
	s.build()
	return s.err
}

// NumRuptures implements Source.
func (s *PointToLine) NumRuptures() int {
	s.build()
	return s.gen.NumRuptures()
}

// Rupture implements Source.
func (s *PointToLine) Rupture(i int) (*rupture.Rupture, error) {
	s.build()
	if s.err != nil {
		return nil, s.err
	}
	return s.gen.Rupture(i)
}

// MinDistance implements Source. The distance is measured to the point
// location.
func (s *PointToLine) MinDistance(site geo.Location) float64 {
	return geo.HorzDistance(s.dist.Location, site)
}

// SetDuration implements Source.
func (s *PointToLine) SetDuration(d float64) error {
	if err := s.checkDuration(d); err != nil {
		return err
	}
	s.build()
	s.gen.setProbs(d)
	s.duration = d
	return nil
}
