// SPDX-License-Identifier: MIT

package source

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/magfreq"
	"github.com/katalvlaran/rupcast/rupture"
	"github.com/katalvlaran/rupcast/scaling"
	"github.com/katalvlaran/rupcast/surface"
)

// FloaterMode selects how ruptures are placed on the fault surface.
type FloaterMode int

const (
	// FullDownDipWidth forces every rupture to span the whole down-dip
	// width and floats it along strike only.
	FullDownDipWidth FloaterMode = iota
	// AlongStrikeAndDownDip floats ruptures along strike and down dip.
	AlongStrikeAndDownDip
	// AlongStrikeCenteredDownDip floats along strike with each rupture
	// centred down dip.
	AlongStrikeCenteredDownDip
)

// String implements fmt.Stringer.
func (m FloaterMode) String() string {
	switch m {
	case FullDownDipWidth:
		return "full-ddw"
	case AlongStrikeAndDownDip:
		return "strike-and-dip"
	case AlongStrikeCenteredDownDip:
		return "strike-centered-dip"
	default:
		return fmt.Sprintf("FloaterMode(%d)", int(m))
	}
}

// FloatingParams configures a floating fault source.
type FloatingParams struct {
	// MFD supplies the magnitude bins and annual rates. For a fixed
	// probability source the rates are only relative weights.
	MFD magfreq.Supplier
	// Surface is the fault the ruptures float on.
	Surface *surface.Gridded
	// Scaling maps magnitude to rupture area or length.
	Scaling scaling.Relationship
	// Sigma is the scaling uncertainty in log10 units; 0 disables branching.
	Sigma float64
	// AspectRatio is rupture length over width.
	AspectRatio float64
	// Offset is the floating step in km.
	Offset float64
	// Rake of every rupture in degrees.
	Rake float64
	// Mode selects the placement strategy.
	Mode FloaterMode
	// FullRuptureMag is the magnitude at and above which a single
	// whole-fault rupture is emitted. Zero turns every bin into a whole-fault
	// rupture; DefaultFullRuptureMag keeps every realistic magnitude floating.
	FullRuptureMag float64
}

func (p *FloatingParams) validate() error {
	if p.MFD == nil || p.Surface == nil || p.Scaling == nil {
		return ErrNilInput
	}
	if !(p.AspectRatio > 0) {
		return fmt.Errorf("%w: %v", ErrBadAspectRatio, p.AspectRatio)
	}
	if !(p.Offset > 0) {
		return fmt.Errorf("%w: %v", ErrBadOffset, p.Offset)
	}
	switch p.Scaling.Kind() {
	case scaling.KindArea, scaling.KindLength:
	default:
		return fmt.Errorf("%s: %w", p.Scaling.Name(), scaling.ErrUnsupportedKind)
	}
	return nil
}

// FloatingFault floats finite ruptures over a fixed fault surface.
type FloatingFault struct {
	base
	ruptureList
	surface *surface.Gridded
}

var _ Source = (*FloatingFault)(nil)

// NewFloatingFault builds a Poissonian floating source. Each rupture has
// probability 1 - exp(-duration · w · rate / placements), where w is the
// weight of its scaling branch.
//
// Complexity: O(B·M·P) for B branches, M bins and P placements per bin.
func NewFloatingFault(p FloatingParams, opts ...Option) (*FloatingFault, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	o := gatherOptions("Floating Poisson Fault Source", opts)
	f := &FloatingFault{base: newBase(o, true), surface: p.Surface}
	dur := o.duration
	prob := func(weight, rate float64, placements int) float64 {
		return rupture.PoissonProb(weight*rate/float64(placements), dur)
	}
	if err := f.generate(p, prob); err != nil {
		return nil, err
	}
	return f, nil
}

// NewFloatingFaultPDF builds a fixed probability floating source. MFD
// rates act as a relative weighting: each rupture has probability
// totalProb · w · (rate/Σrate) / placements, where Σrate covers only the
// bins that produce ruptures, so the probabilities sum to totalProb.
// SetDuration is rejected with ErrNotPoissonian.
//
// Complexity: O(B·M·P).
func NewFloatingFaultPDF(p FloatingParams, totalProb float64, opts ...Option) (*FloatingFault, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if !(totalProb > 0 && totalProb <= 1) {
		return nil, fmt.Errorf("%w: %v", ErrBadProbability, totalProb)
	}
	o := gatherOptions("Floating Fault Source", opts)
	f := &FloatingFault{base: newBase(o, false), surface: p.Surface}
	sum := 0.0
	for i := 0; i < p.MFD.Len(); i++ {
		if mag, rate := p.MFD.Mag(i), p.MFD.Rate(i); floats(mag, rate, f.minMag) {
			sum += rate
		}
	}
	prob := func(weight, rate float64, placements int) float64 {
		return totalProb * weight * (rate / sum) / float64(placements)
	}
	if err := f.generate(p, prob); err != nil {
		return nil, err
	}
	return f, nil
}

// generate emits ruptures branch by branch, bin by bin, placement by
// placement. It only appends to f.ruptures.
func (f *FloatingFault) generate(p FloatingParams, prob func(weight, rate float64, placements int) float64) error {
	ddw := p.Surface.Width()
	branches := scaling.Branches(p.Sigma)
	for _, br := range branches {
		for i := 0; i < p.MFD.Len(); i++ {
			mag, rate := p.MFD.Mag(i), p.MFD.Rate(i)
			if !floats(mag, rate, f.minMag) {
				continue
			}
			if mag >= p.FullRuptureMag {
				f.ruptures = append(f.ruptures, &rupture.Rupture{
					Mag:     mag,
					Rake:    p.Rake,
					Prob:    prob(br.Weight, rate, 1),
					Surface: p.Surface,
				})
				continue
			}
			length, width, err := floaterDims(p.Scaling, mag, p.Sigma, br.NumSigma, p.AspectRatio, ddw)
			if err != nil {
				return err
			}
			if p.Mode == FullDownDipWidth {
				width = 2 * ddw
			}
			if err := f.place(p, length, width, mag, prob(br.Weight, rate, f.count(p, length, width))); err != nil {
				return err
			}
		}
	}
	f.log.Debug("floating ruptures generated",
		slog.Int("ruptures", len(f.ruptures)),
		slog.Int("branches", len(branches)),
		slog.String("mode", p.Mode.String()),
		slog.String("scaling", p.Scaling.Name()))
	return nil
}

// floats reports whether a bin produces ruptures.
func floats(mag, rate, minMag float64) bool {
	return !(rate <= minRate || mag < minMag)
}

// count returns the number of placements for a length×width rupture.
func (f *FloatingFault) count(p FloatingParams, length, width float64) int {
	if p.Mode == AlongStrikeCenteredDownDip {
		return p.Surface.NumSubsetsAlongLength(length, p.Offset)
	}
	return p.Surface.NumSubsets(length, width, p.Offset)
}

// place appends one rupture per placement, each with probability pr.
func (f *FloatingFault) place(p FloatingParams, length, width, mag, pr float64) error {
	n := f.count(p, length, width)
	for k := 0; k < n; k++ {
		var (
			sub *surface.Subset
			err error
		)
		if p.Mode == AlongStrikeCenteredDownDip {
			sub, err = p.Surface.SubsetCenteredDownDip(length, width, p.Offset, k)
		} else {
			sub, err = p.Surface.Subset(length, width, p.Offset, k)
		}
		if err != nil {
			return err
		}
		f.ruptures = append(f.ruptures, &rupture.Rupture{
			Mag:     mag,
			Rake:    p.Rake,
			Prob:    pr,
			Surface: sub,
		})
	}
	return nil
}

// floaterDims returns rupture length and width in km for one magnitude and
// scaling branch. Area ruptures wider than the fault are clipped to its
// width with the length stretched to conserve area.
func floaterDims(rel scaling.Relationship, mag, sigma, numSigma, aspect, ddw float64) (length, width float64, err error) {
	switch rel.Kind() {
	case scaling.KindArea:
		area := scaling.Scaled(rel, mag, sigma, numSigma)
		length = math.Sqrt(area * aspect)
		width = length / aspect
		if width > ddw {
			length *= width / ddw
			width = ddw
		}
	case scaling.KindLength:
		length = scaling.Scaled(rel, mag, sigma, numSigma)
		width = length / aspect
	default:
		return 0, 0, fmt.Errorf("%s: %w", rel.Name(), scaling.ErrUnsupportedKind)
	}
	return length, width, nil
}

// Surface returns the fault surface ruptures float on.
func (f *FloatingFault) Surface() *surface.Gridded { return f.surface }

// MinDistance implements Source.
func (f *FloatingFault) MinDistance(site geo.Location) float64 {
	return surface.MinHorzDistance(f.surface, site)
}

// SetDuration implements Source.
func (f *FloatingFault) SetDuration(d float64) error {
	if err := f.checkDuration(d); err != nil {
		return err
	}
	f.rescale(f.duration, d)
	f.duration = d
	return nil
}
