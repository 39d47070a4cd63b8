// SPDX-License-Identifier: MIT

package erf

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/magfreq"
	"github.com/katalvlaran/rupcast/source"
)

// Kind names the source archetype a forecast builds.
type Kind string

const (
	KindFault         Kind = "fault"
	KindFloatingFault Kind = "floating-fault"
	KindSingleRupture Kind = "single-rupture"
	KindPoint         Kind = "point"
	KindPointLine     Kind = "point-line"
	KindArea          Kind = "area"
	KindGriddedRegion Kind = "gridded-region"
)

// Kinds lists every supported kind.
var Kinds = []Kind{
	KindFault, KindFloatingFault, KindSingleRupture,
	KindPoint, KindPointLine, KindArea, KindGriddedRegion,
}

// MFD types accepted in MFD.Type.
const (
	MFDSingle           = "single"
	MFDBins             = "bins"
	MFDGutenbergRichter = "gutenberg-richter"
	MFDSlipRate         = "slip-rate"
	MFDGaussian         = "gaussian"
)

// ShearModulus is the rigidity in Pa used to turn slip rate into moment rate.
const ShearModulus = 3e10

// Parameters describes one source. Blocks irrelevant to Kind are ignored.
type Parameters struct {
	Name     string  `yaml:"name"`
	Kind     Kind    `yaml:"kind"`
	Duration float64 `yaml:"duration"`
	MinMag   float64 `yaml:"min_mag"`
	// Seed drives random strikes; 0 draws a fresh sequence every build.
	Seed uint64 `yaml:"seed"`

	MFD      MFD      `yaml:"mfd"`
	Fault    Fault    `yaml:"fault"`
	Floating Floating `yaml:"floating"`
	Single   Single   `yaml:"single"`
	Point    Point    `yaml:"point"`
	Line     Line     `yaml:"line"`
	Region   Region   `yaml:"region"`
}

// MFD describes a magnitude-frequency distribution.
type MFD struct {
	Type string `yaml:"type"`

	// evenly discretised types
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
	Num int     `yaml:"num"`

	// single
	Mag  float64 `yaml:"mag"`
	Rate float64 `yaml:"rate"`

	// bins
	Mags  []float64 `yaml:"mags"`
	Rates []float64 `yaml:"rates"`

	// gutenberg-richter and slip-rate
	BValue     float64 `yaml:"b_value"`
	MagLower   float64 `yaml:"mag_lower"`
	MagUpper   float64 `yaml:"mag_upper"`
	MomentRate float64 `yaml:"moment_rate"`
	// SlipRate in mm/yr; moment rate = ShearModulus · fault area · slip.
	SlipRate float64 `yaml:"slip_rate"`

	// gaussian
	Mean      float64 `yaml:"mean"`
	StdDev    float64 `yaml:"std_dev"`
	TotalRate float64 `yaml:"total_rate"`
}

// Fault describes a simple fault surface.
type Fault struct {
	Trace []geo.Location `yaml:"trace"`
	// ReverseTrace flips the trace so the fault dips to the other side.
	ReverseTrace bool    `yaml:"reverse_trace"`
	Dip          float64 `yaml:"dip"`
	UpperDepth   float64 `yaml:"upper_depth"`
	LowerDepth   float64 `yaml:"lower_depth"`
	Spacing      float64 `yaml:"spacing"`
	Rake         float64 `yaml:"rake"`
}

// Floating configures floating ruptures.
type Floating struct {
	Scaling        string  `yaml:"scaling"`
	Sigma          float64 `yaml:"sigma"`
	AspectRatio    float64 `yaml:"aspect_ratio"`
	Offset         float64 `yaml:"offset"`
	Mode           string  `yaml:"mode"`
	// FullRuptureMag is the whole-fault threshold; nil means
	// source.DefaultFullRuptureMag and 0 disables floating.
	FullRuptureMag *float64 `yaml:"full_rupture_mag"`
	// TotalProb > 0 selects fixed probabilities summing to TotalProb.
	TotalProb float64 `yaml:"total_prob"`
}

// Single describes the one rupture of a single-rupture source.
type Single struct {
	Mag  float64 `yaml:"mag"`
	Prob float64 `yaml:"prob"`
}

// Point describes hypocentral distributions at a location (or at every
// node for area sources).
type Point struct {
	Location     geo.Location `yaml:"location"`
	Mechanisms   []Mechanism  `yaml:"mechanisms"`
	DefaultDepth float64      `yaml:"default_depth"`
	DepthTable   []DepthEntry `yaml:"depth_table"`
}

// Mechanism pairs a focal mechanism with its distribution.
type Mechanism struct {
	magfreq.FocalMechanism `yaml:",inline"`
	MFD                    MFD `yaml:"mfd"`
}

// DepthEntry is one row of the rupture-top depth table.
type DepthEntry struct {
	Mag   float64 `yaml:"mag"`
	Depth float64 `yaml:"depth"`
}

// Line configures point-to-line ruptures.
type Line struct {
	Scaling        string  `yaml:"scaling"`
	LowerSeisDepth float64 `yaml:"lower_seis_depth"`
	StrikeMode     string  `yaml:"strike_mode"`
	Strike         float64 `yaml:"strike"`
	NumStrikes     int     `yaml:"num_strikes"`
	FirstStrike    float64 `yaml:"first_strike"`
	Spacing        float64 `yaml:"spacing"`
}

// Region describes a gridded region.
type Region struct {
	Border  []geo.Location `yaml:"border"`
	Spacing float64        `yaml:"spacing"`
	// Mode is "point" or "line" for area sources.
	Mode string `yaml:"mode"`
	// Mechanism and Depth apply to gridded-region sources.
	Mechanism magfreq.FocalMechanism `yaml:"mechanism"`
	Depth     float64                `yaml:"depth"`
}

// PEER non-planar fault trace, south to north, at 1 km depth.
var peerTrace = []geo.Location{
	{Lat: 37.609531, Lon: -121.7168636, Depth: 1},
	{Lat: 37.804854, Lon: -121.8580591, Depth: 1},
	{Lat: 38.000000, Lon: -122.0000000, Depth: 1},
	{Lat: 38.224800, Lon: -122.0000000, Depth: 1},
	{Lat: 38.419959, Lon: -121.8568637, Depth: 1},
	{Lat: 38.614736, Lon: -121.7129562, Depth: 1},
}

// DefaultParameters returns the PEER non-planar fault forecast: a 60° east
// dipping normal fault between 1 and 12 km, floating PEER-area ruptures of
// aspect ratio 2 every 1 km, under a Gutenberg-Richter distribution
// (b = 0.9, M ≤ 7.15) balancing a 2 mm/yr slip rate.
func DefaultParameters() Parameters {
	return Parameters{
		Name:     "PEER Non Planar Fault Forecast",
		Kind:     KindFloatingFault,
		Duration: source.DefaultDuration,
		MinMag:   source.DefaultMinMag,
		MFD: MFD{
			Type:     MFDSlipRate,
			Min:      0.05,
			Max:      9.95,
			Num:      100,
			BValue:   0.9,
			MagLower: 0.05,
			MagUpper: 7.15,
			SlipRate: 2,
		},
		Fault: Fault{
			Trace:      append([]geo.Location(nil), peerTrace...),
			Dip:        60,
			UpperDepth: 1,
			LowerDepth: 12,
			Spacing:    1,
			Rake:       -90,
		},
		Floating: Floating{
			Scaling:     "peer-area",
			AspectRatio: 2,
			Offset:      1,
			Mode:        source.AlongStrikeAndDownDip.String(),
		},
	}
}

// Poissonian reports whether the source built from p derives its
// probabilities from rates and a duration.
func (p Parameters) Poissonian() bool {
	switch {
	case p.Kind == KindSingleRupture:
		return false
	case p.Kind == KindFloatingFault && p.Floating.TotalProb > 0:
		return false
	}
	return true
}

// Validate checks the settings shared by every kind. Kind-specific
// settings are checked when the source is built.
func (p Parameters) Validate() error {
	known := false
	for _, k := range Kinds {
		known = known || p.Kind == k
	}
	if !known {
		return fmt.Errorf("%w: unknown kind %q", ErrBadParameters, p.Kind)
	}
	if !(p.Duration > 0) || math.IsInf(p.Duration, 0) {
		return fmt.Errorf("%w: duration %v: %w", ErrBadParameters, p.Duration, source.ErrBadDuration)
	}
	if math.IsNaN(p.MinMag) {
		return fmt.Errorf("%w: min_mag is NaN", ErrBadParameters)
	}
	return nil
}
