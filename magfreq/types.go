// SPDX-License-Identifier: MIT

package magfreq

import "github.com/katalvlaran/rupcast/geo"

// Supplier produces ordered (magnitude, rate) bins.
type Supplier interface {
	// Len returns the number of bins.
	Len() int
	// Mag returns the magnitude of bin i.
	Mag(i int) float64
	// Rate returns the rate of bin i.
	Rate(i int) float64
}

// FocalMechanism is the orientation of slip, in degrees.
type FocalMechanism struct {
	Strike float64 `yaml:"strike"`
	Dip    float64 `yaml:"dip"`
	Rake   float64 `yaml:"rake"`
}

// MechanismDist pairs a distribution with the focal mechanism of its ruptures.
type MechanismDist struct {
	MFD       Supplier
	Mechanism FocalMechanism
}

// PointDist is the set of hypocentral distributions at one location,
// one per focal mechanism.
type PointDist struct {
	Location geo.Location
	Dists    []MechanismDist
}
