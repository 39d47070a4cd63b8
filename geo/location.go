// SPDX-License-Identifier: MIT

package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadius is the mean radius of the Earth in km.
const EarthRadius = 6371.0072

// Location is a point on or below the Earth's surface.
// Lat and Lon are decimal degrees, Depth is km positive down.
type Location struct {
	Lat   float64 `yaml:"lat"`
	Lon   float64 `yaml:"lon"`
	Depth float64 `yaml:"depth"`
}

// NewLocation returns a Location at the given coordinates.
func NewLocation(lat, lon, depth float64) Location {
	return Location{Lat: lat, Lon: lon, Depth: depth}
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("(%.5f, %.5f, %.3f)", l.Lat, l.Lon, l.Depth)
}

// point converts l to an orb point (lon, lat).
func (l Location) point() orb.Point { return orb.Point{l.Lon, l.Lat} }

// orbMeters converts km on EarthRadius to metres on orb's sphere at the same
// angular distance.
func orbMeters(km float64) float64 { return km / EarthRadius * orb.EarthRadius }

// HorzDistance returns the great-circle distance in km between the surface
// projections of a and b (haversine formula).
// Complexity: O(1).
func HorzDistance(a, b Location) float64 {
	return orbgeo.DistanceHaversine(a.point(), b.point()) / orb.EarthRadius * EarthRadius
}

// LinearDistance returns the straight-line distance in km combining the
// horizontal distance with the depth difference.
func LinearDistance(a, b Location) float64 {
	h := HorzDistance(a, b)
	v := b.Depth - a.Depth
	return math.Sqrt(h*h + v*v)
}

// Azimuth returns the initial bearing in degrees [0, 360) of the great circle
// from a to b, measured clockwise from north.
// Complexity: O(1).
func Azimuth(a, b Location) float64 {
	return NormalizeAzimuth(orbgeo.Bearing(a.point(), b.point()))
}

// NormalizeAzimuth maps any angle in degrees to [0, 360).
func NormalizeAzimuth(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Destination returns the location reached by travelling horzDist km from
// origin along the great circle with initial bearing azimuth (degrees),
// and vertDist km downward.
// Complexity: O(1).
func Destination(origin Location, azimuth, horzDist, vertDist float64) Location {
	p := orbgeo.PointAtBearingAndDistance(origin.point(), azimuth, orbMeters(horzDist))
	return Location{
		Lat:   p.Lat(),
		Lon:   normalizeLon(p.Lon()),
		Depth: origin.Depth + vertDist,
	}
}

// normalizeLon maps a longitude in degrees to [-180, 180).
func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
