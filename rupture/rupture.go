// SPDX-License-Identifier: MIT

// Package rupture defines the probabilistic rupture, the atomic output of a
// source, and the Poisson arithmetic that links annual rates, durations and
// probabilities.
//
// All conversions use expm1/log1p so that tiny rates keep a strictly
// positive probability and rate → probability → rate round-trips are exact
// to floating-point precision.
package rupture

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rupcast/geo"
	"github.com/katalvlaran/rupcast/surface"
)

// Rupture is one possible earthquake: magnitude, rake, probability of
// occurrence and the surface it breaks. Surface is a non-owning handle to
// geometry held by the source.
type Rupture struct {
	Mag        float64
	Rake       float64
	Prob       float64
	Surface    surface.Surface
	Hypocenter *geo.Location
}

// String implements fmt.Stringer.
func (r *Rupture) String() string {
	rows, cols := 0, 0
	if r.Surface != nil {
		rows, cols = r.Surface.NumRows(), r.Surface.NumCols()
	}
	return fmt.Sprintf("M%.2f rake=%.1f p=%.6g surface=%dx%d", r.Mag, r.Rake, r.Prob, rows, cols)
}

// PoissonProb returns the probability of at least one event in duration
// years for an annual rate: 1 - exp(-rate·duration).
// Complexity: O(1).
func PoissonProb(rate, duration float64) float64 {
	return -math.Expm1(-rate * duration)
}

// PoissonRate inverts PoissonProb: the annual rate implied by prob over
// duration years, -ln(1 - prob)/duration.
// Complexity: O(1).
func PoissonRate(prob, duration float64) float64 {
	return -math.Log1p(-prob) / duration
}

// RescaleProb converts a probability computed for oldDuration into the
// probability for newDuration under the same annual rate.
// Complexity: O(1).
func RescaleProb(prob, oldDuration, newDuration float64) float64 {
	return PoissonProb(PoissonRate(prob, oldDuration), newDuration)
}
