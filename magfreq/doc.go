// SPDX-License-Identifier: MIT

// Package magfreq supplies magnitude-frequency distributions: ordered
// (magnitude, rate) bins consumed by rupture sources.
//
// What:
//
//   - Supplier is the read-only view sources depend on: Len, Mag(i), Rate(i).
//   - Dist is the concrete distribution. Rates are annual occurrence rates for
//     Poissonian sources or relative weights when a source normalises them
//     into a magnitude PDF.
//   - NewGutenbergRichter, NewGaussian, NewSingle and FromBins build the usual
//     shapes; ScaleToTotalRate and ScaleToMomentRate rescale them.
//   - FocalMechanism, MechanismDist and PointDist attach distributions to a
//     strike/dip/rake and to a location for point-based sources.
//
// Seismic moment follows Hanks & Kanamori: M0 = 10^(1.5·m + 9.05) N·m.
//
// Errors:
//
//   - ErrBadBins: invalid discretisation (num < 1, max < min, ...).
//   - ErrLengthMismatch: magnitude and rate slices differ in length.
//   - ErrNegativeRate: a rate below zero.
//   - ErrBinIndex: a bin index out of range.
//   - ErrZeroTotal: rescaling a distribution whose total is zero.
package magfreq
