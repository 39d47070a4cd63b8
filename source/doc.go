// SPDX-License-Identifier: MIT

// Package source turns abstract seismic sources into indexable sets of
// probabilistic ruptures.
//
// What:
//
//   - Source is the contract hazard integrators consume: NumRuptures,
//     Rupture(i), MinDistance(site), IsPoissonian and, for Poissonian
//     sources, SetDuration.
//   - FloatingFault floats finite ruptures over a fixed gridded fault surface,
//     one magnitude bin and scaling-sigma branch at a time. Rupture
//     dimensions come from a scaling.Relationship, placements from the
//     surface, and each bin's rate is split evenly over its placements.
//   - Fault emits whole-surface ruptures: one per magnitude bin (Poissonian)
//     or a single rupture with a fixed probability.
//   - Point emits point ruptures per focal mechanism and magnitude bin.
//   - PointToLine converts a point into finite line ruptures with fixed,
//     random or spoked strikes.
//   - Area spreads point or line ruptures over the nodes of a gridded region
//     with cos(latitude) area weights.
//   - GriddedRegion divides one distribution evenly over region nodes and
//     emits point ruptures at a fixed mechanism and depth.
//
// Probabilities:
//
//	Poissonian:      p = 1 - exp(-duration · weight · rate / placements)
//	Fixed (PDF):     p = totalProb · weight · (rate/Σrate) / placements
//
// SetDuration recovers each rupture's annual rate from the previous duration
// and recomputes its probability. Rescaling is exact to floating-point
// precision and idempotent.
//
// Enumeration order of FloatingFault: scaling branches outermost, then
// magnitude ascending, then placement index.
//
// Concurrency:
//
//   - Sources are not safe for concurrent mutation. Construction is a single
//     synchronous pass; PointToLine and Area build lazily on first read under
//     a sync.Once, SetDuration must be serialised by the caller.
//
// Errors:
//
//   - ErrNotPoissonian: SetDuration on a fixed-probability source.
//   - ErrRuptureIndex: rupture index out of range.
//   - ErrBadDuration, ErrBadAspectRatio, ErrBadOffset, ErrBadProbability,
//     ErrBadStrikes, ErrBadDepth, ErrNilInput: configuration errors.
//   - ErrInconsistentCount: generated rupture count disagrees with the
//     independent per-node accounting (an internal defect).
//   - scaling.ErrUnsupportedKind (wrapped): scaling relationship of unknown kind.
//
// Numeric policy: NaN magnitudes, rates and depths are not rejected; they
// propagate through the arithmetic. Structural inputs are validated.
package source
