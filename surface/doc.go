// SPDX-License-Identifier: MIT

// Package surface provides gridded rupture surfaces and the placement of
// smaller floating sub-surfaces across them.
//
// What:
//
//   - Surface is the read-only view a rupture holds: a rows×cols grid of
//     locations (row 0 is the top edge, col 0 the first trace point) with its
//     along-strike length, down-dip width, average dip and strike.
//   - Gridded is an evenly gridded fault surface built from a trace, a dip and
//     upper/lower seismogenic depths (NewSimpleFault). NewLine builds the
//     single-row surface of a two-point trace at a fixed depth.
//   - Subset is a non-owning rectangular view of a Gridded surface. Subsets are
//     enumerated either along strike and down dip (NumSubsets/Subset) or along
//     strike only, centred down dip (NumSubsetsAlongLength/SubsetCenteredDownDip).
//   - Point is the degenerate one-location surface of a point rupture.
//
// Placement arithmetic:
//
//	cols    = rint(length/strikeSpacing + 1)   clamped to [1, NumCols]
//	rows    = rint(width/dipSpacing + 1)       clamped to [1, NumRows]
//	offCols = rint(offset/strikeSpacing)       at least 1
//	offRows = rint(offset/dipSpacing)          at least 1
//	nAlong  = (NumCols - cols)/offCols + 1
//	nDown   = (NumRows - rows)/offRows + 1
//
// Subset n starts at column (n mod nAlong)·offCols and row (n div nAlong)·offRows.
// A width larger than the surface clamps to the full down-dip extent.
//
// Errors:
//
//   - ErrShortTrace: a trace needs two distinct points.
//   - ErrBadDip: dip must lie in (0, 90].
//   - ErrBadDepths: 0 ≤ upper ≤ lower is required.
//   - ErrBadSpacing: grid spacing must be positive and finite.
//   - ErrSubsetIndex: subset index out of range.
package surface
