// SPDX-License-Identifier: MIT

package surface

import "errors"

var (
	// ErrShortTrace indicates a trace with fewer than two distinct points.
	ErrShortTrace = errors.New("surface: trace needs at least two distinct points")
	// ErrBadDip indicates a dip outside (0, 90] degrees.
	ErrBadDip = errors.New("surface: dip must be in (0, 90]")
	// ErrBadDepths indicates inconsistent seismogenic depths.
	ErrBadDepths = errors.New("surface: need 0 <= upper depth <= lower depth")
	// ErrBadSpacing indicates a non-positive or non-finite grid spacing.
	ErrBadSpacing = errors.New("surface: grid spacing must be positive and finite")
	// ErrSubsetIndex indicates a subset index out of range.
	ErrSubsetIndex = errors.New("surface: subset index out of range")
)
