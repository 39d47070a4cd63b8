// SPDX-License-Identifier: MIT

package magfreq

import "errors"

var (
	// ErrBadBins indicates an invalid magnitude discretisation.
	ErrBadBins = errors.New("magfreq: invalid magnitude bins")
	// ErrLengthMismatch indicates magnitude and rate slices of different length.
	ErrLengthMismatch = errors.New("magfreq: magnitudes and rates differ in length")
	// ErrNegativeRate indicates a negative rate.
	ErrNegativeRate = errors.New("magfreq: rate must be non-negative")
	// ErrBinIndex indicates a bin index out of range.
	ErrBinIndex = errors.New("magfreq: bin index out of range")
	// ErrZeroTotal indicates a rescale of an all-zero distribution.
	ErrZeroTotal = errors.New("magfreq: distribution total is zero")
)
