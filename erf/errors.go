// SPDX-License-Identifier: MIT

package erf

import "errors"

var (
	// ErrSourceIndex indicates a source index other than 0.
	ErrSourceIndex = errors.New("erf: source index out of range")
	// ErrStale indicates a read of the source while parameters changed since the last rebuild.
	ErrStale = errors.New("erf: forecast is stale; call UpdateForecast")
	// ErrBadParameters indicates parameters that cannot describe a source.
	ErrBadParameters = errors.New("erf: invalid parameters")
)
