// SPDX-License-Identifier: MIT

package geo

import "errors"

var (
	// ErrTooFewVertices indicates a region border with fewer than three vertices.
	ErrTooFewVertices = errors.New("geo: region border needs at least three vertices")
	// ErrEmptyRegion indicates that no grid node falls inside the region.
	ErrEmptyRegion = errors.New("geo: gridded region has no nodes")
	// ErrBadSpacing indicates a non-positive or non-finite grid spacing.
	ErrBadSpacing = errors.New("geo: grid spacing must be positive and finite")
	// ErrNodeIndex indicates a node index outside the gridded region.
	ErrNodeIndex = errors.New("geo: node index out of range")
)
