// SPDX-License-Identifier: MIT

package source

import "errors"

var (
	// ErrNotPoissonian indicates a duration change on a fixed-probability source.
	ErrNotPoissonian = errors.New("source: duration is undefined for a non-Poissonian source")
	// ErrRuptureIndex indicates a rupture index out of range.
	ErrRuptureIndex = errors.New("source: rupture index out of range")
	// ErrBadDuration indicates a non-positive or non-finite duration.
	ErrBadDuration = errors.New("source: duration must be positive and finite")
	// ErrBadAspectRatio indicates a non-positive rupture aspect ratio.
	ErrBadAspectRatio = errors.New("source: aspect ratio must be positive")
	// ErrBadOffset indicates a non-positive floating offset.
	ErrBadOffset = errors.New("source: rupture offset must be positive")
	// ErrBadProbability indicates a probability outside (0, 1].
	ErrBadProbability = errors.New("source: probability must be in (0, 1]")
	// ErrBadStrikes indicates an invalid strike configuration.
	ErrBadStrikes = errors.New("source: invalid strike configuration")
	// ErrBadDepth indicates a rupture depth at or below the lower seismogenic depth.
	ErrBadDepth = errors.New("source: rupture depth must be above the lower seismogenic depth")
	// ErrNilInput indicates a missing distribution, surface, region or relationship.
	ErrNilInput = errors.New("source: required input is nil")
	// ErrInconsistentCount indicates a rupture count that disagrees with the expected accounting.
	ErrInconsistentCount = errors.New("source: rupture count does not match expected count")
)
