// SPDX-License-Identifier: MIT

// Package discretized holds arbitrarily discretised x→y functions.
//
// Sources use Func as the magnitude-indexed rupture-top depth table: a
// magnitude at or above MinX is mapped to the y value of the closest x;
// callers substitute their own default below the domain.
//
// Errors:
//
//   - ErrEmpty: no points given.
//   - ErrLengthMismatch: x and y differ in length.
//   - ErrNotIncreasing: x values are not strictly increasing.
package discretized
