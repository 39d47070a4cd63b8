// SPDX-License-Identifier: MIT

// Package scaling implements magnitude-scaling relationships: the median
// rupture area or length of an earthquake of a given magnitude, with a
// log10 standard deviation.
//
// A Relationship carries a Kind tag. Code that turns a magnitude into rupture
// dimensions matches on the tag (KindArea or KindLength) instead of
// inspecting concrete types; any other tag is ErrUnsupportedKind.
//
// Branches discretises the relationship's uncertainty. With σ == 0 there is
// one branch {NumSigma: 0, Weight: 1}; otherwise 25 branches span [-3, +3]
// standard deviations, weighted by the unit normal density and renormalised
// to sum to 1.
//
// Implementations:
//
//   - WC1994Area:   A = 10^(-3.49 + 0.91·m) km², σ = 0.24 (Wells & Coppersmith 1994, all rakes).
//   - WC1994Length: L = 10^(-3.22 + 0.69·m) km,  σ = 0.22 (surface rupture length, all rakes).
//   - PEERArea:     A = 10^(m - 4) km²,          σ = 0    (PEER test cases).
package scaling
