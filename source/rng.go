// SPDX-License-Identifier: MIT

package source

import "math/rand/v2"

// NewRandSource returns a deterministic PCG source for seed.
// Policy: seed==0 ⇒ nil, i.e. random strikes draw from the process-wide,
// randomly seeded generator and differ between runs.
//
// The second PCG word is derived from seed so that nearby seeds yield
// unrelated streams.
//
// Complexity: O(1).
func NewRandSource(seed uint64) rand.Source {
	if seed == 0 {
		return nil
	}
	return rand.NewPCG(seed, deriveSeed(seed, 1))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer.
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
