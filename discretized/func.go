// SPDX-License-Identifier: MIT

package discretized

import (
	"errors"
	"sort"
)

var (
	// ErrEmpty indicates a function without points.
	ErrEmpty = errors.New("discretized: function has no points")
	// ErrLengthMismatch indicates x and y slices of different length.
	ErrLengthMismatch = errors.New("discretized: x and y lengths differ")
	// ErrNotIncreasing indicates x values that are not strictly increasing.
	ErrNotIncreasing = errors.New("discretized: x values must be strictly increasing")
)

// Func is an immutable function sampled at strictly increasing x values.
type Func struct {
	xs []float64
	ys []float64
}

// NewFunc copies xs and ys into a Func.
// Complexity: O(n).
func NewFunc(xs, ys []float64) (*Func, error) {
	if len(xs) == 0 {
		return nil, ErrEmpty
	}
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, ErrNotIncreasing
		}
	}
	return &Func{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}, nil
}

// Constant returns a single-point function y(x0) = y.
func Constant(x0, y float64) *Func {
	return &Func{xs: []float64{x0}, ys: []float64{y}}
}

// Len returns the number of points.
func (f *Func) Len() int { return len(f.xs) }

// X returns the i-th x value.
func (f *Func) X(i int) float64 { return f.xs[i] }

// Y returns the i-th y value.
func (f *Func) Y(i int) float64 { return f.ys[i] }

// MinX returns the smallest x.
func (f *Func) MinX() float64 { return f.xs[0] }

// MaxX returns the largest x.
func (f *Func) MaxX() float64 { return f.xs[len(f.xs)-1] }

// ClosestY returns the y value at the x nearest to x. Ties go to the lower x.
// Complexity: O(log n).
func (f *Func) ClosestY(x float64) float64 {
	i := sort.SearchFloat64s(f.xs, x)
	switch {
	case i == 0:
		return f.ys[0]
	case i == len(f.xs):
		return f.ys[len(f.ys)-1]
	}
	if x-f.xs[i-1] <= f.xs[i]-x {
		return f.ys[i-1]
	}
	return f.ys[i]
}

// Interpolate returns the linearly interpolated y at x, clamped to the end
// values outside [MinX, MaxX].
// Complexity: O(log n).
func (f *Func) Interpolate(x float64) float64 {
	i := sort.SearchFloat64s(f.xs, x)
	switch {
	case i == 0:
		return f.ys[0]
	case i == len(f.xs):
		return f.ys[len(f.ys)-1]
	}
	x0, x1 := f.xs[i-1], f.xs[i]
	y0, y1 := f.ys[i-1], f.ys[i]
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
