// SPDX-License-Identifier: MIT

package scaling

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrUnsupportedKind indicates a relationship that is neither area- nor length-based.
var ErrUnsupportedKind = errors.New("scaling: unsupported relationship kind")

// ErrUnknownName indicates a relationship name ByName does not recognise.
var ErrUnknownName = errors.New("scaling: unknown relationship name")

// Kind tags what a Relationship's Median returns.
type Kind int

const (
	// KindUnknown is the zero value and is never valid.
	KindUnknown Kind = iota
	// KindArea relationships return rupture area in km².
	KindArea
	// KindLength relationships return rupture length in km.
	KindLength
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindArea:
		return "area"
	case KindLength:
		return "length"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Relationship maps magnitude to a median rupture dimension.
type Relationship interface {
	Name() string
	Kind() Kind
	// Median returns the median area (km²) or length (km) for mag.
	Median(mag float64) float64
	// Sigma returns the log10 standard deviation.
	Sigma() float64
}

// Scaled returns the dimension numSigma standard deviations from the median,
// using sigma in log10 units.
func Scaled(rel Relationship, mag, sigma, numSigma float64) float64 {
	return rel.Median(mag) * math.Pow(10, numSigma*sigma)
}

// Branch is one discrete offset of the scaling uncertainty.
type Branch struct {
	NumSigma float64
	Weight   float64
}

const (
	numBranches   = 25
	branchSigmaLo = -3.0
	branchSigmaHi = 3.0
)

// Branches returns the discretised uncertainty for sigma.
// Complexity: O(1) (at most 25 branches).
func Branches(sigma float64) []Branch {
	if sigma == 0 {
		return []Branch{{NumSigma: 0, Weight: 1}}
	}
	xs := make([]float64, numBranches)
	ws := make([]float64, numBranches)
	floats.Span(xs, branchSigmaLo, branchSigmaHi)
	for i, x := range xs {
		ws[i] = distuv.UnitNormal.Prob(x)
	}
	floats.Scale(1/floats.Sum(ws), ws)

	out := make([]Branch, numBranches)
	for i := range out {
		out[i] = Branch{NumSigma: xs[i], Weight: ws[i]}
	}
	return out
}

type wc1994Area struct{}

// WC1994Area is the Wells & Coppersmith (1994) magnitude-area relationship.
var WC1994Area Relationship = wc1994Area{}

func (wc1994Area) Name() string   { return "wc1994-area" }
func (wc1994Area) Kind() Kind     { return KindArea }
func (wc1994Area) Sigma() float64 { return 0.24 }
func (wc1994Area) Median(mag float64) float64 {
	return math.Pow(10, -3.49+0.91*mag)
}

type wc1994Length struct{}

// WC1994Length is the Wells & Coppersmith (1994) magnitude-length relationship.
var WC1994Length Relationship = wc1994Length{}

func (wc1994Length) Name() string   { return "wc1994-length" }
func (wc1994Length) Kind() Kind     { return KindLength }
func (wc1994Length) Sigma() float64 { return 0.22 }
func (wc1994Length) Median(mag float64) float64 {
	return math.Pow(10, -3.22+0.69*mag)
}

type peerArea struct{}

// PEERArea is the magnitude-area relationship of the PEER test cases.
var PEERArea Relationship = peerArea{}

func (peerArea) Name() string   { return "peer-area" }
func (peerArea) Kind() Kind     { return KindArea }
func (peerArea) Sigma() float64 { return 0 }
func (peerArea) Median(mag float64) float64 {
	return math.Pow(10, mag-4)
}

// ByName resolves a relationship by its Name.
func ByName(name string) (Relationship, error) {
	for _, r := range []Relationship{WC1994Area, WC1994Length, PEERArea} {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
}
