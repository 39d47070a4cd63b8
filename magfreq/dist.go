// SPDX-License-Identifier: MIT

package magfreq

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dist is a magnitude-frequency distribution with ascending magnitudes.
type Dist struct {
	mags  []float64
	rates []float64
}

var _ Supplier = (*Dist)(nil)

// Moment returns the seismic moment in N·m of magnitude m.
func Moment(m float64) float64 {
	return math.Pow(10, 1.5*m+9.05)
}

// NewEvenly returns num evenly spaced bins on [minMag, maxMag] with zero rates.
// A single bin requires minMag == maxMag.
// Complexity: O(num).
func NewEvenly(minMag, maxMag float64, num int) (*Dist, error) {
	if num < 1 || maxMag < minMag || (num == 1 && maxMag != minMag) || (num > 1 && maxMag == minMag) {
		return nil, ErrBadBins
	}
	d := &Dist{mags: make([]float64, num), rates: make([]float64, num)}
	delta := 0.0
	if num > 1 {
		delta = (maxMag - minMag) / float64(num-1)
	}
	for i := range d.mags {
		d.mags[i] = minMag + float64(i)*delta
	}
	return d, nil
}

// FromBins copies arbitrary bins. Magnitudes must be strictly increasing and
// rates non-negative.
func FromBins(mags, rates []float64) (*Dist, error) {
	if len(mags) == 0 {
		return nil, ErrBadBins
	}
	if len(mags) != len(rates) {
		return nil, ErrLengthMismatch
	}
	for i := range mags {
		if i > 0 && !(mags[i] > mags[i-1]) {
			return nil, ErrBadBins
		}
		if rates[i] < 0 {
			return nil, ErrNegativeRate
		}
	}
	return &Dist{
		mags:  append([]float64(nil), mags...),
		rates: append([]float64(nil), rates...),
	}, nil
}

// NewSingle returns a one-bin distribution.
func NewSingle(mag, rate float64) *Dist {
	return &Dist{mags: []float64{mag}, rates: []float64{rate}}
}

// NewGutenbergRichter returns evenly spaced bins on [minMag, maxMag] whose rates
// follow 10^(-b·m) between magLower and magUpper (inclusive, zero elsewhere),
// scaled so that the total moment rate equals momentRate.
func NewGutenbergRichter(minMag, maxMag float64, num int, magLower, magUpper, bValue, momentRate float64) (*Dist, error) {
	d, err := NewEvenly(minMag, maxMag, num)
	if err != nil {
		return nil, err
	}
	const tol = 1e-6
	for i, m := range d.mags {
		if m < magLower-tol || m > magUpper+tol {
			continue
		}
		d.rates[i] = math.Pow(10, -bValue*m)
	}
	if err = d.ScaleToMomentRate(momentRate); err != nil {
		return nil, err
	}
	return d, nil
}

// NewGaussian returns evenly spaced bins on [minMag, maxMag] whose rates follow a
// normal density of the given mean and standard deviation, scaled so that
// the total rate equals totalRate.
func NewGaussian(minMag, maxMag float64, num int, mean, stdDev, totalRate float64) (*Dist, error) {
	d, err := NewEvenly(minMag, maxMag, num)
	if err != nil {
		return nil, err
	}
	n := distuv.Normal{Mu: mean, Sigma: stdDev}
	for i, m := range d.mags {
		d.rates[i] = n.Prob(m)
	}
	if err = d.ScaleToTotalRate(totalRate); err != nil {
		return nil, err
	}
	return d, nil
}

// Len returns the number of bins.
func (d *Dist) Len() int { return len(d.mags) }

// Mag returns the magnitude of bin i.
func (d *Dist) Mag(i int) float64 { return d.mags[i] }

// Rate returns the rate of bin i.
func (d *Dist) Rate(i int) float64 { return d.rates[i] }

// MinMag returns the smallest magnitude.
func (d *Dist) MinMag() float64 { return d.mags[0] }

// MaxMag returns the largest magnitude.
func (d *Dist) MaxMag() float64 { return d.mags[len(d.mags)-1] }

// SetRate replaces the rate of bin i.
func (d *Dist) SetRate(i int, rate float64) error {
	if i < 0 || i >= len(d.rates) {
		return ErrBinIndex
	}
	if rate < 0 {
		return ErrNegativeRate
	}
	d.rates[i] = rate
	return nil
}

// TotalRate returns the sum of all rates.
func (d *Dist) TotalRate() float64 {
	return floats.Sum(d.rates)
}

// CumRate returns the sum of rates of bins i and above.
func (d *Dist) CumRate(i int) float64 {
	if i < 0 || i >= len(d.rates) {
		return 0
	}
	return floats.Sum(d.rates[i:])
}

// MomentRate returns Σ rate·Moment(mag) in N·m/yr.
func (d *Dist) MomentRate() float64 {
	total := 0.0
	for i, m := range d.mags {
		total += d.rates[i] * Moment(m)
	}
	return total
}

// ScaleToTotalRate rescales all rates so that TotalRate() == total.
func (d *Dist) ScaleToTotalRate(total float64) error {
	cur := d.TotalRate()
	if cur == 0 {
		return ErrZeroTotal
	}
	floats.Scale(total/cur, d.rates)
	return nil
}

// ScaleToMomentRate rescales all rates so that MomentRate() == moRate.
func (d *Dist) ScaleToMomentRate(moRate float64) error {
	cur := d.MomentRate()
	if cur == 0 {
		return ErrZeroTotal
	}
	floats.Scale(moRate/cur, d.rates)
	return nil
}

// Clone returns an independent copy.
func (d *Dist) Clone() *Dist {
	return &Dist{
		mags:  append([]float64(nil), d.mags...),
		rates: append([]float64(nil), d.rates...),
	}
}
