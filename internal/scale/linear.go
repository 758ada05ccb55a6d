package scale

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidDomain = errors.New("domain bounds must be finite")

// Padding widens a domain before interpolation: the low bound moves down by
// Lo and the high bound moves up by Hi.
type Padding struct {
	Lo float64 `yaml:"lo" json:"lo"`
	Hi float64 `yaml:"hi" json:"hi"`
}

// Linear maps a numeric domain onto a pixel range by linear interpolation.
// The pixel range may be inverted (p0 > p1), which is how y axes grow upward.
type Linear struct {
	lo, hi float64
	p0, p1 float64
}

// NewLinear builds a mapper for the padded domain [lo-pad.Lo, hi+pad.Hi]
// onto [p0, p1]. lo and hi may be given in either order.
func NewLinear(lo, hi, p0, p1 float64, pad Padding) (*Linear, error) {
	for _, v := range []float64{lo, hi, p0, p1, pad.Lo, pad.Hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: [%v, %v] -> [%v, %v]", ErrInvalidDomain, lo, hi, p0, p1)
		}
	}

	if lo > hi {
		lo, hi = hi, lo
	}

	return &Linear{lo: lo - pad.Lo, hi: hi + pad.Hi, p0: p0, p1: p1}, nil
}

// Map returns the pixel coordinate of v. A degenerate domain maps every
// value to the midpoint of the pixel range.
func (l *Linear) Map(v float64) float64 {
	if l.Degenerate() {
		return (l.p0 + l.p1) / 2
	}

	t := (v - l.lo) / (l.hi - l.lo)
	return l.p0*(1-t) + l.p1*t
}

// Degenerate reports whether the padded domain has zero width.
func (l *Linear) Degenerate() bool {
	return l.hi == l.lo
}

// Domain returns the padded domain.
func (l *Linear) Domain() (float64, float64) {
	return l.lo, l.hi
}

func (l *Linear) Range() (float64, float64) {
	return l.p0, l.p1
}

// Ticks returns about count round values inside the padded domain.
func (l *Linear) Ticks(count int) []float64 {
	return Ticks(l.lo, l.hi, count)
}
