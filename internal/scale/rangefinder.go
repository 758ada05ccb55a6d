// Package scale computes axis bounds and maps data values onto pixel
// coordinates.
package scale

import (
	"errors"
	"math"

	"github.com/gdpscope/core/internal/models"
)

// ErrNoData is returned when a sequence has no finite values to bound.
var ErrNoData = errors.New("no finite values")

// Range is the closed interval spanned by a sequence.
type Range struct {
	Min float64
	Max float64
}

// NoData is the sentinel returned for sequences without finite values.
var NoData = Range{Min: math.NaN(), Max: math.NaN()}

// Valid reports whether r bounds at least one value.
func (r Range) Valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) && r.Min <= r.Max
}

// FindRange returns the minimum and maximum of the finite values. NaN and
// infinite entries are excluded. When nothing remains it returns NoData and
// false.
func FindRange(values []float64) (Range, bool) {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	found := false

	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
		found = true
	}

	if !found {
		return NoData, false
	}

	return r, true
}

// FindLimits bounds the x and y sequences of a chart.
func FindLimits(xs, ys []float64) (models.AxisLimits, error) {
	xr, _ := FindRange(xs)
	yr, _ := FindRange(ys)

	limits := models.AxisLimits{XMin: xr.Min, XMax: xr.Max, YMin: yr.Min, YMax: yr.Max}
	if !xr.Valid() || !yr.Valid() {
		return limits, ErrNoData
	}

	return limits, nil
}
