package scale

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Format selects how tick and point values are printed.
type Format string

const (
	FormatDefault Format = ""
	// FormatSI prints 1.5G style values with an SI prefix.
	FormatSI Format = "si"
	// FormatInteger rounds to a whole number, used for years.
	FormatInteger Format = "integer"
	// FormatComma prints thousands separators.
	FormatComma Format = "comma"
)

func (f Format) Valid() bool {
	switch f {
	case FormatDefault, FormatSI, FormatInteger, FormatComma:
		return true
	}
	return false
}

// Apply formats v.
func (f Format) Apply(v float64) string {
	switch f {
	case FormatSI:
		value, prefix := humanize.ComputeSI(v)
		return humanize.FtoaWithDigits(value, 2) + prefix
	case FormatInteger:
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	case FormatComma:
		return humanize.CommafWithDigits(v, 2)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
