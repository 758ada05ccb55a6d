package scale

import "math"

const maxTicksPerCount = 10

// Ticks returns round values in [lo, hi] spaced by a 1, 2 or 5 times a power
// of ten step, aiming for about count of them.
func Ticks(lo, hi float64, count int) []float64 {
	if count < 1 || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return []float64{lo}
	}

	step := niceStep((hi - lo) / float64(count))
	if step <= 0 || math.IsInf(step, 0) {
		return nil
	}

	start := math.Ceil(lo / step)
	end := math.Floor(hi / step)

	// Near 2^53 the quotients lose integer precision, so the span can
	// exceed what the step allows or collapse neighbouring ticks.
	n := end - start
	if n < 0 || n > float64(maxTicksPerCount*count) {
		return nil
	}

	ticks := make([]float64, 0, int(n)+1)
	for k := 0; k <= int(n); k++ {
		v := roundStep((start+float64(k))*step, step)
		if v < lo || v > hi {
			continue
		}
		if len(ticks) > 0 && v <= ticks[len(ticks)-1] {
			continue
		}
		ticks = append(ticks, v)
	}

	return ticks
}

func niceStep(raw float64) float64 {
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	switch normalized := raw / magnitude; {
	case normalized <= 1:
		return magnitude
	case normalized <= 2:
		return 2 * magnitude
	case normalized <= 5:
		return 5 * magnitude
	default:
		return 10 * magnitude
	}
}

// roundStep strips the float noise of i*step for fractional steps.
func roundStep(v, step float64) float64 {
	if step >= 1 {
		return v
	}
	digits := math.Ceil(-math.Log10(step))
	p := math.Pow(10, digits)
	return math.Round(v*p) / p
}
