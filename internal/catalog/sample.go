package catalog

import "math"

// defaultStep is the sampling step for non-periodic functions, and the
// fallback when a periodic function has zero frequency.
const defaultStep = 0.001

// sampleRange returns xMin, xMin+step, ... strictly below xMax, with xMax
// itself appended so the right edge of the plot is always present. The
// index form keeps long ranges free of accumulated float drift.
func sampleRange(xMin, xMax, step float64) []float64 {
	if step <= 0 {
		step = defaultStep
	}
	n := int((xMax - xMin) / step)
	if n < 0 {
		n = 0
	}
	x := make([]float64, 0, n+2)
	for i := 0; ; i++ {
		v := xMin + float64(i)*step
		if v >= xMax {
			break
		}
		x = append(x, v)
	}
	return append(x, xMax)
}

// periodicStep converts a wave period into a sampling step: ten samples
// per period, or the non-periodic default when the period is zero.
func periodicStep(period float64) float64 {
	if period == 0 {
		return defaultStep
	}
	return math.Abs(period) / 10
}
