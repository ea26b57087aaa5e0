package catalog

import (
	"math"

	"graphview/internal/domain"
)

// sawtoothPeriod is fixed; A and B only scale and shift vertically.
const sawtoothPeriod = 3

// Sawtooth plots a piecewise-linear wave with period 3, vertical scale A
// and vertical shift B.
type Sawtooth struct{}

func (Sawtooth) Spec() domain.FunctionSpec {
	return domain.FunctionSpec{
		Name:              "Sawtooth wave",
		ParamADescription: "Vertical Scaling",
		ParamBDescription: "Vertical Shift",
		ParamADefault:     2,
		ParamBDefault:     1,
	}
}

// Evaluate walks the samples left to right, carrying a horizontal shift
// that drops by one period at every multiple of 3. One period spans two
// line segments: the rising edge at the period boundary and the falling
// ramp between boundaries. A and B are applied last.
func (Sawtooth) Evaluate(x []float64, a, b float64) []float64 {
	y := make([]float64, len(x))
	if len(x) == 0 {
		return y
	}
	// Align the shift to the first period boundary at or above the
	// first sample.
	boundary := sawtoothPeriod * math.Ceil(x[0]/sawtoothPeriod)
	hShift := sawtoothPeriod - boundary
	for i, v := range x {
		var base float64
		if floorMod(v, sawtoothPeriod) == 0 {
			hShift -= sawtoothPeriod
			base = (v + hShift) - 0.5
		} else {
			base = -0.5*(v+hShift) + 1
		}
		y[i] = a*base + b
	}
	return y
}

// ComputeDomain samples at unit integer steps: with a fixed period of 3,
// one point per unit stays above the Nyquist rate, and integer samples
// keep the boundary test exact. Bounds are truncated toward zero.
func (Sawtooth) ComputeDomain(req domain.DomainRequest) domain.DomainResult {
	return domain.DomainResult{
		X: sampleRange(math.Trunc(req.XMin), math.Trunc(req.XMax), 1),
	}
}

// floorMod is the non-negative remainder, so x = -2 lands at position 1
// within its period rather than -2.
func floorMod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}
