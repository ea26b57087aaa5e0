package catalog

import (
	"math"

	"graphview/internal/domain"
)

// Sine plots y = A*sin(B*x).
type Sine struct{}

func (Sine) Spec() domain.FunctionSpec {
	return domain.FunctionSpec{
		Name:              "Sine Wave y = Asin(Bx)",
		ParamADescription: "The amplitude of the wave",
		ParamBDescription: "The frequency of the wave",
		ParamADefault:     1,
		ParamBDefault:     1,
	}
}

func (Sine) Evaluate(x []float64, a, b float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = a * math.Sin(b*v)
	}
	return y
}

// ComputeDomain samples at ten points per period so the wave shape
// survives discretisation at any frequency. Zero or negative frequency
// yields no usable period and takes the non-periodic default step.
func (Sine) ComputeDomain(req domain.DomainRequest) domain.DomainResult {
	step := defaultStep
	if req.B > 0 {
		step = periodicStep(1 / req.B)
	}
	return domain.DomainResult{X: sampleRange(req.XMin, req.XMax, step)}
}
