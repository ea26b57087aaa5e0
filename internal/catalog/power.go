package catalog

import (
	"math"

	"graphview/internal/domain"
)

// Annotations reported by Power when the requested range is restricted.
const (
	AnnotationSingularity = "Domain modified: Output excludes x = 0 (0 is a point of singularity)"
	AnnotationPositiveX   = "Domain modified: Output only valid for x > 0"
)

// positiveFloor replaces a non-positive lower bound when the function is
// only real-valued for x > 0.
const positiveFloor = 0.0001

// Power plots y = A*x^B.
type Power struct{}

func (Power) Spec() domain.FunctionSpec {
	return domain.FunctionSpec{
		Name:              "Power Graph y = Ax^B",
		ParamADescription: "A constant multiplier",
		ParamBDescription: "The power by which x is raised",
		ParamADefault:     1,
		ParamBDefault:     2,
	}
}

func (Power) Evaluate(x []float64, a, b float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = a * math.Pow(v, b)
	}
	return y
}

// ComputeDomain restricts the range for B < 1. A whole-number exponent
// below one has a singularity at the origin, so x = 0 is dropped. A
// fractional exponent is complex-valued for negative x, so the range is
// clamped to x > 0. B >= 1 is defined everywhere and passes through
// unrestricted.
func (Power) ComputeDomain(req domain.DomainRequest) domain.DomainResult {
	if req.B >= 1 {
		return domain.DomainResult{X: sampleRange(req.XMin, req.XMax, defaultStep)}
	}
	if isWholeNumber(req.B) {
		x := sampleRange(req.XMin, req.XMax, defaultStep)
		kept := x[:0]
		for _, v := range x {
			if v != 0 {
				kept = append(kept, v)
			}
		}
		return domain.DomainResult{X: kept, Annotation: AnnotationSingularity}
	}
	xMin := req.XMin
	if xMin <= 0 {
		xMin = positiveFloor
	}
	if xMin >= req.XMax {
		// The whole requested range sits at or below zero; no real-valued
		// point survives the restriction.
		return domain.DomainResult{Annotation: AnnotationPositiveX}
	}
	return domain.DomainResult{
		X:          sampleRange(xMin, req.XMax, defaultStep),
		Annotation: AnnotationPositiveX,
	}
}
