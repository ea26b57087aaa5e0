package domain

// FunctionSpec carries the display metadata for one catalog entry.
// Values are fixed per variant and never change at runtime.
type FunctionSpec struct {
	Name              string
	ParamADescription string
	ParamBDescription string
	ParamADefault     float64
	ParamBDefault     float64
}

// Function is implemented by every plottable catalog variant.
type Function interface {
	// Spec returns the immutable display metadata.
	Spec() FunctionSpec

	// Evaluate applies the function elementwise to x. It is pure: no
	// side effects, and x is not modified.
	Evaluate(x []float64, a, b float64) []float64

	// ComputeDomain picks the sample points for the requested range,
	// removing any x at which evaluation would be undefined or complex.
	ComputeDomain(req DomainRequest) DomainResult
}
