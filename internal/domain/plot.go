package domain

import "fmt"

// DomainRequest asks a function for sample points over [XMin, XMax] with
// the parameters the user has dialed in.
type DomainRequest struct {
	XMin float64
	XMax float64
	A    float64
	B    float64
}

// Validate rejects an inverted or empty range.
func (r DomainRequest) Validate() error {
	if r.XMax <= r.XMin {
		return ErrInvertedDomain
	}
	return nil
}

// DomainResult is the sampled domain for one request. X is ordered
// ascending. Annotation, when non-empty, describes a restriction that was
// applied (singularity removed, range truncated).
type DomainResult struct {
	X          []float64
	Annotation string
}

// Plot is one computed curve ready for rendering: the sampled domain, the
// evaluated values, and the metadata the shell displays alongside them.
type Plot struct {
	Spec       FunctionSpec
	Request    DomainRequest
	X          []float64
	Y          []float64
	Annotation string
}

// Title is the heading shown above the rendered curve.
func (p Plot) Title() string {
	return fmt.Sprintf("%s  (A=%g, B=%g)", p.Spec.Name, p.Request.A, p.Request.B)
}

// PlotState is the viewer shell's only mutable state. It is owned by the
// shell and changes solely through user-triggered input events; a failed
// input leaves it untouched.
type PlotState struct {
	Selected *FunctionSpec
	A        float64
	B        float64
	XMin     float64
	XMax     float64
}
