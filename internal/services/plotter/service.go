package plotter

import (
	"fmt"

	"graphview/internal/catalog"
	"graphview/internal/domain"
)

// Service computes plots against a catalog.
type Service struct {
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog) *Service {
	return &Service{cat: cat}
}

// Plot resolves name in the catalog and computes the curve for req.
func (s *Service) Plot(name string, req domain.DomainRequest) (domain.Plot, error) {
	fn, ok := s.cat.Lookup(name)
	if !ok {
		return domain.Plot{}, fmt.Errorf("%w: %q", domain.ErrUnknownFunction, name)
	}
	return s.Compute(fn, req)
}

// Compute validates req and runs one sample-then-evaluate cycle. The whole
// domain is recomputed from scratch on every call; at a few thousand
// points that is cheaper than caching would be worth.
func (s *Service) Compute(fn domain.Function, req domain.DomainRequest) (domain.Plot, error) {
	if err := req.Validate(); err != nil {
		return domain.Plot{}, err
	}
	res := fn.ComputeDomain(req)
	y := fn.Evaluate(res.X, req.A, req.B)
	return domain.Plot{
		Spec:       fn.Spec(),
		Request:    req,
		X:          res.X,
		Y:          y,
		Annotation: res.Annotation,
	}, nil
}
