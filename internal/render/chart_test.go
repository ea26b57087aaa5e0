package render

import (
	"bytes"
	"image/png"
	"testing"

	"graphview/internal/domain"
)

func linePlot(t *testing.T, n int) domain.Plot {
	t.Helper()
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(2 * i)
	}
	return domain.Plot{
		Spec:    domain.FunctionSpec{Name: "line"},
		Request: domain.DomainRequest{XMin: 0, XMax: float64(n - 1), A: 1, B: 1},
		X:       x,
		Y:       y,
	}
}

func TestPNGDecodes(t *testing.T) {
	raw, err := PNG(linePlot(t, 11), 400, 300)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 400 || cfg.Height != 300 {
		t.Fatalf("want 400x300, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestImage(t *testing.T) {
	img, err := Image(linePlot(t, 11), 320, 240)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("want 320x240 bounds, got %v", b)
	}
}

func TestPNGSinglePoint(t *testing.T) {
	p := domain.Plot{
		Spec:    domain.FunctionSpec{Name: "point"},
		Request: domain.DomainRequest{XMin: 2, XMax: 2.9, A: 1, B: 1},
		X:       []float64{2},
		Y:       []float64{5},
	}
	raw, err := PNG(p, 200, 150)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(raw)); err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
}

func TestPNGConstantSeries(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 1, 1, 1, 1}
	p := domain.Plot{
		Spec:    domain.FunctionSpec{Name: "constant"},
		Request: domain.DomainRequest{XMin: 0, XMax: 4, A: 1, B: 0},
		X:       x,
		Y:       y,
	}
	if _, err := PNG(p, 200, 150); err != nil {
		t.Fatalf("PNG: %v", err)
	}
}

func TestPNGEmptyDomain(t *testing.T) {
	if _, err := PNG(domain.Plot{}, 100, 100); err == nil {
		t.Fatalf("want error for empty domain")
	}
}

func TestSplitSegmentsAtSingularityGap(t *testing.T) {
	// Unit spacing with the point at x=3 removed: the doubled gap must
	// break the series so no line is drawn across it.
	x := []float64{0, 1, 2, 4, 5, 6}
	y := []float64{0, 0, 0, 0, 0, 0}
	segs := splitSegments(x, y)
	if len(segs) != 2 {
		t.Fatalf("want 2 segments, got %d", len(segs))
	}
	if got := segs[0].x; got[len(got)-1] != 2 {
		t.Fatalf("want first segment to end at 2, got %v", got[len(got)-1])
	}
	if got := segs[1].x; got[0] != 4 {
		t.Fatalf("want second segment to start at 4, got %v", got[0])
	}
}

func TestSplitSegmentsKeepsUniformSeriesWhole(t *testing.T) {
	p := linePlot(t, 8)
	if segs := splitSegments(p.X, p.Y); len(segs) != 1 {
		t.Fatalf("want 1 segment for uniform spacing, got %d", len(segs))
	}
}
