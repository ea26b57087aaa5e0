package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"

	"graphview/internal/domain"
)

// segment is one unbroken run of samples.
type segment struct {
	x []float64
	y []float64
}

// PNG renders p to PNG bytes at the given pixel size.
func PNG(p domain.Plot, width, height int) ([]byte, error) {
	if len(p.X) == 0 {
		return nil, fmt.Errorf("render chart: empty domain")
	}
	series := make([]chart.Series, 0, 2)
	for _, seg := range splitSegments(p.X, p.Y) {
		style := chart.Style{StrokeWidth: 1.5, StrokeColor: chart.ColorBlue}
		if len(seg.x) == 1 {
			// A lone sample renders as a marker; inventing a second
			// sample would draw a segment the function does not have.
			style = chart.Style{StrokeWidth: 0, DotWidth: 4, DotColor: chart.ColorBlue}
		}
		series = append(series, chart.ContinuousSeries{
			XValues: seg.x,
			YValues: seg.y,
			Style:   style,
		})
	}

	ch := chart.Chart{
		Title:      p.Title(),
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 28}},
		XAxis:      chart.XAxis{Name: "x"},
		YAxis:      chart.YAxis{Name: "f(x)"},
		Series:     series,
	}
	// go-chart cannot derive an axis range from a zero span (a single
	// sample, or a constant function); widen those explicitly.
	if xr := span(p.X); xr.Min == xr.Max {
		ch.XAxis.Range = &chart.ContinuousRange{Min: xr.Min - 1, Max: xr.Max + 1}
	}
	if yr := span(p.Y); yr.Min == yr.Max {
		ch.YAxis.Range = &chart.ContinuousRange{Min: yr.Min - 1, Max: yr.Max + 1}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// Image renders p and decodes the result for display in the viewer shell.
func Image(p domain.Plot, width, height int) (image.Image, error) {
	raw, err := PNG(p, width, height)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

// span returns the min/max of vs. vs is never empty here.
func span(vs []float64) chart.ContinuousRange {
	r := chart.ContinuousRange{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r
}

// splitSegments breaks the samples wherever the spacing jumps well past
// the typical step. A point excluded from the domain (the power
// singularity at x = 0) doubles the local spacing, and splitting there
// keeps the renderer from drawing a false line across the gap.
func splitSegments(x, y []float64) []segment {
	if len(x) < 3 {
		return []segment{{x: x, y: y}}
	}
	typical := (x[len(x)-1] - x[0]) / float64(len(x)-1)
	var segs []segment
	start := 0
	for i := 1; i < len(x); i++ {
		if x[i]-x[i-1] > 1.5*typical {
			segs = append(segs, segment{x: x[start:i], y: y[start:i]})
			start = i
		}
	}
	return append(segs, segment{x: x[start:], y: y[start:]})
}
