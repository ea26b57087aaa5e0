// Package render draws computed plots as PNG images using go-chart.
package render
