// Package plotter validates plot requests and turns them into computed
// curves by running a catalog variant's domain sampling and evaluation.
package plotter
