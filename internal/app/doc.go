// Package app wires the catalog and plotter together for the CLI and the
// viewer shell.
package app
