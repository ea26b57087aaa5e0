// Package commands defines the graphview CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - list  Show the function catalog with parameter descriptions
//   - plot  Render a function to a PNG file without opening a window
//   - view  Open the interactive viewer window
//
// # Implementation
//
// The root command builds the dependency graph (catalog, plotter, chart
// geometry) before any subcommand runs, so handlers share one app context.
package commands
