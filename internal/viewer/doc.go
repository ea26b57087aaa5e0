// Package viewer is the desktop shell: a fyne window with a function
// selector, parameter entries, and the rendered plot.
//
// The shell owns the only mutable state (domain.PlotState) and changes it
// exclusively from user input events. Each change runs one synchronous
// validate-compute-render cycle; invalid input surfaces as an error dialog
// and leaves the previous valid plot and state untouched.
package viewer
