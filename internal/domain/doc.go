// Package domain defines core data models and contracts shared across the app.
// It contains plain types (specs, requests, plot data) and interfaces only.
package domain
