// Package catalog holds the fixed set of plottable functions.
//
// Each variant implements domain.Function: elementwise evaluation plus a
// per-function sampling policy. Periodic variants scale their step to the
// wave frequency (ten samples per period, comfortably above the Nyquist
// rate); non-periodic variants use a fixed fine step. Variants whose output
// is undefined or complex on part of the requested range restrict the
// domain and report the restriction in the DomainResult annotation.
//
// Adding a function means adding a variant file here and registering it in
// catalog.go; nothing else changes.
package catalog
