package catalog

import (
	"strings"

	"graphview/internal/domain"
)

// entry pairs a variant with the short key the CLI accepts for it.
type entry struct {
	key string
	fn  domain.Function
}

// Catalog is the fixed, ordered set of plottable functions.
type Catalog struct {
	entries []entry
}

// New returns the catalog in display order.
func New() *Catalog {
	return &Catalog{entries: []entry{
		{key: "sine", fn: Sine{}},
		{key: "power", fn: Power{}},
		{key: "sawtooth", fn: Sawtooth{}},
	}}
}

// Functions returns the variants in display order.
func (c *Catalog) Functions() []domain.Function {
	fns := make([]domain.Function, len(c.entries))
	for i, e := range c.entries {
		fns[i] = e.fn
	}
	return fns
}

// Keys returns the short CLI keys in display order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.key
	}
	return keys
}

// Names returns the display names in display order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.fn.Spec().Name
	}
	return names
}

// Lookup finds a variant by short key or full display name,
// case-insensitively.
func (c *Catalog) Lookup(name string) (domain.Function, bool) {
	for _, e := range c.entries {
		if strings.EqualFold(name, e.key) || strings.EqualFold(name, e.fn.Spec().Name) {
			return e.fn, true
		}
	}
	return nil, false
}
