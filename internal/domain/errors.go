package domain

import "errors"

var (
	// ErrInvertedDomain reports a request whose upper bound does not
	// exceed its lower bound.
	ErrInvertedDomain = errors.New("x max must be greater than x min")

	// ErrUnknownFunction reports a lookup for a name the catalog does
	// not carry.
	ErrUnknownFunction = errors.New("unknown function")
)
