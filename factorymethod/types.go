// Package factorymethod provides tunable options and error definitions
// for the document registry framework.
package factorymethod

import (
	"errors"
	"fmt"
)

// Sentinel errors for application construction and document registration.
var (
	// ErrNilCreate is returned when NewApplication receives a nil CreateFunc.
	ErrNilCreate = errors.New("factorymethod: nil create hook")

	// ErrNilDocument is returned when the creation hook returns a nil Document.
	ErrNilDocument = errors.New("factorymethod: create hook returned nil document")

	// ErrCapacityExceeded is returned when a fixed-capacity registry is full.
	ErrCapacityExceeded = errors.New("factorymethod: registry capacity exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("factorymethod: invalid option supplied")
)

// Option configures an Application via functional arguments.
// If an Option is invalid (e.g. negative capacity), it is recorded
// internally and surfaced as ErrOptionViolation by NewApplication.
type Option func(*appOptions)

// appOptions holds parameters and callbacks for an Application.
type appOptions struct {
	// capacity bounds the registry when > 0; 0 means unbounded.
	capacity int

	// onOpen is called with each document right after registration.
	onOpen func(Document)

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns appOptions with an unbounded registry and a
// no-op open hook.
func defaultOptions() appOptions {
	return appOptions{
		capacity: 0,
		onOpen:   func(Document) {},
	}
}

// WithCapacity bounds the registry at n documents.
//
//	n > 0:  registration past n returns ErrCapacityExceeded
//	n == 0: explicit "unbounded"
//	n < 0:  invalid option → ErrOptionViolation
func WithCapacity(n int) Option {
	return func(o *appOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "unbounded"
			o.capacity = 0
		default:
			o.capacity = n
		}
	}
}

// WithOnOpen registers a callback invoked with each document right after
// it is registered and opened. A nil fn is ignored.
func WithOnOpen(fn func(Document)) Option {
	return func(o *appOptions) {
		if fn != nil {
			o.onOpen = fn
		}
	}
}
