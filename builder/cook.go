// SPDX-License-Identifier: MIT
// Package: creational/builder
//
// cook.go — the director that sequences builder calls in fixed order.

package builder

import "fmt"

// Cook is the director: it runs the fixed build sequence on a Builder
// and exposes the finished product.
//
// The Cook holds no state between runs; the zero value is ready to use.
type Cook struct{}

// Make runs the fixed build sequence on b and returns the finished product:
// Start, then dough, sauce and topping in that order.
//
// Returns ErrNilBuilder for a nil builder. Step failures are wrapped with
// the step name and preserve the underlying sentinel for errors.Is.
func (Cook) Make(b Builder, opts ...Option) (*Pizza, error) {
	if b == nil {
		return nil, ErrNilBuilder
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b.Start()
	o.onStep(StepStart)

	// Fixed sequence: the ordering is the director's contract.
	steps := []struct {
		step Step
		fn   func() error
	}{
		{StepDough, b.BuildDough},
		{StepSauce, b.BuildSauce},
		{StepTopping, b.BuildTopping},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			return nil, fmt.Errorf("builder: %s step failed: %w", s.step, err)
		}
		o.onStep(s.step)
	}

	return b.Pizza()
}
