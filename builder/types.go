// Package builder provides tunable options and error definitions
// for directing pizza builders through the fixed build sequence.
package builder

import "errors"

// Sentinel errors for the build sequence.
var (
	// ErrNilBuilder is returned when the Cook receives a nil Builder.
	ErrNilBuilder = errors.New("builder: nil builder")

	// ErrNotStarted is returned when a product is requested before
	// Start() allocated one, or a build step runs without a product.
	ErrNotStarted = errors.New("builder: build sequence not started")
)

// Step identifies one stage of the fixed build sequence.
type Step string

// Build steps, in the order the Cook runs them.
const (
	StepStart   Step = "start"
	StepDough   Step = "dough"
	StepSauce   Step = "sauce"
	StepTopping Step = "topping"
)

// Option configures the Cook's build run via functional arguments.
type Option func(*buildOptions)

// buildOptions holds callbacks to observe a build run.
type buildOptions struct {
	// onStep is called once per completed step, in build order.
	onStep func(Step)
}

// defaultOptions returns buildOptions with a no-op hook.
func defaultOptions() buildOptions {
	return buildOptions{onStep: func(Step) {}}
}

// WithOnStep registers a callback to run after each completed build step.
// A nil fn is ignored.
func WithOnStep(fn func(Step)) Option {
	return func(o *buildOptions) {
		if fn != nil {
			o.onStep = fn
		}
	}
}
