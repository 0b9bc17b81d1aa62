// SPDX-License-Identifier: MIT
// Package: creational/abstractfactory
//
// factory.go — the abstract factory contract and its two family variants.

package abstractfactory

// Factory creates a consistent family of related shapes.
//
// Each variant fixes the concrete type returned by every creation
// operation, so shapes obtained from one factory always belong to the
// same family.
type Factory interface {
	// NewCurved creates the family's curved shape.
	NewCurved() Shape

	// NewStraight creates the family's straight shape.
	NewStraight() Shape
}

// Option configures a factory via functional arguments.
type Option func(*factoryOptions)

// factoryOptions holds the identifier source for a factory's shapes.
type factoryOptions struct {
	seq *Sequence
}

// defaultFactoryOptions returns factoryOptions using the package default
// Sequence.
func defaultFactoryOptions() factoryOptions {
	return factoryOptions{seq: defaultSequence}
}

// WithSequence sets the identifier source for all shapes the factory makes.
// A nil seq is ignored.
func WithSequence(seq *Sequence) Option {
	return func(o *factoryOptions) {
		if seq != nil {
			o.seq = seq
		}
	}
}

// SimpleFactory produces the simple family: Circle (curved), Square (straight).
type SimpleFactory struct {
	seq *Sequence
}

// NewSimpleFactory constructs a SimpleFactory.
func NewSimpleFactory(opts ...Option) *SimpleFactory {
	o := defaultFactoryOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &SimpleFactory{seq: o.seq}
}

// NewCurved creates a *Circle.
func (f *SimpleFactory) NewCurved() Shape { return NewCircle(f.seq) }

// NewStraight creates a *Square.
func (f *SimpleFactory) NewStraight() Shape { return NewSquare(f.seq) }

// RobustFactory produces the robust family: Ellipse (curved), Rectangle (straight).
type RobustFactory struct {
	seq *Sequence
}

// NewRobustFactory constructs a RobustFactory.
func NewRobustFactory(opts ...Option) *RobustFactory {
	o := defaultFactoryOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &RobustFactory{seq: o.seq}
}

// NewCurved creates an *Ellipse.
func (f *RobustFactory) NewCurved() Shape { return NewEllipse(f.seq) }

// NewStraight creates a *Rectangle.
func (f *RobustFactory) NewStraight() Shape { return NewRectangle(f.seq) }
