// SPDX-License-Identifier: MIT
// Package: creational/abstractfactory
//
// shape.go — the Shape contract and its four concrete variants.

package abstractfactory

import "fmt"

// Shape is a drawable product carrying a sequential identifier.
type Shape interface {
	// ID returns the identifier assigned at construction.
	ID() uint64

	// Draw returns a line identifying the shape's kind and identifier.
	Draw() string
}

// shape carries the identifier shared by all concrete variants.
type shape struct {
	id uint64
}

// ID returns the identifier assigned at construction.
func (s shape) ID() uint64 { return s.id }

// draw renders the common "<kind> <id>: draw" line.
func (s shape) draw(kind string) string {
	return fmt.Sprintf("%s %d: draw", kind, s.id)
}

// newShape draws the next identifier from seq, falling back to the package
// default for a nil seq.
func newShape(seq *Sequence) shape {
	if seq == nil {
		seq = defaultSequence
	}
	return shape{id: seq.Next()}
}

// Circle is the curved variant of the simple family.
type Circle struct{ shape }

// NewCircle constructs a Circle with an identifier from seq.
func NewCircle(seq *Sequence) *Circle { return &Circle{newShape(seq)} }

// Draw implements Shape.
func (c *Circle) Draw() string { return c.draw("circle") }

// Square is the straight variant of the simple family.
type Square struct{ shape }

// NewSquare constructs a Square with an identifier from seq.
func NewSquare(seq *Sequence) *Square { return &Square{newShape(seq)} }

// Draw implements Shape.
func (s *Square) Draw() string { return s.draw("square") }

// Ellipse is the curved variant of the robust family.
type Ellipse struct{ shape }

// NewEllipse constructs an Ellipse with an identifier from seq.
func NewEllipse(seq *Sequence) *Ellipse { return &Ellipse{newShape(seq)} }

// Draw implements Shape.
func (e *Ellipse) Draw() string { return e.draw("ellipse") }

// Rectangle is the straight variant of the robust family.
type Rectangle struct{ shape }

// NewRectangle constructs a Rectangle with an identifier from seq.
func NewRectangle(seq *Sequence) *Rectangle { return &Rectangle{newShape(seq)} }

// Draw implements Shape.
func (r *Rectangle) Draw() string { return r.draw("rectangle") }
