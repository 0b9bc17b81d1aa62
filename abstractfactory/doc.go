// Package abstractfactory demonstrates the Abstract Factory creational
// pattern: a Factory exposes two creation operations (curved and straight)
// whose concrete Shape types form a consistent family chosen by the factory
// variant, while clients draw the returned shapes polymorphically.
//
// What
//
//   - Factory variants and their fixed product families:
//   - SimpleFactory: NewCurved → *Circle,  NewStraight → *Square
//   - RobustFactory: NewCurved → *Ellipse, NewStraight → *Rectangle
//   - Every Shape carries a sequential identifier assigned at construction
//     from a Sequence; identifiers are unique and strictly increasing for
//     shapes sharing one Sequence, and are never reset.
//   - Draw() returns a line identifying the shape's kind and identifier,
//     e.g. "circle 0: draw".
//
// Why
//
//   - Decide at run time which family of related products to create, without
//     the client naming concrete types.
//   - One level above Factory Method: the factory itself is the pluggable
//     object, and each of its methods is a creation operation.
//
// Determinism
//
//	A freshly constructed Sequence starts at 0 and increments by one per
//	shape, so a fixed creation order yields a fixed transcript. The zero-
//	config path shares a package-wide default Sequence, which keeps IDs
//	unique process-wide but makes absolute values dependent on prior use;
//	inject a Sequence for reproducible transcripts.
//
// Usage
//
//	seq := abstractfactory.NewSequence()
//	factory := abstractfactory.NewSimpleFactory(abstractfactory.WithSequence(seq))
//
//	shapes := []abstractfactory.Shape{
//	    factory.NewCurved(),   // *Circle, id 0
//	    factory.NewStraight(), // *Square, id 1
//	    factory.NewCurved(),   // *Circle, id 2
//	}
//	for _, s := range shapes {
//	    fmt.Println(s.Draw())
//	}
//
// Options
//
//   - WithSequence(seq): identifier source for all shapes the factory makes;
//     nil keeps the package default.
//
// The package defines no sentinel errors: creation cannot fail, and the
// Sequence is safe for concurrent use via sync/atomic.
package abstractfactory
