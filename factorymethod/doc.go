// Package factorymethod demonstrates the Factory Method creational pattern:
// an Application framework defines a creation hook (CreateFunc) that the
// client supplies to decide the concrete Document type, while the framework
// owns registration, opening and reporting.
//
// What
//
//   - Application.NewDocument(name) invokes the client-supplied CreateFunc,
//     appends the new Document to an ordered registry in call order, and
//     immediately opens it (observable via WithOnOpen).
//   - Report() returns every registered document's name in insertion order.
//   - The registry grows dynamically by default; WithCapacity(n) declares an
//     explicit fixed capacity whose overflow fails with ErrCapacityExceeded
//     instead of going unchecked.
//
// Why
//
//   - A framework can standardize the document lifecycle while letting each
//     client define its own document type and provide for its instantiation.
//   - In Go the "virtual creation hook" is a function value supplied at
//     construction, favoring composition over an inheritance chain.
//
// Determinism
//
//	Documents are stored strictly in NewDocument call order, so Report and
//	Docs are fully reproducible for the same call sequence.
//
// Usage
//
//	app, err := factorymethod.NewApplication(
//	    func(name string) factorymethod.Document {
//	        return factorymethod.NewTextDocument(name)
//	    },
//	)
//	if err != nil {
//	    // handle ErrNilCreate or ErrOptionViolation
//	}
//	doc, err := app.NewDocument("foo")
//	if err != nil {
//	    // handle ErrCapacityExceeded or ErrNilDocument
//	}
//	fmt.Println(doc.Open())
//	fmt.Println(app.Report())
//
// Options
//
//   - WithCapacity(n): fixed registry capacity (n > 0); n == 0 keeps the
//     default unbounded registry; n < 0 is ErrOptionViolation.
//   - WithOnOpen(fn): hook called with each document right after it is
//     registered and opened.
//
// Errors
//
//   - ErrNilCreate          if NewApplication receives a nil CreateFunc.
//   - ErrOptionViolation    if an invalid option value is supplied.
//   - ErrCapacityExceeded   if a fixed-capacity registry is full.
//   - ErrNilDocument        if the creation hook returns nil.
package factorymethod
