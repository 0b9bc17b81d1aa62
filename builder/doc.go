// Package builder demonstrates the Builder creational pattern: a Cook
// (director) drives a Builder through a fixed sequence of steps to assemble
// a Pizza (product) part by part, separate from the product's representation.
//
// What
//
//   - Assemble a Pizza through a deterministic four-step sequence:
//     Start → BuildDough → BuildSauce → BuildTopping.
//   - Returns the finished *Pizza, whose attributes equal the literal values
//     defined by the chosen builder variant:
//   - HawaiianBuilder: dough "cross", sauce "mild", topping "ham+pineapple"
//   - SpicyBuilder:    dough "pan baked", sauce "hot", topping "pepperoni+salami"
//   - Supports a functional observation hook via WithOnStep, invoked once per
//     completed step in build order.
//
// Why
//
//   - Keep a complex object's construction separate from its representation,
//     so the same fixed sequence can produce different products.
//   - Avoid sprawling constructors: each part is contributed by a dedicated
//     step, and the director owns the ordering.
//
// Determinism
//
//	The director always runs the same steps in the same order, and every
//	builder variant fills parts with compile-time literals, so two builds
//	with the same variant yield independent products with identical
//	attributes.
//
// Usage
//
//	var cook builder.Cook
//	pizza, err := cook.Make(&builder.HawaiianBuilder{})
//	if err != nil {
//	    // handle ErrNilBuilder or ErrNotStarted
//	}
//	fmt.Println(pizza.Describe())
//
//	// With an observation hook:
//	pizza, err = cook.Make(
//	    &builder.SpicyBuilder{},
//	    builder.WithOnStep(func(s builder.Step) { fmt.Println("done:", s) }),
//	)
//
// Options
//
//   - WithOnStep(fn): hook called after each completed build step.
//
// Errors
//
//   - ErrNilBuilder if Make receives a nil Builder.
//   - ErrNotStarted if Pizza() is requested before Start() created a product.
package builder
