// SPDX-License-Identifier: MIT
// Package: creational/builder
//
// builder.go — the Pizza product and the pizza builder variants.
//
// Design contract (strict):
//   - The product is assembled only through mutators; Describe never mutates.
//   - Each builder variant fills parts with compile-time literals.
//   - Builders own the in-progress product exclusively until Pizza() exposes it.
//   - Build steps never panic; a step without a product returns ErrNotStarted.

package builder

import "fmt"

// Part literals contributed by the builder variants.
const (
	DoughCross   = "cross"
	DoughPan     = "pan baked"
	SauceMild    = "mild"
	SauceHot     = "hot"
	ToppingHam   = "ham+pineapple"
	ToppingSpicy = "pepperoni+salami"
)

// Pizza is the product assembled by a Builder.
//
// Attributes are set once per build via mutators and never revalidated.
type Pizza struct {
	dough   string
	sauce   string
	topping string
}

// SetDough sets the dough attribute.
func (p *Pizza) SetDough(dough string) { p.dough = dough }

// SetSauce sets the sauce attribute.
func (p *Pizza) SetSauce(sauce string) { p.sauce = sauce }

// SetTopping sets the topping attribute.
func (p *Pizza) SetTopping(topping string) { p.topping = topping }

// Dough returns the dough attribute.
func (p *Pizza) Dough() string { return p.dough }

// Sauce returns the sauce attribute.
func (p *Pizza) Sauce() string { return p.sauce }

// Topping returns the topping attribute.
func (p *Pizza) Topping() string { return p.topping }

// Describe returns the read-only display line for the assembled pizza.
func (p *Pizza) Describe() string {
	return fmt.Sprintf("Pizza with %s dough, %s sauce and %s topping. Mmm.",
		p.dough, p.sauce, p.topping)
}

// Builder assembles a Pizza part by part.
//
// Start allocates a fresh product; each BuildX step mutates it; Pizza
// exposes the finished product. The Cook runs the steps in fixed order,
// but every step is safe to call directly and reports ErrNotStarted
// rather than panicking when no product exists.
type Builder interface {
	// Start resets the builder with a fresh, empty product.
	Start()

	// BuildDough fills the dough part.
	BuildDough() error

	// BuildSauce fills the sauce part.
	BuildSauce() error

	// BuildTopping fills the topping part.
	BuildTopping() error

	// Pizza exposes the finished product.
	// Returns ErrNotStarted if Start was never called.
	Pizza() (*Pizza, error)
}

// base carries the in-progress product shared by all builder variants.
type base struct {
	pizza *Pizza
}

// Start allocates a fresh product, discarding any previous one.
func (b *base) Start() { b.pizza = &Pizza{} }

// Pizza exposes the finished product, or ErrNotStarted before Start.
func (b *base) Pizza() (*Pizza, error) {
	if b.pizza == nil {
		return nil, ErrNotStarted
	}
	return b.pizza, nil
}

// set applies fn to the in-progress product, guarding against a missing one.
func (b *base) set(fn func(*Pizza)) error {
	if b.pizza == nil {
		return ErrNotStarted
	}
	fn(b.pizza)
	return nil
}

// HawaiianBuilder assembles the Hawaiian variant:
// cross dough, mild sauce, ham+pineapple topping.
//
// The zero value is ready to use.
type HawaiianBuilder struct {
	base
}

// BuildDough fills the dough part with DoughCross.
func (b *HawaiianBuilder) BuildDough() error {
	return b.set(func(p *Pizza) { p.SetDough(DoughCross) })
}

// BuildSauce fills the sauce part with SauceMild.
func (b *HawaiianBuilder) BuildSauce() error {
	return b.set(func(p *Pizza) { p.SetSauce(SauceMild) })
}

// BuildTopping fills the topping part with ToppingHam.
func (b *HawaiianBuilder) BuildTopping() error {
	return b.set(func(p *Pizza) { p.SetTopping(ToppingHam) })
}

// SpicyBuilder assembles the spicy variant:
// pan baked dough, hot sauce, pepperoni+salami topping.
//
// The zero value is ready to use.
type SpicyBuilder struct {
	base
}

// BuildDough fills the dough part with DoughPan.
func (b *SpicyBuilder) BuildDough() error {
	return b.set(func(p *Pizza) { p.SetDough(DoughPan) })
}

// BuildSauce fills the sauce part with SauceHot.
func (b *SpicyBuilder) BuildSauce() error {
	return b.set(func(p *Pizza) { p.SetSauce(SauceHot) })
}

// BuildTopping fills the topping part with ToppingSpicy.
func (b *SpicyBuilder) BuildTopping() error {
	return b.set(func(p *Pizza) { p.SetTopping(ToppingSpicy) })
}
