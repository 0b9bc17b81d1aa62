// cmd/creational/demos.go
package main

import (
	"fmt"
	"io"

	"github.com/designlab/creational/abstractfactory"
	"github.com/designlab/creational/builder"
	"github.com/designlab/creational/factorymethod"
)

// Demo banners, printed before each demo's transcript.
const (
	bannerBuilder         = "\n----------------BUILDER ---------------------------"
	bannerFactoryMethod   = "\n----------------FACTORY METHOD ---------------------------"
	bannerAbstractFactory = "\n----------------ABSTRACT FACTORY ---------------------------"
)

// runAll runs the three demos sequentially in the classic order.
func runAll(w io.Writer) error {
	if err := runBuilderDemo(w); err != nil {
		return err
	}
	if err := runFactoryMethodDemo(w); err != nil {
		return err
	}

	return runAbstractFactoryDemo(w)
}

// runBuilderDemo directs both builder variants through the fixed build
// sequence and displays the finished pizzas.
func runBuilderDemo(w io.Writer) error {
	fmt.Fprintln(w, bannerBuilder)

	var cook builder.Cook
	for _, b := range []builder.Builder{
		&builder.HawaiianBuilder{},
		&builder.SpicyBuilder{},
	} {
		pizza, err := cook.Make(b)
		if err != nil {
			return fmt.Errorf("builder demo: %w", err)
		}
		fmt.Fprintln(w, pizza.Describe())
	}

	return nil
}

// runFactoryMethodDemo registers two documents through the creation hook and
// reports the registry, narrating each framework step.
func runFactoryMethodDemo(w io.Writer) error {
	fmt.Fprintln(w, bannerFactoryMethod)

	app, err := factorymethod.NewApplication(
		func(name string) factorymethod.Document {
			return factorymethod.NewTextDocument(name)
		},
		factorymethod.WithOnOpen(func(d factorymethod.Document) {
			fmt.Fprintln(w, "   "+d.Open())
		}),
	)
	if err != nil {
		return fmt.Errorf("factory method demo: %w", err)
	}
	fmt.Fprintln(w, "Application: ctor")

	for _, name := range []string{"foo", "bar"} {
		fmt.Fprintln(w, "Application: NewDocument()")
		if _, err = app.NewDocument(name); err != nil {
			return fmt.Errorf("factory method demo: %w", err)
		}
	}

	fmt.Fprintln(w, "Application: ReportDocs()")
	for _, name := range app.Report() {
		fmt.Fprintln(w, "   "+name)
	}

	return nil
}

// runAbstractFactoryDemo draws a curved/straight/curved sequence from the
// simple family, with identifiers from a fresh sequence.
func runAbstractFactoryDemo(w io.Writer) error {
	fmt.Fprintln(w, bannerAbstractFactory)

	seq := abstractfactory.NewSequence()
	factory := abstractfactory.NewSimpleFactory(abstractfactory.WithSequence(seq))

	shapes := []abstractfactory.Shape{
		factory.NewCurved(),
		factory.NewStraight(),
		factory.NewCurved(),
	}
	for _, s := range shapes {
		fmt.Fprintln(w, s.Draw())
	}

	return nil
}
