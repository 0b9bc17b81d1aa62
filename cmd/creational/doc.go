// Command creational is the single entry point for the pattern demos.
//
// With no arguments it runs all three demos sequentially, reproducing the
// classic transcript:
//
//	creational
//
// A subcommand runs one demo in isolation:
//
//	creational builder
//	creational factorymethod
//	creational abstractfactory
//
// All output is deterministic console text; there are no flags, environment
// variables, or persisted state.
package main
