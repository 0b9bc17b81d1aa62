// Package creational is your in-memory playground for learning the three
// classic creational design patterns — Builder, Factory Method and
// Abstract Factory — through small, deterministic, fully tested demos.
//
// 🚀 What is creational?
//
//	A modern, beginner-friendly library that brings together:
//		• Builder: a Cook directs pizza builders through a fixed build sequence
//		• Factory Method: an Application defers document creation to a hook
//		• Abstract Factory: shape factories produce consistent product families
//		• A single driver (cmd/creational) that runs all demos sequentially
//
// ✨ Why choose creational?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every demo prints the same transcript on every run
//   - Pure Go core – patterns expressed with interfaces and composition,
//     not inheritance chains
//   - Extensible – functional options and observation hooks (OnStep, OnOpen…)
//     let you watch each pattern work without changing its contract
//
// Under the hood, everything is organized under three subpackages:
//
//	builder/         — Pizza product, pizza builders & the Cook director
//	factorymethod/   — Document registry with a pluggable creation hook
//	abstractfactory/ — Shape families, factories & the ID sequence
//
// Quick taste:
//
//	var cook builder.Cook
//	pizza, _ := cook.Make(&builder.HawaiianBuilder{})
//	fmt.Println(pizza.Describe())
//	// Pizza with cross dough, mild sauce and ham+pineapple topping. Mmm.
//
// Dive into each package's doc.go for the full contract, and into
// examples/ for runnable scenarios.
//
//	go get github.com/designlab/creational
package creational
