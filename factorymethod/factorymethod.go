// SPDX-License-Identifier: MIT
// Package: creational/factorymethod
//
// factorymethod.go — the Document contract, the TextDocument variant, and
// the Application framework with its pluggable creation hook.
//
// Design contract (strict):
//   - The framework handles Documents only through the Document interface.
//   - Concrete document selection happens in the CreateFunc hook, never here.
//   - The registry is append-only and preserves call order.
//   - Registration never panics; overflow and nil hooks surface as sentinels.

package factorymethod

import "fmt"

// Document is the framework's view of a registered document.
type Document interface {
	// Name returns the name assigned at construction.
	Name() string

	// Open returns the document's open message.
	Open() string

	// Close returns the document's close message.
	Close() string
}

// TextDocument is a concrete Document variant with a name set at construction.
type TextDocument struct {
	name string
}

// NewTextDocument constructs a TextDocument with the given name.
func NewTextDocument(name string) *TextDocument {
	return &TextDocument{name: name}
}

// Name returns the name assigned at construction.
func (d *TextDocument) Name() string { return d.name }

// Open returns the open message.
func (d *TextDocument) Open() string { return "TextDocument: Open()" }

// Close returns the close message.
func (d *TextDocument) Close() string { return "TextDocument: Close()" }

// CreateFunc is the factory-method hook: it decides the concrete Document
// type for a given name. Clients supply it at Application construction.
type CreateFunc func(name string) Document

// Application is the framework: it owns an ordered, append-only registry of
// documents and defers concrete document creation to its CreateFunc hook.
type Application struct {
	create   CreateFunc
	docs     []Document
	capacity int // 0 = unbounded
	onOpen   func(Document)
}

// NewApplication constructs an Application around the given creation hook.
// Returns ErrNilCreate for a nil hook and ErrOptionViolation for invalid
// option values.
func NewApplication(create CreateFunc, opts ...Option) (*Application, error) {
	if create == nil {
		return nil, ErrNilCreate
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	docs := make([]Document, 0, o.capacity)
	return &Application{
		create:   create,
		docs:     docs,
		capacity: o.capacity,
		onOpen:   o.onOpen,
	}, nil
}

// NewDocument invokes the creation hook for name, appends the new document
// to the registry, opens it via the OnOpen hook, and returns it.
//
// Returns ErrCapacityExceeded when a fixed-capacity registry is full and
// ErrNilDocument when the hook returns nil; the registry is unchanged in
// both cases.
func (a *Application) NewDocument(name string) (Document, error) {
	if a.capacity > 0 && len(a.docs) >= a.capacity {
		return nil, fmt.Errorf("%w: registry full at %d documents", ErrCapacityExceeded, a.capacity)
	}

	doc := a.create(name)
	if doc == nil {
		return nil, fmt.Errorf("%w: for name %q", ErrNilDocument, name)
	}

	a.docs = append(a.docs, doc)
	a.onOpen(doc)

	return doc, nil
}

// Len returns the number of registered documents.
func (a *Application) Len() int { return len(a.docs) }

// Docs returns the registered documents in insertion order.
// The returned slice is a copy; mutating it does not affect the registry.
func (a *Application) Docs() []Document {
	out := make([]Document, len(a.docs))
	copy(out, a.docs)
	return out
}

// Report returns every registered document's name in insertion order.
func (a *Application) Report() []string {
	names := make([]string, len(a.docs))
	for i, d := range a.docs {
		names[i] = d.Name()
	}
	return names
}
