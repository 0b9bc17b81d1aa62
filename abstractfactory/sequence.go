// SPDX-License-Identifier: MIT
// Package: creational/abstractfactory
//
// sequence.go — the shape identifier source.
//
// Design contract (strict):
//   - Identifiers are unique and strictly increasing per Sequence.
//   - A Sequence is never reset; exhaustion of uint64 is not a concern here.
//   - Next is safe for concurrent use (sync/atomic), so a Sequence may be
//     shared between factories.

package abstractfactory

import "sync/atomic"

// Sequence hands out sequential shape identifiers starting at 0.
//
// It replaces the classic "static counter" with an explicitly constructed,
// injectable generator. The zero value is ready to use.
type Sequence struct {
	n atomic.Uint64
}

// NewSequence constructs a Sequence whose first identifier is 0.
func NewSequence() *Sequence { return &Sequence{} }

// Next returns the next identifier and advances the sequence.
func (s *Sequence) Next() uint64 { return s.n.Add(1) - 1 }

// defaultSequence backs factories constructed without WithSequence.
var defaultSequence = NewSequence()

// DefaultSequence returns the package-wide shared Sequence.
func DefaultSequence() *Sequence { return defaultSequence }
