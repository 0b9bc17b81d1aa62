package abstractfactory_test

import (
	"testing"

	"github.com/designlab/creational/abstractfactory"
)

// BenchmarkSequence_Next measures identifier allocation.
func BenchmarkSequence_Next(b *testing.B) {
	seq := abstractfactory.NewSequence()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = seq.Next()
	}
}

// BenchmarkSimpleFactory_NewCurved measures shape creation through the factory.
func BenchmarkSimpleFactory_NewCurved(b *testing.B) {
	seq := abstractfactory.NewSequence()
	factory := abstractfactory.NewSimpleFactory(abstractfactory.WithSequence(seq))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = factory.NewCurved()
	}
}
