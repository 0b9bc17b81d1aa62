package builder_test

import (
	"testing"

	"github.com/designlab/creational/builder"
)

// BenchmarkCook_Make measures a full build sequence on the Hawaiian variant.
func BenchmarkCook_Make(b *testing.B) {
	var cook builder.Cook
	hb := &builder.HawaiianBuilder{}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cook.Make(hb)
	}
}

// BenchmarkCook_MakeWithHook measures the overhead of the OnStep hook.
func BenchmarkCook_MakeWithHook(b *testing.B) {
	var cook builder.Cook
	sb := &builder.SpicyBuilder{}
	var steps int
	hook := builder.WithOnStep(func(builder.Step) { steps++ })

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = cook.Make(sb, hook)
	}
}
