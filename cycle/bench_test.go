package cycle_test

import (
	"testing"

	"github.com/katalvlaran/cyclesim/cycle"
)

// BenchmarkAdvance_LongTail measures detection cost for a tail of 10k steps.
func BenchmarkAdvance_LongTail(b *testing.B) {
	l := lasso{offset: 10_000, period: 97}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cycle.Advance(0, l.step, identity, 1_000_000_000); err != nil {
			b.Fatalf("Advance failed: %v", err)
		}
	}
}

// BenchmarkCombine measures congruence merging for four large periods.
func BenchmarkCombine(b *testing.B) {
	branches := []cycle.Branch{{3739, 3739}, {3761, 3761}, {3797, 3797}, {3889, 3889}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cycle.Combine(branches...); err != nil {
			b.Fatalf("Combine failed: %v", err)
		}
	}
}
