package interval_test

import (
	"testing"

	"github.com/katalvlaran/numquad/interval"
)

// BenchmarkNew1e4 benchmarks uniform construction with 10000 partitions.
func BenchmarkNew1e4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := interval.New(0, 1, 10000); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkPartitions1e4 benchmarks the defensive copy of the sequence.
func BenchmarkPartitions1e4(b *testing.B) {
	in, err := interval.New(0, 1, 10000)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = in.Partitions()
	}
}
