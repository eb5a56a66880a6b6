package decorr_test

import (
	"testing"

	"github.com/lfillbrook/shufflist/decorr"
)

// benchmarkGenerate runs Generate with a distinct seed per iteration so the
// measurement averages over easy and hard starting permutations.
func benchmarkGenerate(b *testing.B, window, target int, v decorr.Variant) {
	opts := decorr.DefaultOptions(window, target, v)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opts.Seed = int64(i + 1)
		if _, err := decorr.Generate(opts); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Pooled16x128 measures the pooled variant at the typical
// NMR sweep size (16 gradient levels).
func BenchmarkGenerate_Pooled16x128(b *testing.B) {
	benchmarkGenerate(b, 16, 128, decorr.Pooled)
}

// BenchmarkGenerate_Pooled16x512 measures a long schedule.
func BenchmarkGenerate_Pooled16x512(b *testing.B) {
	benchmarkGenerate(b, 16, 512, decorr.Pooled)
}

// BenchmarkGenerate_Alternating32x256 measures the alternating variant at
// its documented working size.
func BenchmarkGenerate_Alternating32x256(b *testing.B) {
	benchmarkGenerate(b, 32, 256, decorr.Alternating)
}
