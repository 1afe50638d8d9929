package gauss_test

import (
	"testing"

	"github.com/katalvlaran/quadra/gauss"
)

// BenchmarkIntegrate_Order50 measures node solving plus 50 integrand samples.
func BenchmarkIntegrate_Order50(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gauss.Integrate(sinSqrt, 0, 1, 50); err != nil {
			b.Fatalf("Integrate failed: %v", err)
		}
	}
}

// BenchmarkAdaptive_SinSqrt measures the 10 → 40 doubling sequence.
func BenchmarkAdaptive_SinSqrt(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gauss.Adaptive(sinSqrt, 0, 1, 1e-10); err != nil {
			b.Fatalf("Adaptive failed: %v", err)
		}
	}
}
