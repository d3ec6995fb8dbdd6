package histogram_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gradviz/histogram"
)

// benchmarkNew bins n uniform points into a bins×bins grid.
func benchmarkNew(b *testing.B, n, bins int) {
	rng := rand.New(rand.NewSource(1))
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64() * 1e4
		y[i] = rng.Float64() * 1e4
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := histogram.New(x, y, histogram.WithBins(bins)); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

func BenchmarkNew_10k_200(b *testing.B)  { benchmarkNew(b, 10_000, 200) }
func BenchmarkNew_100k_200(b *testing.B) { benchmarkNew(b, 100_000, 200) }
func BenchmarkNew_100k_800(b *testing.B) { benchmarkNew(b, 100_000, 800) }
