package matmul

import (
	"testing"

	"github.com/ajroetker/go-matbench/hwy"
)

func BenchmarkKernels(b *testing.B) {
	b.Logf("Dispatch level: %s", hwy.CurrentName())
	sizes := []int{32, 64, 128, 256}
	for _, kernel := range Kernels() {
		for _, n := range sizes {
			b.Run(kernel.Name+"/"+sizeStr(n), func(b *testing.B) {
				rng := NewRand(uint64(n))
				x := RandomFrom(rng, n, n)
				y := RandomFrom(rng, n, n)
				ops := float64(2 * n * n * n)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					kernel.Fn(x, y)
				}
				b.ReportMetric(ops*float64(b.N)/b.Elapsed().Seconds()/1e9, "GOPS")
			})
		}
	}
}
