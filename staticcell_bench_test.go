package staticcell

import "testing"

var sinkA *A

func BenchmarkInitedGet(b *testing.B) {
	proof := aProof
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkA = proof.Get()
	}
}

func BenchmarkInitedGetParallel(b *testing.B) {
	proof := aProof
	b.RunParallel(func(pb *testing.PB) {
		var local *A
		for pb.Next() {
			local = proof.Get()
		}
		_ = local
	})
}
