package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/avgdist/core"
)

// BenchmarkNewGraph_Random measures construction of a sparse random graph.
func BenchmarkNewGraph_Random(b *testing.B) {
	const (
		V = 10000
		E = 50000
	)
	rng := rand.New(rand.NewSource(42))
	edges := make([]core.Edge, E)
	for i := range edges {
		edges[i] = core.Edge{U: rng.Intn(V), V: rng.Intn(V)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.NewGraph(edges)
	}
}
