package iso_test

import (
	"testing"

	"github.com/katalvlaran/chemgraph/core"
	"github.com/katalvlaran/chemgraph/iso"
)

// BenchmarkExact_Cycle measures an exact match of a large cycle against
// its clone.
func BenchmarkExact_Cycle(b *testing.B) {
	const n = 200
	g := cycleGraph(n)
	h := g.Clone()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = iso.Exact(g, h, eq, eq)
	}
}

// BenchmarkSubgraphAll_PathInCycle measures full enumeration of a short
// path pattern over a large cycle.
func BenchmarkSubgraphAll_PathInCycle(b *testing.B) {
	pattern := pathGraph(5)
	target := cycleGraph(500)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = iso.SubgraphAll(pattern, target, eq, eq)
	}
}

// BenchmarkAutomorphisms_Star measures automorphism enumeration where
// the group is large: a star with 7 leaves has 7! = 5040 self-mappings.
func BenchmarkAutomorphisms_Star(b *testing.B) {
	g := core.New[string, string]()
	hub := g.AddVertex("a")
	for i := 0; i < 7; i++ {
		leaf := g.AddVertex("a")
		_, _ = g.AddEdge(hub, leaf, "-")
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = iso.Automorphisms(g, eq, eq)
	}
}
