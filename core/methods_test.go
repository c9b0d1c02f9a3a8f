// Package core_test verifies Graph method-level contracts: vertex/edge
// lifecycle, simple-graph constraint enforcement, deterministic ordering
// of slice-valued queries, and clone independence.

package core_test

import (
	"testing"

	"github.com/katalvlaran/chemgraph/core"
	"github.com/stretchr/testify/require"
)

// TestGraph_VertexLifecycle covers AddVertex/HasVertex/RemoveVertex.
func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.New[string, string]()

	a := g.AddVertex("a")
	b := g.AddVertex("b")
	require.Equal(t, core.VertexID(0), a, "first vertex ID is 0")
	require.Equal(t, core.VertexID(1), b, "IDs follow insertion order")
	require.True(t, g.HasVertex(a))
	require.Equal(t, 2, g.VertexCount())

	require.NoError(t, g.RemoveVertex(a))
	require.False(t, g.HasVertex(a))
	require.ErrorIs(t, g.RemoveVertex(a), core.ErrUnknownVertex)

	// IDs are never reused after removal.
	c := g.AddVertex("c")
	require.Equal(t, core.VertexID(2), c)
}

// TestGraph_EdgeConstraints covers self-loop, duplicate, and dangling
// endpoint rejection.
func TestGraph_EdgeConstraints(t *testing.T) {
	g := core.New[string, string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")

	_, err := g.AddEdge(a, a, "x")
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = g.AddEdge(a, core.VertexID(99), "x")
	require.ErrorIs(t, err, core.ErrUnknownVertex)

	e, err := g.AddEdge(a, b, "x")
	require.NoError(t, err)
	require.Equal(t, core.EdgeID(0), e)

	// Same unordered pair, both orders.
	_, err = g.AddEdge(a, b, "y")
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
	_, err = g.AddEdge(b, a, "y")
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
}

// TestGraph_EdgeQueries covers HasEdge/EdgeBetween/Endpoints/labels.
func TestGraph_EdgeQueries(t *testing.T) {
	g := core.New[string, string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	e, err := g.AddEdge(a, b, "ab")
	require.NoError(t, err)

	require.True(t, g.HasEdge(a, b))
	require.True(t, g.HasEdge(b, a), "adjacency is symmetric")
	require.False(t, g.HasEdge(a, c))

	got, ok := g.EdgeBetween(b, a)
	require.True(t, ok)
	require.Equal(t, e, got)

	x, y, err := g.Endpoints(e)
	require.NoError(t, err)
	require.Equal(t, a, x, "endpoint order preserves the AddEdge call")
	require.Equal(t, b, y)

	lbl, err := g.EdgeLabel(e)
	require.NoError(t, err)
	require.Equal(t, "ab", lbl)

	require.NoError(t, g.SetEdgeLabel(e, "ab2"))
	lbl, _ = g.EdgeLabel(e)
	require.Equal(t, "ab2", lbl)

	_, err = g.EdgeLabel(core.EdgeID(42))
	require.ErrorIs(t, err, core.ErrUnknownEdge)
}

// TestGraph_RemoveVertexDropsIncidentEdges verifies that removing a
// vertex removes its edges from both the edge set and the adjacency view.
func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.New[string, string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("c")
	g.AddEdge(a, b, "ab")
	g.AddEdge(b, c, "bc")

	require.NoError(t, g.RemoveVertex(b))
	require.Equal(t, 0, g.EdgeCount())
	require.False(t, g.HasEdge(a, b))
	require.False(t, g.HasEdge(b, c))

	nbrs, err := g.Neighbors(a)
	require.NoError(t, err)
	require.Empty(t, nbrs)
}

// TestGraph_DeterministicOrdering locks in the ascending-ID contract of
// Vertices/Edges/Neighbors that the matching engine's tie-breaking
// depends on.
func TestGraph_DeterministicOrdering(t *testing.T) {
	g := core.New[string, string]()
	var ids []core.VertexID
	for i := 0; i < 5; i++ {
		ids = append(ids, g.AddVertex("v"))
	}
	// Star around the middle vertex, edges added out of order.
	g.AddEdge(ids[2], ids[4], "e")
	g.AddEdge(ids[2], ids[0], "e")
	g.AddEdge(ids[2], ids[3], "e")
	g.AddEdge(ids[2], ids[1], "e")

	require.Equal(t, ids, g.Vertices())

	nbrs, err := g.Neighbors(ids[2])
	require.NoError(t, err)
	require.Equal(t, []core.VertexID{ids[0], ids[1], ids[3], ids[4]}, nbrs)

	d, err := g.Degree(ids[2])
	require.NoError(t, err)
	require.Equal(t, 4, d)
}

// TestGraph_CloneIndependence verifies deep-copy semantics: identical
// IDs and labels, then full isolation of subsequent mutation.
func TestGraph_CloneIndependence(t *testing.T) {
	g := core.New[string, string]()
	a := g.AddVertex("a")
	b := g.AddVertex("b")
	e, _ := g.AddEdge(a, b, "ab")

	clone := g.Clone()
	require.Equal(t, g.Vertices(), clone.Vertices())
	require.Equal(t, g.Edges(), clone.Edges())
	lbl, _ := clone.EdgeLabel(e)
	require.Equal(t, "ab", lbl)

	// Mutating the clone must not touch the source, and vice versa.
	require.NoError(t, clone.RemoveEdge(e))
	require.True(t, g.HasEdge(a, b))

	require.NoError(t, g.SetLabel(a, "a2"))
	got, _ := clone.Label(a)
	require.Equal(t, "a", got)

	// New IDs on the clone continue the source's sequence.
	c := clone.AddVertex("c")
	require.Equal(t, core.VertexID(2), c)
}
