// Package core_test: traversal, connectivity, and structure probes.

package core_test

import (
	"testing"

	"github.com/katalvlaran/chemgraph/core"
	"github.com/stretchr/testify/require"
)

// path builds v0-v1-...-v(n-1) and returns the graph plus IDs.
func path(n int) (*core.Graph[string, string], []core.VertexID) {
	g := core.New[string, string]()
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = g.AddVertex("v")
	}
	for i := 0; i+1 < n; i++ {
		g.AddEdge(ids[i], ids[i+1], "e")
	}
	return g, ids
}

// cycle builds a simple n-cycle.
func cycle(n int) (*core.Graph[string, string], []core.VertexID) {
	g, ids := path(n)
	g.AddEdge(ids[n-1], ids[0], "e")
	return g, ids
}

func TestBFSOrder_Deterministic(t *testing.T) {
	// 0-1, 0-2, 1-3: BFS from 0 visits layers in ascending ID order.
	g := core.New[string, string]()
	v0 := g.AddVertex("v")
	v1 := g.AddVertex("v")
	v2 := g.AddVertex("v")
	v3 := g.AddVertex("v")
	g.AddEdge(v0, v2, "e") // insertion order of edges must not matter
	g.AddEdge(v0, v1, "e")
	g.AddEdge(v1, v3, "e")

	order, err := g.BFSOrder(v0)
	require.NoError(t, err)
	require.Equal(t, []core.VertexID{v0, v1, v2, v3}, order)

	_, err = g.BFSOrder(core.VertexID(99))
	require.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestConnectedComponents(t *testing.T) {
	g := core.New[string, string]()
	a := g.AddVertex("v")
	b := g.AddVertex("v")
	c := g.AddVertex("v")
	d := g.AddVertex("v")
	g.AddEdge(a, b, "e")
	g.AddEdge(c, d, "e")
	lone := g.AddVertex("v")

	comps := g.ConnectedComponents()
	require.Equal(t, [][]core.VertexID{{a, b}, {c, d}, {lone}}, comps)
	require.False(t, g.IsConnected())

	g2, _ := cycle(4)
	require.True(t, g2.IsConnected())
	require.Len(t, g2.ConnectedComponents(), 1)

	empty := core.New[string, string]()
	require.True(t, empty.IsConnected())
	require.Empty(t, empty.ConnectedComponents())
}

func TestBridgesAndCutVertices(t *testing.T) {
	// Triangle 0-1-2 with a pendant chain 2-3-4:
	// bridges are (2,3) and (3,4); cut vertices are 2 and 3.
	g := core.New[string, string]()
	ids := make([]core.VertexID, 5)
	for i := range ids {
		ids[i] = g.AddVertex("v")
	}
	g.AddEdge(ids[0], ids[1], "e")
	g.AddEdge(ids[1], ids[2], "e")
	g.AddEdge(ids[2], ids[0], "e")
	e23, _ := g.AddEdge(ids[2], ids[3], "e")
	e34, _ := g.AddEdge(ids[3], ids[4], "e")

	require.Equal(t, []core.EdgeID{e23, e34}, g.Bridges())
	require.Equal(t, []core.VertexID{ids[2], ids[3]}, g.CutVertices())

	// Ring edges are exactly the triangle's edges; ring vertices its corners.
	require.Equal(t, []core.EdgeID{0, 1, 2}, g.RingEdges())
	require.Equal(t, []core.VertexID{ids[0], ids[1], ids[2]}, g.RingVertices())
}

func TestBridges_PureCycleHasNone(t *testing.T) {
	g, _ := cycle(6)
	require.Empty(t, g.Bridges())
	require.Empty(t, g.CutVertices())
	require.Len(t, g.RingEdges(), 6)
}

func TestBridges_TreeIsAllBridges(t *testing.T) {
	g, _ := path(5)
	require.Len(t, g.Bridges(), 4)
	require.Empty(t, g.RingEdges())
	require.Empty(t, g.RingVertices())
	// Interior path vertices are all cut vertices.
	require.Len(t, g.CutVertices(), 3)
}
