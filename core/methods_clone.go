// Package core: cloning.
//
// Determinism & identity:
//   - Clone copies the ID counters, so vertex and edge IDs on the clone
//     are identical to the source's and future additions continue the
//     same numeric sequence without collision. A Mapping computed against
//     a graph therefore stays positionally valid against its clone.

package core

// Clone returns a deep copy of the Graph: fresh Vertex and Edge objects,
// fresh adjacency index, identical IDs and labels.
//
// Labels are copied by value. Matching algorithms clone the graph under
// inspection instead of mutating it, and concurrent queries against a
// shared pattern each work on independent state.
//
// Complexity: O(V + E).
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	clone := New[V, E]()
	clone.nextVertex = g.nextVertex
	clone.nextEdge = g.nextEdge

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex[V]{ID: id, Label: v.Label}
		clone.adj[id] = make(map[VertexID]EdgeID, len(g.adj[id]))
	}
	for id, e := range g.edges {
		clone.edges[id] = &Edge[E]{ID: id, A: e.A, B: e.B, Label: e.Label}
		clone.adj[e.A][e.B] = id
		clone.adj[e.B][e.A] = id
	}

	return clone
}
