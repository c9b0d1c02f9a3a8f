// Package core: Graph method implementations.
//
// All mutations keep the derived adjacency index exactly consistent with
// the edge set. All slice-valued queries sort ascending by ID so that
// output order equals insertion order, the determinism contract the
// isomorphism engine's tie-breaking depends on.

package core

import "sort"

// AddVertex inserts a new vertex carrying label and returns its ID.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(label V) VertexID {
	id := g.nextVertex
	g.nextVertex++
	g.vertices[id] = &Vertex[V]{ID: id, Label: label}
	g.adj[id] = make(map[VertexID]EdgeID)

	return id
}

// HasVertex reports whether id names a vertex of g.
// Complexity: O(1).
func (g *Graph[V, E]) HasVertex(id VertexID) bool {
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and every incident edge.
// Returns ErrUnknownVertex if id is absent.
// Complexity: O(deg(id)).
func (g *Graph[V, E]) RemoveVertex(id VertexID) error {
	if _, ok := g.vertices[id]; !ok {
		return ErrUnknownVertex
	}
	// Drop incident edges through the adjacency index.
	for nbr, eid := range g.adj[id] {
		delete(g.edges, eid)
		delete(g.adj[nbr], id)
	}
	delete(g.adj, id)
	delete(g.vertices, id)

	return nil
}

// AddEdge creates the unique edge between a and b carrying label and
// returns its ID.
// Returns ErrUnknownVertex if either endpoint is absent, ErrSelfLoop if
// a == b, ErrDuplicateEdge if the pair already has an edge.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(a, b VertexID, label E) (EdgeID, error) {
	// 1) Endpoint validation.
	if _, ok := g.vertices[a]; !ok {
		return 0, ErrUnknownVertex
	}
	if _, ok := g.vertices[b]; !ok {
		return 0, ErrUnknownVertex
	}
	// 2) Simple-graph constraints.
	if a == b {
		return 0, ErrSelfLoop
	}
	if _, ok := g.adj[a][b]; ok {
		return 0, ErrDuplicateEdge
	}
	// 3) Store edge and mirror it in the adjacency index.
	id := g.nextEdge
	g.nextEdge++
	g.edges[id] = &Edge[E]{ID: id, A: a, B: b, Label: label}
	g.adj[a][b] = id
	g.adj[b][a] = id

	return id, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrUnknownEdge if no such edge exists.
// Complexity: O(1).
func (g *Graph[V, E]) RemoveEdge(id EdgeID) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrUnknownEdge
	}
	delete(g.adj[e.A], e.B)
	delete(g.adj[e.B], e.A)
	delete(g.edges, id)

	return nil
}

// HasEdge reports whether an edge exists between a and b.
// Complexity: O(1).
func (g *Graph[V, E]) HasEdge(a, b VertexID) bool {
	_, ok := g.adj[a][b]

	return ok
}

// EdgeBetween returns the ID of the edge between a and b, if any.
// Complexity: O(1).
func (g *Graph[V, E]) EdgeBetween(a, b VertexID) (EdgeID, bool) {
	id, ok := g.adj[a][b]

	return id, ok
}

// Label returns the label of the vertex with the given ID.
// Returns ErrUnknownVertex if id is absent.
func (g *Graph[V, E]) Label(id VertexID) (V, error) {
	v, ok := g.vertices[id]
	if !ok {
		var zero V
		return zero, ErrUnknownVertex
	}

	return v.Label, nil
}

// SetLabel replaces the label of the vertex with the given ID.
// Returns ErrUnknownVertex if id is absent.
func (g *Graph[V, E]) SetLabel(id VertexID, label V) error {
	v, ok := g.vertices[id]
	if !ok {
		return ErrUnknownVertex
	}
	v.Label = label

	return nil
}

// EdgeLabel returns the label of the edge with the given ID.
// Returns ErrUnknownEdge if id is absent.
func (g *Graph[V, E]) EdgeLabel(id EdgeID) (E, error) {
	e, ok := g.edges[id]
	if !ok {
		var zero E
		return zero, ErrUnknownEdge
	}

	return e.Label, nil
}

// SetEdgeLabel replaces the label of the edge with the given ID.
// Returns ErrUnknownEdge if id is absent.
func (g *Graph[V, E]) SetEdgeLabel(id EdgeID, label E) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrUnknownEdge
	}
	e.Label = label

	return nil
}

// Endpoints returns the two endpoint vertex IDs of the edge,
// in the order given to AddEdge.
// Returns ErrUnknownEdge if id is absent.
func (g *Graph[V, E]) Endpoints(id EdgeID) (VertexID, VertexID, error) {
	e, ok := g.edges[id]
	if !ok {
		return 0, 0, ErrUnknownEdge
	}

	return e.A, e.B, nil
}

// Neighbors returns the IDs of all vertices adjacent to id, ascending.
// Returns ErrUnknownVertex if id is absent.
// Complexity: O(d log d), d = deg(id).
func (g *Graph[V, E]) Neighbors(id VertexID) ([]VertexID, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrUnknownVertex
	}
	out := make([]VertexID, 0, len(g.adj[id]))
	for nbr := range g.adj[id] {
		out = append(out, nbr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// IncidentEdges returns the IDs of all edges incident to id, ascending.
// Returns ErrUnknownVertex if id is absent.
// Complexity: O(d log d), d = deg(id).
func (g *Graph[V, E]) IncidentEdges(id VertexID) ([]EdgeID, error) {
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrUnknownVertex
	}
	out := make([]EdgeID, 0, len(g.adj[id]))
	for _, eid := range g.adj[id] {
		out = append(out, eid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Degree returns the number of edges incident to id.
// Returns ErrUnknownVertex if id is absent.
// Complexity: O(1).
func (g *Graph[V, E]) Degree(id VertexID) (int, error) {
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrUnknownVertex
	}

	return len(g.adj[id]), nil
}

// Vertices returns all vertex IDs in ascending (= insertion) order.
// Complexity: O(V log V).
func (g *Graph[V, E]) Vertices() []VertexID {
	out := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns all edge IDs in ascending (= insertion) order.
// Complexity: O(E log E).
func (g *Graph[V, E]) Edges() []EdgeID {
	out := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph[V, E]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph[V, E]) EdgeCount() int { return len(g.edges) }
