// Package core: deterministic traversal and connectivity queries.
//
// BFSOrder visits neighbors in ascending vertex-ID order, so two
// structurally equal construction sequences produce identical traversal
// sequences. ConnectedComponents seeds searches in ascending ID order
// and reports sorted member sets.

package core

// BFSOrder returns the vertices reachable from start in breadth-first
// order. Neighbors are expanded in ascending ID (= insertion) order.
// Returns ErrUnknownVertex if start is absent.
// Complexity: O(V + E) plus neighbor sorting.
func (g *Graph[V, E]) BFSOrder(start VertexID) ([]VertexID, error) {
	if _, ok := g.vertices[start]; !ok {
		return nil, ErrUnknownVertex
	}
	visited := make(map[VertexID]bool, len(g.vertices))
	order := make([]VertexID, 0, len(g.vertices))
	queue := []VertexID{start}
	visited[start] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		nbrs, _ := g.Neighbors(cur) // cur is known to exist
		for _, nbr := range nbrs {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return order, nil
}

// ConnectedComponents returns the vertex sets of each connected
// component. Components are ordered by their smallest vertex ID and each
// member set is sorted ascending.
// Complexity: O(V + E) plus sorting.
func (g *Graph[V, E]) ConnectedComponents() [][]VertexID {
	visited := make(map[VertexID]bool, len(g.vertices))
	var comps [][]VertexID

	// Seed BFS from every unvisited vertex in ascending ID order; the
	// BFS order within a component is then sorted into a member set.
	for _, seed := range g.Vertices() {
		if visited[seed] {
			continue
		}
		order, _ := g.BFSOrder(seed)
		comp := make([]VertexID, len(order))
		copy(comp, order)
		sortVertexIDs(comp)
		for _, id := range comp {
			visited[id] = true
		}
		comps = append(comps, comp)
	}

	return comps
}

// IsConnected reports whether the graph has at most one connected
// component. Graphs with zero or one vertex are connected.
// Complexity: O(V + E).
func (g *Graph[V, E]) IsConnected() bool {
	if len(g.vertices) <= 1 {
		return true
	}
	order, _ := g.BFSOrder(g.Vertices()[0])

	return len(order) == len(g.vertices)
}

// sortVertexIDs sorts ids ascending in place (insertion sort; component
// slices are produced from already nearly sorted BFS output).
func sortVertexIDs(ids []VertexID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
