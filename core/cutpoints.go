// Package core: cut-vertex and ring-bond detection.
//
// A bridge is an edge whose removal disconnects its component; every
// non-bridge edge lies on at least one cycle ("ring bond"). A cut vertex
// is a vertex whose removal disconnects its component. Both are derived
// from one iterative low-link depth-first pass (explicit stack, no native
// recursion), seeded in ascending vertex-ID order for determinism.

package core

import "sort"

// lowlinkState carries the shared DFS bookkeeping of one low-link pass.
type lowlinkState[V, E any] struct {
	g          *Graph[V, E]
	time       int
	disc       map[VertexID]int    // discovery index, present == visited
	low        map[VertexID]int    // lowest discovery index reachable
	parentEdge map[VertexID]EdgeID // tree edge that reached the vertex

	bridges map[EdgeID]bool
	cuts    map[VertexID]bool
}

// lowlinkFrame is one explicit DFS stack entry.
type lowlinkFrame struct {
	v    VertexID
	nbrs []VertexID
	next int
	root bool
}

// runLowlink executes the full low-link pass over every component.
func runLowlink[V, E any](g *Graph[V, E]) *lowlinkState[V, E] {
	s := &lowlinkState[V, E]{
		g:          g,
		disc:       make(map[VertexID]int, len(g.vertices)),
		low:        make(map[VertexID]int, len(g.vertices)),
		parentEdge: make(map[VertexID]EdgeID, len(g.vertices)),
		bridges:    make(map[EdgeID]bool),
		cuts:       make(map[VertexID]bool),
	}
	for _, seed := range g.Vertices() {
		if _, seen := s.disc[seed]; !seen {
			s.visitComponent(seed)
		}
	}

	return s
}

// visitComponent runs the explicit-stack DFS from root, classifying
// bridges and cut vertices as frames unwind.
func (s *lowlinkState[V, E]) visitComponent(root VertexID) {
	stack := []lowlinkFrame{s.push(root, true)}
	rootChildren := 0

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// Expand the next unvisited neighbor, if any.
		if top.next < len(top.nbrs) {
			nbr := top.nbrs[top.next]
			top.next++
			eid := s.g.adj[top.v][nbr]
			// Skip only the tree edge used to reach top.v; a parallel
			// path back to the parent is a genuine cycle.
			if pe, ok := s.parentEdge[top.v]; ok && pe == eid {
				continue
			}
			if _, seen := s.disc[nbr]; seen {
				// Back edge: pull low[v] down to disc[nbr].
				if s.disc[nbr] < s.low[top.v] {
					s.low[top.v] = s.disc[nbr]
				}
				continue
			}
			// Tree edge: descend.
			s.parentEdge[nbr] = eid
			if top.root {
				rootChildren++
			}
			stack = append(stack, s.push(nbr, false))
			continue
		}

		// All neighbors expanded: unwind this frame.
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			break
		}
		parent := &stack[len(stack)-1]
		if s.low[top.v] < s.low[parent.v] {
			s.low[parent.v] = s.low[top.v]
		}
		if s.low[top.v] > s.disc[parent.v] {
			s.bridges[s.parentEdge[top.v]] = true
		}
		if !parent.root && s.low[top.v] >= s.disc[parent.v] {
			s.cuts[parent.v] = true
		}
	}

	if rootChildren >= 2 {
		s.cuts[root] = true
	}
}

// push discovers v and builds its DFS frame.
func (s *lowlinkState[V, E]) push(v VertexID, root bool) lowlinkFrame {
	s.disc[v] = s.time
	s.low[v] = s.time
	s.time++
	nbrs, _ := s.g.Neighbors(v)

	return lowlinkFrame{v: v, nbrs: nbrs, root: root}
}

// CutVertices returns every cut vertex (articulation point), ascending.
// Complexity: O(V + E).
func (g *Graph[V, E]) CutVertices() []VertexID {
	s := runLowlink(g)
	out := make([]VertexID, 0, len(s.cuts))
	for id := range s.cuts {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Bridges returns every bridge edge, ascending.
// Complexity: O(V + E).
func (g *Graph[V, E]) Bridges() []EdgeID {
	s := runLowlink(g)
	out := make([]EdgeID, 0, len(s.bridges))
	for id := range s.bridges {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// RingEdges returns every edge lying on at least one cycle (the
// non-bridge edges), ascending.
// Complexity: O(V + E).
func (g *Graph[V, E]) RingEdges() []EdgeID {
	s := runLowlink(g)
	out := make([]EdgeID, 0, len(g.edges))
	for _, id := range g.Edges() {
		if !s.bridges[id] {
			out = append(out, id)
		}
	}

	return out
}

// RingVertices returns every vertex lying on at least one cycle
// (endpoints of ring edges), ascending.
// Complexity: O(V + E).
func (g *Graph[V, E]) RingVertices() []VertexID {
	s := runLowlink(g)
	members := make(map[VertexID]bool)
	for _, id := range g.Edges() {
		if s.bridges[id] {
			continue
		}
		e := g.edges[id]
		members[e.A] = true
		members[e.B] = true
	}
	out := make([]VertexID, 0, len(members))
	for id := range members {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
