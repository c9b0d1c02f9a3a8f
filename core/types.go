// Package core: type declarations and sentinel errors.
//
// This file declares VertexID, EdgeID, Vertex, Edge, Graph, and the
// New constructor. Method implementations live in methods.go,
// methods_clone.go, traversal.go, and cutpoints.go.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed to a package function.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrUnknownVertex indicates an operation referenced a non-existent vertex.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrUnknownEdge indicates an operation referenced a non-existent edge.
	ErrUnknownEdge = errors.New("core: unknown edge")

	// ErrDuplicateEdge indicates the unordered endpoint pair already has an edge.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrSelfLoop indicates both endpoints of a new edge are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// VertexID identifies a Vertex within its owning Graph.
// IDs are issued in insertion order, starting at 0, and never reused.
type VertexID int

// EdgeID identifies an Edge within its owning Graph.
// IDs are issued in insertion order, starting at 0, and never reused.
type EdgeID int

// Vertex is a node owned by exactly one Graph, carrying a label payload.
type Vertex[V any] struct {
	// ID is the identifier of this vertex within its Graph.
	ID VertexID

	// Label is the caller-defined payload. core never interprets it.
	Label V
}

// Edge is an unordered vertex pair owned by exactly one Graph.
// A and B preserve the argument order of the AddEdge call that created
// the edge; the pair is unordered for all adjacency purposes.
type Edge[E any] struct {
	// ID is the identifier of this edge within its Graph.
	ID EdgeID

	// A and B are the endpoint vertex IDs. A != B (no self-loops).
	A, B VertexID

	// Label is the caller-defined payload. core never interprets it.
	Label E
}

// Graph is an undirected simple graph with labeled vertices and edges.
//
// Storage is an arena of vertices and edges addressed by integer IDs,
// plus a derived adjacency index adj[u][v] = edge ID. The index is
// maintained on every mutation and is always consistent with the edge
// set: no orphan entries, one entry per endpoint per edge.
type Graph[V, E any] struct {
	nextVertex VertexID
	nextEdge   EdgeID

	vertices map[VertexID]*Vertex[V]
	edges    map[EdgeID]*Edge[E]

	// adj[u][v] = ID of the unique edge between u and v (both directions).
	adj map[VertexID]map[VertexID]EdgeID
}

// New creates an empty Graph.
// Complexity: O(1).
func New[V, E any]() *Graph[V, E] {
	return &Graph[V, E]{
		vertices: make(map[VertexID]*Vertex[V]),
		edges:    make(map[EdgeID]*Edge[E]),
		adj:      make(map[VertexID]map[VertexID]EdgeID),
	}
}
