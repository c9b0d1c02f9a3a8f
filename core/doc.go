// Package core defines the central Graph, Vertex, and Edge types used by
// every chemgraph component, together with deterministic traversal and
// structure probes (connected components, cut vertices, ring edges).
//
// What:
//
//   - Graph[V, E]: an undirected simple graph whose vertices and edges
//     carry caller-defined label payloads. The package never interprets
//     labels; chemistry semantics live in molecule/ and group/.
//   - Opaque integer identifiers: VertexID and EdgeID are issued by the
//     owning Graph in insertion order and never reused. All slice-valued
//     queries return IDs in ascending order, so ascending ID order IS
//     insertion order. Matching code relies on this determinism contract:
//     two structurally equal call sequences produce identical traversals.
//   - Structure probes: BFSOrder, ConnectedComponents, IsConnected,
//     CutVertices, Bridges, RingEdges, RingVertices.
//
// Why:
//
//   - Molecules and wildcard patterns are both graphs first; one storage
//     model serves them all.
//   - The isomorphism engine's tie-breaking depends on reproducible vertex
//     ordering, which this package guarantees for free via integer IDs.
//
// Concurrency:
//
//	Graph performs no internal locking. Any number of goroutines may read
//	the same Graph concurrently; mutation must be serialized externally
//	against all other access. Query methods never mutate the graph.
//
// Errors:
//
//	ErrNilGraph       - nil *Graph passed to a package function.
//	ErrUnknownVertex  - operation referenced a vertex ID not in the graph.
//	ErrUnknownEdge    - operation referenced an edge ID not in the graph.
//	ErrDuplicateEdge  - the unordered endpoint pair already has an edge.
//	ErrSelfLoop       - both endpoints of a new edge are the same vertex.
//
// Complexity:
//
//   - Mutations and point queries: O(1) amortized (map-backed).
//   - Slice-valued queries: O(k log k) for k returned IDs (sorting).
//   - Traversal / probes: O(V + E).
package core
