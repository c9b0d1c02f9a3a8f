// Package ring perceives the cycle structure of a graph: the smallest
// set of smallest rings (SSSR), the cycle rank, and per-vertex /
// per-edge ring membership.
//
// What:
//
//   - SSSR: for every edge on a cycle, find a shortest cycle through it
//     by breadth-first search with the edge itself excluded; deduplicate
//     candidates by canonical rotation; keep exactly
//     |E| - |V| + components independent rings (independence over GF(2)
//     in edge space, shortest candidates first).
//   - Rank: the cycle rank |E| - |V| + components.
//   - VertexMembership / EdgeMembership: whether a vertex or edge lies on
//     any cycle (bridge classification, no SSSR needed).
//
// Why:
//
//	Ring membership feeds the isomorphism engine's ordering invariant,
//	and external group-additivity lookups key on ring features of matched
//	atoms. Acyclic graphs yield the empty ring set; fused and bridged
//	systems keep every independent ring even when rings share atoms.
//
// Determinism:
//
//	Candidate cycles are scanned in ascending edge-ID order, BFS expands
//	neighbors in ascending vertex-ID order, and ties between equal-length
//	candidates break on canonical signature, so SSSR output is identical
//	across runs.
//
// Complexity:
//
//	O(E · (V + E)) for SSSR candidate generation plus O(R² · E/64) for
//	the GF(2) elimination, R = cycle rank. The graphs this package serves
//	are small (well under 100 vertices).
package ring
