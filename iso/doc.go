// Package iso is the isomorphism engine: exact graph isomorphism,
// subgraph embedding, and automorphism enumeration over core graphs,
// parameterized by pluggable vertex/edge compatibility predicates.
//
// What:
//
//   - Exact: label- and adjacency-preserving bijection covering every
//     edge of both graphs (species deduplication).
//   - Subgraph: injective embedding of a pattern into part of a target;
//     target edges outside the mapped region are ignored, only edges
//     between two mapped pattern vertices must exist and be compatible
//     in the target (functional-group classification).
//   - SubgraphAll / Automorphisms: exhaustive enumeration of every
//     mapping (symmetry numbers need the full automorphism count, not an
//     existence test).
//
// How:
//
//	One backtracking search serves all modes. Both graphs are first
//	flattened into dense index-based sides (degree, adjacency matrix,
//	ring-membership flags) so the hot loop runs on ints, then pattern
//	vertices are ordered most-constrained-first (ties by insertion order)
//	and assigned one per depth on an explicit stack — no native
//	recursion, so the bounded variant is a plain loop-counter check and
//	stack depth never limits input size. Cheap invariants (degree, ring
//	flag) only order and prune candidates; correctness rests solely on
//	the compatibility predicates and adjacency checks.
//
// Outcomes:
//
//	"No mapping exists" is an expected result, not an error: Exact and
//	Subgraph return a nil *Mapping, the enumerating variants an empty
//	slice. ErrSearchAborted is returned only when a caller-supplied step
//	budget runs out, so callers never confuse "absence proven" with
//	"absence unproven". Context cancellation surfaces as ctx.Err().
//
// Determinism:
//
//	Identical inputs yield identical mappings in identical order; the
//	search is exhaustive within its bound and retrying with the same
//	input reproduces the same outcome exactly.
//
// Errors:
//
//	ErrNilGraph        - nil graph pointer passed.
//	ErrNilPredicate    - nil compatibility predicate passed.
//	ErrOptionViolation - invalid Option supplied.
//	ErrSearchAborted   - step budget exceeded before an answer was proven.
//
// Complexity:
//
//	Exponential in the worst case, as inherent to the problem. The
//	ordering heuristic and early adjacency pruning keep it practical on
//	the small, sparse, highly structured graphs this system matches
//	(typically well under 100 vertices).
package iso
