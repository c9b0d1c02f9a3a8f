// Package ring: SSSR perception.

package ring

import (
	"errors"
	"math/bits"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/chemgraph/core"
)

// ErrNilGraph is returned if a nil graph pointer is passed.
var ErrNilGraph = errors.New("ring: graph is nil")

// Rank returns the cycle rank |E| - |V| + components, the number of
// independent rings. Returns 0 for a nil graph.
func Rank[V, E any](g *core.Graph[V, E]) int {
	if g == nil {
		return 0
	}

	return g.EdgeCount() - g.VertexCount() + len(g.ConnectedComponents())
}

// VertexMembership reports, for every vertex, whether it lies on at
// least one cycle.
func VertexMembership[V, E any](g *core.Graph[V, E]) map[core.VertexID]bool {
	out := make(map[core.VertexID]bool, g.VertexCount())
	for _, id := range g.Vertices() {
		out[id] = false
	}
	for _, id := range g.RingVertices() {
		out[id] = true
	}

	return out
}

// EdgeMembership reports, for every edge, whether it lies on at least
// one cycle (i.e. is not a bridge).
func EdgeMembership[V, E any](g *core.Graph[V, E]) map[core.EdgeID]bool {
	out := make(map[core.EdgeID]bool, g.EdgeCount())
	for _, id := range g.Edges() {
		out[id] = false
	}
	for _, id := range g.RingEdges() {
		out[id] = true
	}

	return out
}

// candidate is one shortest cycle through a particular edge, held both
// as the vertex sequence (for output) and as an edge bitset (for GF(2)
// independence elimination).
type candidate struct {
	verts []core.VertexID
	bits  []uint64
	sig   string
}

// SSSR returns the smallest set of smallest rings of g. Each ring is a
// vertex-ID cycle (first vertex not repeated at the end); the result has
// exactly Rank(g) rings, ordered by (length, canonical signature).
// Acyclic graphs yield an empty result.
// Returns ErrNilGraph for a nil graph.
func SSSR[V, E any](g *core.Graph[V, E]) ([][]core.VertexID, error) {
	// 1) Validate input and short-circuit acyclic graphs.
	if g == nil {
		return nil, ErrNilGraph
	}
	rank := Rank(g)
	if rank == 0 {
		return nil, nil
	}

	// 2) Index edges for the bitset representation.
	edgeIDs := g.Edges()
	edgeBit := make(map[core.EdgeID]int, len(edgeIDs))
	for i, id := range edgeIDs {
		edgeBit[id] = i
	}
	words := (len(edgeIDs) + 63) / 64

	// 3) One shortest-cycle candidate per ring edge: BFS from one
	//    endpoint to the other with the edge itself excluded. Bridges
	//    yield no path and are skipped implicitly by RingEdges.
	seen := make(map[string]struct{})
	var cands []candidate
	for _, eid := range g.RingEdges() {
		a, b, _ := g.Endpoints(eid)
		path := shortestPathExcluding(g, a, b, eid)
		if path == nil {
			continue // unreachable for a ring edge; defensive no-op
		}
		c := buildCandidate(g, path, edgeBit, words)
		if _, dup := seen[c.sig]; dup {
			continue
		}
		seen[c.sig] = struct{}{}
		cands = append(cands, c)
	}

	// 4) Shortest candidates first; ties break on canonical signature.
	sort.Slice(cands, func(i, j int) bool {
		if len(cands[i].verts) != len(cands[j].verts) {
			return len(cands[i].verts) < len(cands[j].verts)
		}
		return cands[i].sig < cands[j].sig
	})

	// 5) Greedy GF(2) elimination: accept a candidate iff its edge set is
	//    independent of the already accepted rings; stop at the rank.
	basis := make(map[int][]uint64, rank) // pivot bit index → reduced vector
	rings := make([][]core.VertexID, 0, rank)
	for _, c := range cands {
		if len(rings) == rank {
			break
		}
		v, pivot := reduce(c.bits, basis)
		if pivot < 0 {
			continue // dependent on already accepted rings
		}
		basis[pivot] = v
		rings = append(rings, c.verts)
	}

	return rings, nil
}

// shortestPathExcluding returns the shortest vertex path from a to b
// that does not use edge skip, or nil if none exists. BFS expands
// neighbors in ascending ID order for deterministic tie-breaking.
func shortestPathExcluding[V, E any](g *core.Graph[V, E], a, b core.VertexID, skip core.EdgeID) []core.VertexID {
	parent := map[core.VertexID]core.VertexID{a: a}
	queue := []core.VertexID{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b {
			break
		}
		nbrs, _ := g.Neighbors(cur)
		for _, nbr := range nbrs {
			if eid, _ := g.EdgeBetween(cur, nbr); eid == skip {
				continue
			}
			if _, ok := parent[nbr]; ok {
				continue
			}
			parent[nbr] = cur
			queue = append(queue, nbr)
		}
	}
	if _, ok := parent[b]; !ok {
		return nil
	}
	// Walk parents back from b to a, then reverse.
	var rev []core.VertexID
	for cur := b; ; cur = parent[cur] {
		rev = append(rev, cur)
		if cur == a {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// buildCandidate closes path into a cycle, canonicalizes its rotation,
// and computes its edge bitset.
func buildCandidate[V, E any](g *core.Graph[V, E], path []core.VertexID, edgeBit map[core.EdgeID]int, words int) candidate {
	cyc := canonicalRotation(path)
	bits := make([]uint64, words)
	n := len(cyc)
	for i := 0; i < n; i++ {
		eid, _ := g.EdgeBetween(cyc[i], cyc[(i+1)%n])
		bit := edgeBit[eid]
		bits[bit/64] |= 1 << (bit % 64)
	}

	return candidate{verts: cyc, bits: bits, sig: joinSig(cyc)}
}

// canonicalRotation rotates cyc to start at its smallest vertex and
// picks the lexicographically smaller of the two walk directions, so
// every rotation/reflection of the same ring yields the same sequence.
func canonicalRotation(cyc []core.VertexID) []core.VertexID {
	n := len(cyc)
	// Locate the smallest vertex.
	min := 0
	for i := 1; i < n; i++ {
		if cyc[i] < cyc[min] {
			min = i
		}
	}
	fwd := make([]core.VertexID, n)
	bwd := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		fwd[i] = cyc[(min+i)%n]
		bwd[i] = cyc[(min-i+n)%n]
	}
	for i := 0; i < n; i++ {
		if fwd[i] != bwd[i] {
			if bwd[i] < fwd[i] {
				return bwd
			}
			return fwd
		}
	}

	return fwd
}

// joinSig joins a cycle into its comma-separated signature string.
func joinSig(cyc []core.VertexID) string {
	parts := make([]string, len(cyc))
	for i, id := range cyc {
		parts[i] = strconv.Itoa(int(id))
	}

	return strings.Join(parts, ",")
}

// reduce XOR-eliminates v against the pivot-indexed basis. Returns the
// remainder and its pivot (lowest set bit index), or pivot -1 if v
// reduces to zero (linearly dependent).
func reduce(v []uint64, basis map[int][]uint64) ([]uint64, int) {
	out := make([]uint64, len(v))
	copy(out, v)
	for {
		pivot := lowestBit(out)
		if pivot < 0 {
			return nil, -1
		}
		b, ok := basis[pivot]
		if !ok {
			return out, pivot
		}
		for i := range out {
			out[i] ^= b[i]
		}
	}
}

// lowestBit returns the index of the lowest set bit, or -1 if none.
func lowestBit(v []uint64) int {
	for i, w := range v {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w)
		}
	}

	return -1
}
