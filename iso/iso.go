// Package iso: generic entry points.
//
// These functions flatten both graphs into the engine's dense index form
// (the hot loop is monomorphic), bind the caller's label predicates to
// index-based closures, run the search, and lift assignments back into
// ID-based Mappings.

package iso

import (
	"github.com/katalvlaran/chemgraph/core"
)

// VertexPredicate reports whether a source/pattern vertex label is
// compatible with a target vertex label.
type VertexPredicate[SV, TV any] func(SV, TV) bool

// EdgePredicate reports whether a source/pattern edge label is
// compatible with a target edge label.
type EdgePredicate[SE, TE any] func(SE, TE) bool

// Exact searches for an exact isomorphism from src onto tgt: a bijection
// on vertices, preserving adjacency and non-adjacency, with every
// corresponding vertex and edge pair accepted by the predicates.
//
// A nil Mapping with a nil error means "proven not isomorphic" — an
// expected outcome, not a fault. ErrSearchAborted reports an exceeded
// step budget (absence unproven).
func Exact[SV, SE, TV, TE any](
	src *core.Graph[SV, SE],
	tgt *core.Graph[TV, TE],
	vcomp VertexPredicate[SV, TV],
	ecomp EdgePredicate[SE, TE],
	opts ...Option,
) (*Mapping, error) {
	ms, err := query(src, tgt, vcomp, ecomp, modeExact, false, opts)
	if err != nil || len(ms) == 0 {
		return nil, err
	}

	return ms[0], nil
}

// Subgraph searches for an embedding of pattern into target: an
// injective map of pattern vertices such that every pattern edge lands
// on a compatible target edge. Target structure outside the image is
// ignored.
//
// A nil Mapping with a nil error means "proven no embedding".
func Subgraph[PV, PE, TV, TE any](
	pattern *core.Graph[PV, PE],
	target *core.Graph[TV, TE],
	vcomp VertexPredicate[PV, TV],
	ecomp EdgePredicate[PE, TE],
	opts ...Option,
) (*Mapping, error) {
	ms, err := query(pattern, target, vcomp, ecomp, modeEmbed, false, opts)
	if err != nil || len(ms) == 0 {
		return nil, err
	}

	return ms[0], nil
}

// SubgraphAll enumerates every embedding of pattern into target, in
// deterministic order. Patterns with internal symmetry yield one mapping
// per raw assignment, not per symmetry class; callers wanting one
// representative per class can keep the first of each vertex-image set.
// An empty result with a nil error means "proven no embedding".
func SubgraphAll[PV, PE, TV, TE any](
	pattern *core.Graph[PV, PE],
	target *core.Graph[TV, TE],
	vcomp VertexPredicate[PV, TV],
	ecomp EdgePredicate[PE, TE],
	opts ...Option,
) ([]*Mapping, error) {
	return query(pattern, target, vcomp, ecomp, modeEmbed, true, opts)
}

// Automorphisms enumerates every label- and adjacency-preserving
// self-mapping of g. The result always contains the identity for
// non-nil g (size ≥ 1) unless the search was bounded away.
func Automorphisms[V, E any](
	g *core.Graph[V, E],
	vcomp VertexPredicate[V, V],
	ecomp EdgePredicate[E, E],
	opts ...Option,
) ([]*Mapping, error) {
	return query(g, g, vcomp, ecomp, modeExact, true, opts)
}

// flat pairs a side with the ID tables needed to lift results back.
type flat struct {
	s   *side
	ids []core.VertexID
	idx map[core.VertexID]int
}

// flatten builds the dense index form of g: ascending-ID index table,
// degrees, adjacency lists and matrix, and ring-membership flags.
func flatten[V, E any](g *core.Graph[V, E]) *flat {
	ids := g.Vertices()
	n := len(ids)
	idx := make(map[core.VertexID]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	s := &side{
		n:      n,
		edges:  g.EdgeCount(),
		deg:    make([]int, n),
		inRing: make([]bool, n),
		adj:    make([][]int, n),
		mat:    make([]bool, n*n),
	}
	for i, id := range ids {
		nbrs, _ := g.Neighbors(id)
		s.deg[i] = len(nbrs)
		row := make([]int, len(nbrs))
		for k, nbr := range nbrs {
			j := idx[nbr]
			row[k] = j
			s.mat[i*n+j] = true
		}
		s.adj[i] = row
	}
	for _, id := range g.RingVertices() {
		s.inRing[idx[id]] = true
	}

	return &flat{s: s, ids: ids, idx: idx}
}

// query is the shared implementation behind every public entry point.
func query[SV, SE, TV, TE any](
	src *core.Graph[SV, SE],
	tgt *core.Graph[TV, TE],
	vcomp VertexPredicate[SV, TV],
	ecomp EdgePredicate[SE, TE],
	mode searchMode,
	all bool,
	opts []Option,
) ([]*Mapping, error) {
	// 1) Input validation.
	if src == nil || tgt == nil {
		return nil, ErrNilGraph
	}
	if vcomp == nil || ecomp == nil {
		return nil, ErrNilPredicate
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Count prechecks: cheap necessary conditions, so impossible
	//    queries are disproven without burning the step budget.
	if mode == modeExact && (src.VertexCount() != tgt.VertexCount() || src.EdgeCount() != tgt.EdgeCount()) {
		return nil, nil
	}
	if mode == modeEmbed && (src.VertexCount() > tgt.VertexCount() || src.EdgeCount() > tgt.EdgeCount()) {
		return nil, nil
	}

	// 3) Flatten both sides and pre-fetch the vertex labels.
	fs, ft := flatten(src), flatten(tgt)
	srcLabels := make([]SV, fs.s.n)
	for i, id := range fs.ids {
		srcLabels[i], _ = src.Label(id)
	}
	tgtLabels := make([]TV, ft.s.n)
	for i, id := range ft.ids {
		tgtLabels[i], _ = tgt.Label(id)
	}

	// 4) Bind the predicates to index space.
	e := &engine{
		p:    fs.s,
		t:    ft.s,
		mode: mode,
		vcompat: func(pi, ti int) bool {
			return vcomp(srcLabels[pi], tgtLabels[ti])
		},
		ecompat: func(pa, pb, ta, tb int) bool {
			pe, _ := src.EdgeBetween(fs.ids[pa], fs.ids[pb])
			pl, _ := src.EdgeLabel(pe)
			te, _ := tgt.EdgeBetween(ft.ids[ta], ft.ids[tb])
			tl, _ := tgt.EdgeLabel(te)
			return ecomp(pl, tl)
		},
		collectAll: all,
		limit:      o.Limit,
		ctx:        o.Ctx,
		maxSteps:   o.MaxSteps,
	}

	// 5) Search, then lift assignments back into ID space.
	assignments, err := e.run()
	if err != nil {
		return nil, err
	}
	out := make([]*Mapping, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, liftMapping(src, tgt, fs, ft, a))
	}
	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}

// liftMapping converts one index assignment into an ID-based Mapping,
// deriving the edge correspondence from the vertex images.
func liftMapping[SV, SE, TV, TE any](
	src *core.Graph[SV, SE],
	tgt *core.Graph[TV, TE],
	fs, ft *flat,
	assign []int,
) *Mapping {
	m := &Mapping{
		Vertex: make(map[core.VertexID]core.VertexID, len(assign)),
		Edge:   make(map[core.EdgeID]core.EdgeID, src.EdgeCount()),
	}
	for pi, ti := range assign {
		m.Vertex[fs.ids[pi]] = ft.ids[ti]
	}
	for _, eid := range src.Edges() {
		a, b, _ := src.Endpoints(eid)
		img, ok := tgt.EdgeBetween(m.Vertex[a], m.Vertex[b])
		if !ok {
			continue // unreachable once the search accepted the mapping
		}
		m.Edge[eid] = img
	}

	return m
}
