// Package symmetry: automorphism-derived symmetry numbers and orbits.

package symmetry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/chemgraph/core"
	"github.com/katalvlaran/chemgraph/iso"
	"github.com/katalvlaran/chemgraph/molecule"
)

// Sentinel errors for symmetry computation.
var (
	// ErrNilMolecule indicates a nil molecule was passed.
	ErrNilMolecule = errors.New("symmetry: molecule is nil")

	// ErrUnknownAnchor indicates an anchor ID not present in the molecule.
	ErrUnknownAnchor = errors.New("symmetry: unknown anchor atom")
)

// Option configures a symmetry computation.
type Option func(*Options)

// Options holds anchors and engine pass-through options.
type Options struct {
	// Anchors are atoms an automorphism must fix (map to themselves) to
	// be counted. Empty means the global symmetry number.
	Anchors []core.VertexID

	// Engine options (step bounds, context) forwarded to the search.
	Engine []iso.Option
}

// WithAnchor pins an atom to itself; repeatable for multiple anchors.
func WithAnchor(id core.VertexID) Option {
	return func(o *Options) { o.Anchors = append(o.Anchors, id) }
}

// WithEngineOptions forwards engine options to the automorphism search.
func WithEngineOptions(opts ...iso.Option) Option {
	return func(o *Options) { o.Engine = append(o.Engine, opts...) }
}

// anchoredAutomorphisms enumerates automorphisms and filters on anchors.
func anchoredAutomorphisms(m *molecule.Molecule, opts []Option) ([]*iso.Mapping, error) {
	if m == nil {
		return nil, ErrNilMolecule
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	for _, anchor := range o.Anchors {
		if !m.Graph().HasVertex(anchor) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownAnchor, anchor)
		}
	}

	auts, err := molecule.Automorphisms(m, o.Engine...)
	if err != nil {
		return nil, err
	}
	if len(o.Anchors) == 0 {
		return auts, nil
	}
	kept := auts[:0]
	for _, a := range auts {
		ok := true
		for _, anchor := range o.Anchors {
			if a.Vertex[anchor] != anchor {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, a)
		}
	}

	return kept, nil
}

// Number returns the (possibly anchor-restricted) symmetry number of m:
// the count of automorphisms fixing every anchor. Always ≥ 1 on
// success — the identity fixes everything.
func Number(m *molecule.Molecule, opts ...Option) (int, error) {
	auts, err := anchoredAutomorphisms(m, opts)
	if err != nil {
		return 0, err
	}

	return len(auts), nil
}

// EquivalentAtoms returns the orbits of the (possibly anchored)
// automorphism group: each set holds atoms mapped onto each other by
// some counted automorphism. Orbits are ordered by smallest member and
// sorted internally, so output is deterministic.
func EquivalentAtoms(m *molecule.Molecule, opts ...Option) ([][]core.VertexID, error) {
	auts, err := anchoredAutomorphisms(m, opts)
	if err != nil {
		return nil, err
	}

	// Union-find over automorphism images.
	parent := make(map[core.VertexID]core.VertexID)
	var find func(core.VertexID) core.VertexID
	find = func(v core.VertexID) core.VertexID {
		if parent[v] != v {
			parent[v] = find(parent[v])
		}
		return parent[v]
	}
	for _, id := range m.Atoms() {
		parent[id] = id
	}
	for _, a := range auts {
		for from, to := range a.Vertex {
			rf, rt := find(from), find(to)
			if rf != rt {
				if rt < rf {
					rf, rt = rt, rf
				}
				parent[rt] = rf
			}
		}
	}

	// Collect orbits deterministically.
	groups := make(map[core.VertexID][]core.VertexID)
	for _, id := range m.Atoms() {
		root := find(id)
		groups[root] = append(groups[root], id)
	}
	roots := make([]core.VertexID, 0, len(groups))
	for root := range groups {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	out := make([][]core.VertexID, 0, len(roots))
	for _, root := range roots {
		orbit := groups[root]
		sort.Slice(orbit, func(i, j int) bool { return orbit[i] < orbit[j] })
		out = append(out, orbit)
	}

	return out, nil
}
