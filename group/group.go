// Package group: construction and match queries.

package group

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chemgraph/chem"
	"github.com/katalvlaran/chemgraph/core"
	"github.com/katalvlaran/chemgraph/iso"
	"github.com/katalvlaran/chemgraph/molecule"
)

// Sentinel errors for group operations.
var (
	// ErrNilGroup indicates a nil *Group was passed.
	ErrNilGroup = errors.New("group: group is nil")

	// ErrEmptyLabelSet indicates a pattern vertex or edge with no
	// acceptable labels.
	ErrEmptyLabelSet = errors.New("group: empty label set")

	// ErrBadRecord indicates a malformed construction input.
	ErrBadRecord = errors.New("group: bad record")
)

// AtomRecord is one ordered pattern-vertex description: the non-empty
// set of atom specs this vertex accepts.
type AtomRecord struct {
	Specs []AtomSpec
}

// BondRecord is one ordered pattern-edge description. A and B index into
// the atom record slice. Any == true is the any-bond wildcard; otherwise
// Orders must be non-empty.
type BondRecord struct {
	A, B   int
	Orders []chem.BondOrder
	Any    bool
}

// Group is a wildcard pattern graph: authored once from a template
// library, then reused read-only across any number of match queries.
type Group struct {
	g *core.Graph[AtomPattern, BondPattern]
}

// New builds a Group from ordered wildcard records.
// Pattern-vertex record i becomes vertex ID i; bond record j becomes
// edge ID j. Returns ErrEmptyLabelSet for empty spec/order sets and
// ErrBadRecord for invalid specs, out-of-range endpoints, self-bonds,
// and duplicate bonds.
func New(atoms []AtomRecord, bonds []BondRecord) (*Group, error) {
	g := core.New[AtomPattern, BondPattern]()

	ids := make([]core.VertexID, len(atoms))
	for i, rec := range atoms {
		if len(rec.Specs) == 0 {
			return nil, fmt.Errorf("%w: atom %d", ErrEmptyLabelSet, i)
		}
		specs := make([]AtomSpec, len(rec.Specs))
		copy(specs, rec.Specs)
		for _, s := range specs {
			if err := s.validate(); err != nil {
				return nil, fmt.Errorf("%w: atom %d: %w", ErrBadRecord, i, err)
			}
		}
		ids[i] = g.AddVertex(AtomPattern{specs: specs})
	}
	for j, rec := range bonds {
		if rec.A < 0 || rec.A >= len(atoms) || rec.B < 0 || rec.B >= len(atoms) {
			return nil, fmt.Errorf("%w: bond %d: endpoint out of range", ErrBadRecord, j)
		}
		var p BondPattern
		if rec.Any {
			p = AnyBond()
		} else {
			for _, o := range rec.Orders {
				if err := o.Validate(); err != nil {
					return nil, fmt.Errorf("%w: bond %d: %w", ErrBadRecord, j, err)
				}
			}
			p = Orders(rec.Orders...)
		}
		if p.empty() {
			return nil, fmt.Errorf("%w: bond %d", ErrEmptyLabelSet, j)
		}
		if _, err := g.AddEdge(ids[rec.A], ids[rec.B], p); err != nil {
			return nil, fmt.Errorf("%w: bond %d: %w", ErrBadRecord, j, err)
		}
	}

	return &Group{g: g}, nil
}

// Graph exposes the live underlying pattern graph for engine queries.
// Groups are read-only after construction; callers must not mutate it.
func (gr *Group) Graph() *core.Graph[AtomPattern, BondPattern] { return gr.g }

// Vertices returns all pattern-vertex IDs in ascending (= record) order.
func (gr *Group) Vertices() []core.VertexID { return gr.g.Vertices() }

// Pattern returns the atom pattern at the given vertex.
func (gr *Group) Pattern(id core.VertexID) (AtomPattern, error) {
	return gr.g.Label(id)
}

// BondPatternOf returns the bond pattern of the given edge.
func (gr *Group) BondPatternOf(id core.EdgeID) (BondPattern, error) {
	return gr.g.EdgeLabel(id)
}

// VertexCount returns the number of pattern vertices.
func (gr *Group) VertexCount() int { return gr.g.VertexCount() }

// Clone returns a deep copy with identical IDs, for callers that want a
// private instance despite the read-only contract.
func (gr *Group) Clone() *Group { return &Group{g: gr.g.Clone()} }

// matchAtom and matchOrder are the wildcard compatibility predicates fed
// into the engine: set membership, with any-bond accepting every order.
func matchAtom(p AtomPattern, a chem.Atom) bool       { return p.MatchesAtom(a) }
func matchOrder(p BondPattern, o chem.BondOrder) bool { return p.MatchesOrder(o) }

// Match searches for the first embedding of the pattern into mol.
// A nil Mapping with nil error means "proven no embedding" — the common,
// expected outcome for most template/molecule pairs.
// The Mapping sends pattern-vertex IDs to concrete atom IDs.
func Match(gr *Group, mol *molecule.Molecule, opts ...iso.Option) (*iso.Mapping, error) {
	if gr == nil {
		return nil, ErrNilGroup
	}
	if mol == nil {
		return nil, molecule.ErrNilMolecule
	}

	return iso.Subgraph(gr.g, mol.Graph(), matchAtom, matchOrder, opts...)
}

// MatchAll enumerates every raw embedding of the pattern into mol, in
// deterministic order (no deduplication by pattern symmetry).
func MatchAll(gr *Group, mol *molecule.Molecule, opts ...iso.Option) ([]*iso.Mapping, error) {
	if gr == nil {
		return nil, ErrNilGroup
	}
	if mol == nil {
		return nil, molecule.ErrNilMolecule
	}

	return iso.SubgraphAll(gr.g, mol.Graph(), matchAtom, matchOrder, opts...)
}

// Matches reports whether the pattern embeds in mol at all.
func Matches(gr *Group, mol *molecule.Molecule, opts ...iso.Option) (bool, error) {
	m, err := Match(gr, mol, opts...)
	if err != nil {
		return false, err
	}

	return m != nil, nil
}
