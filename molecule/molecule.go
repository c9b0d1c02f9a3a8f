// Package molecule: construction and read access.

package molecule

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chemgraph/chem"
	"github.com/katalvlaran/chemgraph/core"
	"github.com/katalvlaran/chemgraph/iso"
)

// Sentinel errors for molecule operations.
var (
	// ErrNilMolecule indicates a nil *Molecule was passed.
	ErrNilMolecule = errors.New("molecule: molecule is nil")

	// ErrBadRecord indicates a malformed construction or edit input.
	ErrBadRecord = errors.New("molecule: bad record")
)

// AtomRecord is one ordered atom description from an external parser.
type AtomRecord struct {
	Element   chem.Element
	Isotope   int16
	Radicals  uint8
	LonePairs uint8
	Charge    int8
}

// atom converts the record to its chem.Atom value.
func (r AtomRecord) atom() chem.Atom {
	return chem.Atom{
		Element:   r.Element,
		Isotope:   r.Isotope,
		Radicals:  r.Radicals,
		LonePairs: r.LonePairs,
		Charge:    r.Charge,
	}
}

// BondRecord is one ordered bond description from an external parser.
// A and B index into the atom record slice passed alongside.
type BondRecord struct {
	A, B  int
	Order chem.BondOrder
}

// Molecule is one concrete chemical species: a graph whose vertices are
// atoms and whose edges are bonds. A species may be disconnected, e.g.
// to model a reacting pair.
type Molecule struct {
	g *core.Graph[chem.Atom, chem.BondOrder]
}

// New builds a Molecule from ordered atom and bond records.
// Atom record i becomes vertex ID i; bond record j becomes edge ID j.
// Returns ErrBadRecord (wrapping the underlying sentinel) for unknown
// elements, bad bond orders, out-of-range endpoints, self-bonds, and
// duplicate bonds.
func New(atoms []AtomRecord, bonds []BondRecord) (*Molecule, error) {
	g := core.New[chem.Atom, chem.BondOrder]()

	ids := make([]core.VertexID, len(atoms))
	for i, rec := range atoms {
		a := rec.atom()
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("%w: atom %d: %w", ErrBadRecord, i, err)
		}
		ids[i] = g.AddVertex(a)
	}
	for j, rec := range bonds {
		if rec.A < 0 || rec.A >= len(atoms) || rec.B < 0 || rec.B >= len(atoms) {
			return nil, fmt.Errorf("%w: bond %d: endpoint out of range", ErrBadRecord, j)
		}
		if err := rec.Order.Validate(); err != nil {
			return nil, fmt.Errorf("%w: bond %d: %w", ErrBadRecord, j, err)
		}
		if _, err := g.AddEdge(ids[rec.A], ids[rec.B], rec.Order); err != nil {
			return nil, fmt.Errorf("%w: bond %d: %w", ErrBadRecord, j, err)
		}
	}

	return &Molecule{g: g}, nil
}

// Graph exposes the live underlying graph for engine queries.
// Callers must not mutate it directly; use the edit methods.
func (m *Molecule) Graph() *core.Graph[chem.Atom, chem.BondOrder] { return m.g }

// Atoms returns all atom IDs in ascending (= record) order.
func (m *Molecule) Atoms() []core.VertexID { return m.g.Vertices() }

// Atom returns the state of the atom with the given ID.
func (m *Molecule) Atom(id core.VertexID) (chem.Atom, error) {
	return m.g.Label(id)
}

// Bonds returns all bond IDs in ascending (= record) order.
func (m *Molecule) Bonds() []core.EdgeID { return m.g.Edges() }

// Bond returns the order of the bond with the given ID.
func (m *Molecule) Bond(id core.EdgeID) (chem.BondOrder, error) {
	return m.g.EdgeLabel(id)
}

// BondEndpoints returns the two atom IDs joined by the bond.
func (m *Molecule) BondEndpoints(id core.EdgeID) (core.VertexID, core.VertexID, error) {
	return m.g.Endpoints(id)
}

// BondBetween returns the ID of the bond between atoms a and b, if any.
func (m *Molecule) BondBetween(a, b core.VertexID) (core.EdgeID, bool) {
	return m.g.EdgeBetween(a, b)
}

// Neighbors returns the atoms bonded to id, ascending.
func (m *Molecule) Neighbors(id core.VertexID) ([]core.VertexID, error) {
	return m.g.Neighbors(id)
}

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int { return m.g.VertexCount() }

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int { return m.g.EdgeCount() }

// Clone returns a deep copy with identical atom and bond IDs. Matching
// results computed against m stay positionally valid against the clone.
func (m *Molecule) Clone() *Molecule {
	return &Molecule{g: m.g.Clone()}
}

// sameAtom and sameBond are the exact-match predicates: concrete labels
// match iff they are equal.
func sameAtom(a, b chem.Atom) bool      { return a == b }
func sameBond(a, b chem.BondOrder) bool { return a == b }

// FindIsomorphism searches for an exact isomorphism from a onto b.
// nil Mapping with nil error means "proven not isomorphic";
// iso.ErrSearchAborted reports an exceeded step budget.
func FindIsomorphism(a, b *Molecule, opts ...iso.Option) (*iso.Mapping, error) {
	if a == nil || b == nil {
		return nil, ErrNilMolecule
	}

	return iso.Exact(a.g, b.g, sameAtom, sameBond, opts...)
}

// Isomorphic reports whether a and b are the same species.
func Isomorphic(a, b *Molecule, opts ...iso.Option) (bool, error) {
	m, err := FindIsomorphism(a, b, opts...)
	if err != nil {
		return false, err
	}

	return m != nil, nil
}

// Automorphisms enumerates every self-mapping of m that preserves all
// atom states, bond orders, and adjacency.
func Automorphisms(m *Molecule, opts ...iso.Option) ([]*iso.Mapping, error) {
	if m == nil {
		return nil, ErrNilMolecule
	}

	return iso.Automorphisms(m.g, sameAtom, sameBond, opts...)
}
