// Package molecule: reaction-template edit operations.
//
// These mutators implement the middle of the species lifecycle: built
// once from records, mutated by bond/atom edits while a reaction
// template is applied, then re-canonicalized or discarded. Every edit
// invalidates previously computed automorphism sets and canonical keys.

package molecule

import (
	"fmt"

	"github.com/katalvlaran/chemgraph/chem"
	"github.com/katalvlaran/chemgraph/core"
)

// AddAtom appends a new atom and returns its ID.
// Returns ErrBadRecord for elements outside the table.
func (m *Molecule) AddAtom(rec AtomRecord) (core.VertexID, error) {
	a := rec.atom()
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}

	return m.g.AddVertex(a), nil
}

// RemoveAtom deletes an atom and every bond incident to it.
func (m *Molecule) RemoveAtom(id core.VertexID) error {
	return m.g.RemoveVertex(id)
}

// AddBond creates a bond of the given order between atoms a and b.
// Returns ErrBadRecord for bad orders, self-bonds, duplicate bonds, or
// unknown endpoints.
func (m *Molecule) AddBond(a, b core.VertexID, order chem.BondOrder) (core.EdgeID, error) {
	if err := order.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}
	id, err := m.g.AddEdge(a, b, order)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}

	return id, nil
}

// RemoveBond deletes the bond with the given ID.
func (m *Molecule) RemoveBond(id core.EdgeID) error {
	return m.g.RemoveEdge(id)
}

// SetBondOrder replaces the order of an existing bond.
func (m *Molecule) SetBondOrder(id core.EdgeID, order chem.BondOrder) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRecord, err)
	}

	return m.g.SetEdgeLabel(id, order)
}

// SetAtom replaces the full state of an existing atom.
func (m *Molecule) SetAtom(id core.VertexID, rec AtomRecord) error {
	a := rec.atom()
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRecord, err)
	}

	return m.g.SetLabel(id, a)
}

// AdjustRadicals adds delta to the unpaired-electron count of an atom.
// Returns ErrBadRecord if the result would be negative.
func (m *Molecule) AdjustRadicals(id core.VertexID, delta int) error {
	a, err := m.g.Label(id)
	if err != nil {
		return err
	}
	next := int(a.Radicals) + delta
	if next < 0 {
		return fmt.Errorf("%w: radical count would become %d", ErrBadRecord, next)
	}
	a.Radicals = uint8(next)

	return m.g.SetLabel(id, a)
}

// AdjustCharge adds delta to the formal charge of an atom.
func (m *Molecule) AdjustCharge(id core.VertexID, delta int) error {
	a, err := m.g.Label(id)
	if err != nil {
		return err
	}
	a.Charge += int8(delta)

	return m.g.SetLabel(id, a)
}
