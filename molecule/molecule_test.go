// Package molecule_test exercises species construction, template edits,
// isomorphism checks, canonical keys, and the registry.

package molecule_test

import (
	"testing"

	"github.com/katalvlaran/chemgraph/chem"
	"github.com/katalvlaran/chemgraph/core"
	"github.com/katalvlaran/chemgraph/iso"
	"github.com/katalvlaran/chemgraph/molecule"
	"github.com/stretchr/testify/require"
)

// ethanol builds CH3-CH2-OH with explicit hydrogens, atoms in the given
// record order.
func ethanol(t *testing.T) *molecule.Molecule {
	t.Helper()
	atoms := []molecule.AtomRecord{
		{Element: chem.Carbon},   // 0
		{Element: chem.Carbon},   // 1
		{Element: chem.Oxygen},   // 2
		{Element: chem.Hydrogen}, // 3..8
		{Element: chem.Hydrogen},
		{Element: chem.Hydrogen},
		{Element: chem.Hydrogen},
		{Element: chem.Hydrogen},
		{Element: chem.Hydrogen},
	}
	bonds := []molecule.BondRecord{
		{A: 0, B: 1, Order: chem.Single},
		{A: 1, B: 2, Order: chem.Single},
		{A: 0, B: 3, Order: chem.Single},
		{A: 0, B: 4, Order: chem.Single},
		{A: 0, B: 5, Order: chem.Single},
		{A: 1, B: 6, Order: chem.Single},
		{A: 1, B: 7, Order: chem.Single},
		{A: 2, B: 8, Order: chem.Single},
	}
	m, err := molecule.New(atoms, bonds)
	require.NoError(t, err)

	return m
}

func TestNew_RecordValidation(t *testing.T) {
	c := molecule.AtomRecord{Element: chem.Carbon}

	_, err := molecule.New([]molecule.AtomRecord{{Element: 0}}, nil)
	require.ErrorIs(t, err, molecule.ErrBadRecord)
	require.ErrorIs(t, err, chem.ErrUnknownElement)

	_, err = molecule.New([]molecule.AtomRecord{c, c},
		[]molecule.BondRecord{{A: 0, B: 2, Order: chem.Single}})
	require.ErrorIs(t, err, molecule.ErrBadRecord)

	_, err = molecule.New([]molecule.AtomRecord{c, c},
		[]molecule.BondRecord{{A: 0, B: 1, Order: 0}})
	require.ErrorIs(t, err, molecule.ErrBadRecord)
	require.ErrorIs(t, err, chem.ErrBadBondOrder)

	_, err = molecule.New([]molecule.AtomRecord{c, c},
		[]molecule.BondRecord{{A: 0, B: 0, Order: chem.Single}})
	require.ErrorIs(t, err, molecule.ErrBadRecord)
	require.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = molecule.New([]molecule.AtomRecord{c, c}, []molecule.BondRecord{
		{A: 0, B: 1, Order: chem.Single},
		{A: 1, B: 0, Order: chem.Double},
	})
	require.ErrorIs(t, err, molecule.ErrBadRecord)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestNew_RecordOrderBecomesIDs(t *testing.T) {
	m := ethanol(t)

	require.Equal(t, 9, m.AtomCount())
	require.Equal(t, 8, m.BondCount())
	atoms := m.Atoms()
	for i, id := range atoms {
		require.Equal(t, core.VertexID(i), id)
	}
	a, err := m.Atom(atoms[2])
	require.NoError(t, err)
	require.Equal(t, chem.Oxygen, a.Element)

	id, ok := m.BondBetween(atoms[1], atoms[2])
	require.True(t, ok)
	order, err := m.Bond(id)
	require.NoError(t, err)
	require.Equal(t, chem.Single, order)
}

func TestEdits(t *testing.T) {
	m := ethanol(t)
	atoms := m.Atoms()

	// H abstraction from the OH: drop the hydrogen, put the radical on
	// the oxygen.
	bond, ok := m.BondBetween(atoms[2], atoms[8])
	require.True(t, ok)
	require.NoError(t, m.RemoveBond(bond))
	require.NoError(t, m.RemoveAtom(atoms[8]))
	require.NoError(t, m.AdjustRadicals(atoms[2], 1))

	o, err := m.Atom(atoms[2])
	require.NoError(t, err)
	require.Equal(t, uint8(1), o.Radicals)
	require.Equal(t, 8, m.AtomCount())

	// Errors: negative radical count, bad order, unknown atom.
	require.ErrorIs(t, m.AdjustRadicals(atoms[0], -1), molecule.ErrBadRecord)
	require.ErrorIs(t, m.SetBondOrder(m.Bonds()[0], 9), molecule.ErrBadRecord)
	_, err = m.AddAtom(molecule.AtomRecord{Element: 0})
	require.ErrorIs(t, err, molecule.ErrBadRecord)
	_, err = m.AddBond(atoms[0], core.VertexID(99), chem.Single)
	require.ErrorIs(t, err, molecule.ErrBadRecord)

	// Charge adjustment is unconstrained in either direction.
	require.NoError(t, m.AdjustCharge(atoms[2], -1))
	o, err = m.Atom(atoms[2])
	require.NoError(t, err)
	require.Equal(t, int8(-1), o.Charge)
}

func TestClone_KeepsIDsAndIndependence(t *testing.T) {
	m := ethanol(t)
	c := m.Clone()

	require.Equal(t, m.Atoms(), c.Atoms())
	require.Equal(t, m.Bonds(), c.Bonds())

	same, err := molecule.Isomorphic(m, c)
	require.NoError(t, err)
	require.True(t, same)

	// Mutating the clone leaves the original untouched.
	require.NoError(t, c.AdjustRadicals(c.Atoms()[0], 2))
	orig, err := m.Atom(m.Atoms()[0])
	require.NoError(t, err)
	require.Equal(t, uint8(0), orig.Radicals)
}

func TestIsomorphic_AtomStateMatters(t *testing.T) {
	a := ethanol(t)
	b := ethanol(t)

	same, err := molecule.Isomorphic(a, b)
	require.NoError(t, err)
	require.True(t, same)

	// A single radical electron distinguishes the species.
	require.NoError(t, b.AdjustRadicals(b.Atoms()[0], 1))
	same, err = molecule.Isomorphic(a, b)
	require.NoError(t, err)
	require.False(t, same)

	_, err = molecule.FindIsomorphism(nil, a)
	require.ErrorIs(t, err, molecule.ErrNilMolecule)
}

func TestCanonicalKey_InvariantUnderRecordOrder(t *testing.T) {
	// Acetaldehyde heavy-atom skeleton C-C=O in two record orders.
	forward, err := molecule.New(
		[]molecule.AtomRecord{
			{Element: chem.Carbon}, {Element: chem.Carbon}, {Element: chem.Oxygen},
		},
		[]molecule.BondRecord{
			{A: 0, B: 1, Order: chem.Single},
			{A: 1, B: 2, Order: chem.Double},
		})
	require.NoError(t, err)

	backward, err := molecule.New(
		[]molecule.AtomRecord{
			{Element: chem.Oxygen}, {Element: chem.Carbon}, {Element: chem.Carbon},
		},
		[]molecule.BondRecord{
			{A: 2, B: 1, Order: chem.Single},
			{A: 1, B: 0, Order: chem.Double},
		})
	require.NoError(t, err)

	require.Equal(t, forward.CanonicalKey(), backward.CanonicalKey())

	// A different bond order yields a different key.
	single, err := molecule.New(
		[]molecule.AtomRecord{
			{Element: chem.Carbon}, {Element: chem.Carbon}, {Element: chem.Oxygen},
		},
		[]molecule.BondRecord{
			{A: 0, B: 1, Order: chem.Single},
			{A: 1, B: 2, Order: chem.Single},
		})
	require.NoError(t, err)
	require.NotEqual(t, forward.CanonicalKey(), single.CanonicalKey())
}

func TestFormula_HillOrder(t *testing.T) {
	m := ethanol(t)
	require.Equal(t, "C2H6O", m.Formula())

	water, err := molecule.New([]molecule.AtomRecord{
		{Element: chem.Oxygen}, {Element: chem.Hydrogen}, {Element: chem.Hydrogen},
	}, []molecule.BondRecord{
		{A: 0, B: 1, Order: chem.Single},
		{A: 0, B: 2, Order: chem.Single},
	})
	require.NoError(t, err)
	// No carbon: alphabetical.
	require.Equal(t, "H2O", water.Formula())

	empty, err := molecule.New(nil, nil)
	require.NoError(t, err)
	require.Equal(t, "", empty.Formula())
	require.Equal(t, "empty", empty.CanonicalKey())
}

func TestRegistry_Deduplicates(t *testing.T) {
	r := molecule.NewRegistry()

	first := ethanol(t)
	rep, known, err := r.Add(first)
	require.NoError(t, err)
	require.False(t, known)
	require.Same(t, first, rep)
	require.Equal(t, 1, r.Len())

	// An isomorphic copy resolves to the existing representative.
	rep, known, err = r.Add(ethanol(t))
	require.NoError(t, err)
	require.True(t, known)
	require.Same(t, first, rep)
	require.Equal(t, 1, r.Len())

	// A genuinely different species is admitted.
	radical := ethanol(t)
	require.NoError(t, radical.AdjustRadicals(radical.Atoms()[0], 1))
	_, known, err = r.Add(radical)
	require.NoError(t, err)
	require.False(t, known)
	require.Equal(t, 2, r.Len())

	// Engine options pass through the confirmation step.
	got, ok, err := r.Lookup(ethanol(t), iso.WithMaxSteps(100000))
	require.NoError(t, err)
	require.True(t, ok)
	require.Same(t, first, got)

	_, _, err = r.Lookup(nil)
	require.ErrorIs(t, err, molecule.ErrNilMolecule)
}

func TestAutomorphisms_MethylRotation(t *testing.T) {
	// CH4: the four hydrogens permute freely, |Aut| = 4! = 24.
	atoms := []molecule.AtomRecord{{Element: chem.Carbon}}
	var bonds []molecule.BondRecord
	for i := 0; i < 4; i++ {
		atoms = append(atoms, molecule.AtomRecord{Element: chem.Hydrogen})
		bonds = append(bonds, molecule.BondRecord{A: 0, B: i + 1, Order: chem.Single})
	}
	m, err := molecule.New(atoms, bonds)
	require.NoError(t, err)

	auts, err := molecule.Automorphisms(m)
	require.NoError(t, err)
	require.Len(t, auts, 24)
}
