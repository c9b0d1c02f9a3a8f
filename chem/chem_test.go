// Package chem_test verifies the vocabulary layer: element table,
// atom-state keys, and bond-order validation.

package chem_test

import (
	"testing"

	"github.com/katalvlaran/chemgraph/chem"
	"github.com/stretchr/testify/require"
)

func TestElement_SymbolRoundTrip(t *testing.T) {
	for _, symbol := range []string{"H", "C", "N", "O", "S", "Cl", "Br", "I"} {
		el, err := chem.FromSymbol(symbol)
		require.NoError(t, err, symbol)
		require.Equal(t, symbol, el.Symbol())
		require.True(t, el.Valid())
	}

	_, err := chem.FromSymbol("Xx")
	require.ErrorIs(t, err, chem.ErrUnknownElement)
	require.Equal(t, "?", chem.Element(200).Symbol())
	require.False(t, chem.Element(0).Valid())
}

func TestAtom_KeyDistinguishesStates(t *testing.T) {
	base := chem.Atom{Element: chem.Carbon}
	radical := chem.Atom{Element: chem.Carbon, Radicals: 1}
	anion := chem.Atom{Element: chem.Carbon, Charge: -1}
	isotope := chem.Atom{Element: chem.Carbon, Isotope: 13}
	pairs := chem.Atom{Element: chem.Oxygen, LonePairs: 2}

	keys := map[string]bool{}
	for _, a := range []chem.Atom{base, radical, anion, isotope, pairs} {
		require.NoError(t, a.Validate())
		require.False(t, keys[a.Key()], "key %q not unique", a.Key())
		keys[a.Key()] = true
	}
	require.Equal(t, "C", base.Key())
	require.Equal(t, "C1.", radical.Key())
	require.Equal(t, "C-1", anion.Key())
	require.Equal(t, "13C", isotope.Key())
	require.Equal(t, "O:2", pairs.Key())
}

func TestAtom_ValidateRejectsUnknownElement(t *testing.T) {
	err := chem.Atom{Element: 0}.Validate()
	require.ErrorIs(t, err, chem.ErrUnknownElement)
}

func TestBondOrder_Validate(t *testing.T) {
	for _, o := range []chem.BondOrder{chem.Single, chem.Double, chem.Triple, chem.Aromatic} {
		require.NoError(t, o.Validate())
		require.NotEqual(t, "?", o.Key())
	}
	require.ErrorIs(t, chem.BondOrder(0).Validate(), chem.ErrBadBondOrder)
	require.ErrorIs(t, chem.BondOrder(9).Validate(), chem.ErrBadBondOrder)
	require.Equal(t, "double", chem.Double.String())
	require.Equal(t, "~", chem.Aromatic.Key())
}
