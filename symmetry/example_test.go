package symmetry_test

import (
	"fmt"

	"github.com/katalvlaran/chemgraph/chem"
	"github.com/katalvlaran/chemgraph/molecule"
	"github.com/katalvlaran/chemgraph/symmetry"
)

// ExampleNumber computes the symmetry number of methane: the four
// hydrogens permute freely, giving 4! automorphisms.
func ExampleNumber() {
	methane, _ := molecule.New(
		[]molecule.AtomRecord{
			{Element: chem.Carbon},
			{Element: chem.Hydrogen},
			{Element: chem.Hydrogen},
			{Element: chem.Hydrogen},
			{Element: chem.Hydrogen},
		},
		[]molecule.BondRecord{
			{A: 0, B: 1, Order: chem.Single},
			{A: 0, B: 2, Order: chem.Single},
			{A: 0, B: 3, Order: chem.Single},
			{A: 0, B: 4, Order: chem.Single},
		})

	global, _ := symmetry.Number(methane)
	local, _ := symmetry.Number(methane, symmetry.WithAnchor(methane.Atoms()[1]))
	fmt.Println("global:", global)
	fmt.Println("fixing one H:", local)
	// Output:
	// global: 24
	// fixing one H: 6
}

// ExampleEquivalentAtoms partitions propane's heavy atoms: the terminal
// carbons form one orbit, the central carbon its own.
func ExampleEquivalentAtoms() {
	propane, _ := molecule.New(
		[]molecule.AtomRecord{
			{Element: chem.Carbon},
			{Element: chem.Carbon},
			{Element: chem.Carbon},
		},
		[]molecule.BondRecord{
			{A: 0, B: 1, Order: chem.Single},
			{A: 1, B: 2, Order: chem.Single},
		})

	orbits, _ := symmetry.EquivalentAtoms(propane)
	fmt.Println(orbits)
	// Output:
	// [[0 2] [1]]
}
