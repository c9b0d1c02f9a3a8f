// Package symmetry computes topological symmetry numbers and
// equivalent-atom groupings from exhaustive automorphism enumeration.
//
// What:
//
//   - Number: the count of automorphisms of a molecule, ≥ 1 (the
//     identity always qualifies). This is the global symmetry number
//     exported to thermodynamic and statistical-mechanics collaborators.
//   - WithAnchor: restricts the count to automorphisms that fix the
//     anchored atom(s), yielding the local symmetry number of a reaction
//     site (a designated reactive atom pinned to itself).
//   - EquivalentAtoms: the orbits of the (possibly anchored)
//     automorphism group — sets of atoms indistinguishable by structure,
//     consumed by group-additivity corrections.
//
// The symmetry number is recomputed on demand and must not be cached
// across structural mutation of the molecule: any edit invalidates it.
//
// Errors:
//
//	ErrNilMolecule  - nil molecule passed.
//	ErrUnknownAnchor - an anchor ID not present in the molecule.
package symmetry
