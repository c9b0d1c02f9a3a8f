// Package chem defines the chemical vocabulary shared by molecule and
// group graphs: elements, per-atom electronic state, and bond orders.
//
// What:
//
//   - Element: atomic number with a symbol table (FromSymbol / Symbol).
//   - Atom: one concrete atom state — element, isotope, radical-electron
//     count, lone-pair count, formal charge. Comparable by ==, which is
//     the exact-match predicate used for molecule-vs-molecule queries.
//   - BondOrder: Single, Double, Triple, Aromatic.
//
// Why:
//
//	Labels are explicit tagged values with explicit predicates, never
//	runtime type inspection, so the compatibility rules fed into the
//	isomorphism engine stay pure and testable in isolation.
//
// Errors:
//
//	ErrUnknownElement - symbol or atomic number outside the table.
//	ErrBadBondOrder   - bond order outside the enumerated range.
package chem
