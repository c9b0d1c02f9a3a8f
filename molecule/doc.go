// Package molecule models one concrete chemical species as a labeled
// graph: every atom carries a single chem.Atom state, every bond a
// single chem.BondOrder.
//
// What:
//
//   - New: build a Molecule once from ordered atom/bond records (the
//     in-process contract toward external parsing). Record order is
//     identity: atom record i becomes vertex ID i, bond record j becomes
//     edge ID j. Malformed records fail construction immediately and are
//     never silently repaired.
//   - Accessors: Atoms, Atom, Bonds, Bond, BondEndpoints, BondBetween,
//     Neighbors, Clone, Formula.
//   - Reaction edits: AddAtom, RemoveAtom, AddBond, RemoveBond,
//     SetBondOrder, SetAtom, AdjustRadicals, AdjustCharge — the mutation
//     phase of reaction-template application. Mutation invalidates any
//     previously computed automorphisms or canonical keys.
//   - Exact matching: Isomorphic and FindIsomorphism wrap the engine
//     with atom/bond equality predicates (species deduplication).
//   - CanonicalKey: deterministic string from iterative neighborhood
//     refinement. Isomorphic molecules always get equal keys; the
//     converse is not guaranteed, so Registry confirms key collisions by
//     exact isomorphism and never trusts the key alone.
//   - Registry: an explicit species pool with caller-owned lifetime,
//     replacing any notion of a global "known species" cache.
//
// Concurrency:
//
//	A Molecule may be read by any number of goroutines; mutation must be
//	externally serialized against all other access on the same instance.
//
// Errors:
//
//	ErrNilMolecule - nil *Molecule passed to a package function.
//	ErrBadRecord   - construction/edit input malformed (bad element or
//	                 bond order, endpoint index out of range, duplicate
//	                 bond, self-bond); wraps the core/chem sentinel.
package molecule
