// Package chemgraph is an in-memory chemical-graph toolkit: labeled graph
// primitives, ring perception, and a subgraph-isomorphism engine for
// matching structural patterns against molecules.
//
// 🚀 What is chemgraph?
//
//	A pure-Go library for the hard core of reaction-mechanism generation:
//		• Core primitives: labeled simple graphs with deterministic ordering
//		• Ring perception: smallest set of smallest rings (SSSR)
//		• Molecule model: concrete atoms, isotopes, radicals, charges, bonds
//		• Group model: wildcard patterns ("any of these atoms/bonds")
//		• Isomorphism engine: exact match, subgraph embedding, automorphisms
//		• Symmetry numbers: global and reactive-site-local
//
// ✨ Why choose chemgraph?
//
//   - Deterministic – identical inputs always yield identical mappings
//   - Bounded – every search accepts a step budget and a context
//   - Pure Go – no cgo, no hidden deps
//   - Pure functions – queries never mutate their inputs
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/     — generic labeled Graph, Vertex, Edge types
//	ring/     — SSSR and ring-membership perception
//	chem/     — element, atom-state and bond-order vocabulary
//	molecule/ — concrete chemical graphs + species registry
//	group/    — wildcard pattern graphs and match predicates
//	iso/      — exact / subgraph / automorphism search engine
//	symmetry/ — topological symmetry numbers and atom orbits
//
// Quick ASCII example:
//
//	    C═══C
//	    │   │
//	    C───C
//
//	a four-membered ring with two double bonds: one SSSR ring,
//	four automorphisms, symmetry number 4.
//
//	go get github.com/katalvlaran/chemgraph
package chemgraph
