// Package group models reusable structural patterns ("functional-group
// templates"): graphs whose vertices and edges carry sets of acceptable
// atom states and bond orders instead of single concrete values.
//
// What:
//
//   - AtomSpec: one acceptable atom description, each attribute either a
//     required value or an explicit wildcard flag (any element, any
//     isotope, ...). Helpers Exactly, OfElement, and AnyAtom cover the
//     common cases.
//   - AtomPattern: a non-empty set of AtomSpecs; a concrete atom matches
//     iff at least one spec accepts it (set-membership semantics).
//   - BondPattern: a set of acceptable bond orders, or the any-bond
//     wildcard that accepts every order.
//   - Group: the pattern graph, built once from wildcard records and
//     read-only afterward. Immutability after construction is the
//     concurrency contract: any number of match queries may share one
//     Group. Clone exists for callers that want a private copy anyway.
//   - Match / MatchAll / Matches: subgraph embedding of the pattern into
//     a molecule, feeding AtomPattern/BondPattern membership into the
//     engine as its compatibility predicates. The resulting Mapping
//     tells the caller which concrete atoms fill each reactive-center
//     role of the template.
//
// MatchAll returns every raw embedding: a pattern with internal symmetry
// reports one mapping per assignment, not per symmetry class.
//
// Errors:
//
//	ErrNilGroup      - nil *Group passed to a package function.
//	ErrEmptyLabelSet - a pattern vertex or edge with no acceptable labels.
//	ErrBadRecord     - malformed construction input.
package group
