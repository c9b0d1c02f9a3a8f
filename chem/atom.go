// Package chem: concrete per-atom state.

package chem

import (
	"fmt"
	"strings"
)

// Atom is one concrete atom state: element plus electronic attributes.
// Atom is a comparable value type; two atoms match exactly iff they are
// == equal. It is the vertex label of molecule graphs and the set member
// of group atom patterns.
type Atom struct {
	// Element is the atomic number. Must be within the element table.
	Element Element

	// Isotope is the mass number, 0 for the natural mixture.
	Isotope int16

	// Radicals is the number of unpaired electrons.
	Radicals uint8

	// LonePairs is the number of non-bonding electron pairs.
	LonePairs uint8

	// Charge is the formal charge.
	Charge int8
}

// Validate checks that the atom state is representable.
// Returns ErrUnknownElement for elements outside the table.
func (a Atom) Validate() error {
	if !a.Element.Valid() {
		return fmt.Errorf("%w: atomic number %d", ErrUnknownElement, a.Element)
	}

	return nil
}

// Key returns a compact canonical code for the atom state, e.g.
// "C", "C2.", "O+1", "C13C", "N:1". Equal atoms have equal keys and
// distinct atoms have distinct keys; canonicalization and fingerprints
// build on this.
func (a Atom) Key() string {
	var b strings.Builder
	if a.Isotope != 0 {
		fmt.Fprintf(&b, "%d", a.Isotope)
	}
	b.WriteString(a.Element.Symbol())
	if a.Radicals != 0 {
		fmt.Fprintf(&b, "%d.", a.Radicals)
	}
	if a.LonePairs != 0 {
		fmt.Fprintf(&b, ":%d", a.LonePairs)
	}
	if a.Charge != 0 {
		fmt.Fprintf(&b, "%+d", a.Charge)
	}

	return b.String()
}

// String implements fmt.Stringer.
func (a Atom) String() string { return a.Key() }
