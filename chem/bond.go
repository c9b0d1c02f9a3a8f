// Package chem: bond orders.

package chem

import "fmt"

// BondOrder is the concrete order of a chemical bond. The zero value is
// invalid so that a forgotten order surfaces as ErrBadBondOrder instead
// of silently becoming a single bond.
type BondOrder uint8

// Enumerated bond orders.
const (
	Single BondOrder = iota + 1
	Double
	Triple
	Aromatic
)

// bondNames maps each order to its display name.
var bondNames = [...]string{"", "single", "double", "triple", "aromatic"}

// bondKeys maps each order to its one-character canonical code.
var bondKeys = [...]string{"", "-", "=", "#", "~"}

// Validate checks that o is one of the enumerated orders.
func (o BondOrder) Validate() error {
	if o < Single || o > Aromatic {
		return fmt.Errorf("%w: %d", ErrBadBondOrder, o)
	}

	return nil
}

// Key returns the one-character canonical code ("-", "=", "#", "~").
func (o BondOrder) Key() string {
	if o.Validate() != nil {
		return "?"
	}

	return bondKeys[o]
}

// String implements fmt.Stringer.
func (o BondOrder) String() string {
	if o.Validate() != nil {
		return fmt.Sprintf("bond(%d)", uint8(o))
	}

	return bondNames[o]
}
