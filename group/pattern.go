// Package group: pattern label types and their membership predicates.

package group

import "github.com/katalvlaran/chemgraph/chem"

// AtomSpec is one acceptable atom description within a pattern vertex.
// Each attribute is either constrained to the given value or released by
// its wildcard flag. The zero value is invalid (zero Element without
// AnyElement); build specs with the helpers or set flags explicitly.
type AtomSpec struct {
	Element    chem.Element
	AnyElement bool

	Isotope    int16
	AnyIsotope bool

	Radicals    uint8
	AnyRadicals bool

	LonePairs    uint8
	AnyLonePairs bool

	Charge    int8
	AnyCharge bool
}

// Exactly returns a spec accepting exactly the given concrete state.
func Exactly(a chem.Atom) AtomSpec {
	return AtomSpec{
		Element:   a.Element,
		Isotope:   a.Isotope,
		Radicals:  a.Radicals,
		LonePairs: a.LonePairs,
		Charge:    a.Charge,
	}
}

// OfElement returns a spec accepting any atom of the given element,
// regardless of isotope, radicals, lone pairs, or charge.
func OfElement(el chem.Element) AtomSpec {
	return AtomSpec{
		Element:      el,
		AnyIsotope:   true,
		AnyRadicals:  true,
		AnyLonePairs: true,
		AnyCharge:    true,
	}
}

// AnyAtom returns the universal spec: every atom state matches.
func AnyAtom() AtomSpec {
	return AtomSpec{
		AnyElement:   true,
		AnyIsotope:   true,
		AnyRadicals:  true,
		AnyLonePairs: true,
		AnyCharge:    true,
	}
}

// Matches reports whether the concrete atom state satisfies every
// constrained attribute of the spec.
func (s AtomSpec) Matches(a chem.Atom) bool {
	if !s.AnyElement && s.Element != a.Element {
		return false
	}
	if !s.AnyIsotope && s.Isotope != a.Isotope {
		return false
	}
	if !s.AnyRadicals && s.Radicals != a.Radicals {
		return false
	}
	if !s.AnyLonePairs && s.LonePairs != a.LonePairs {
		return false
	}
	if !s.AnyCharge && s.Charge != a.Charge {
		return false
	}

	return true
}

// validate rejects specs whose constrained element is outside the table.
func (s AtomSpec) validate() error {
	if !s.AnyElement && !s.Element.Valid() {
		return chem.ErrUnknownElement
	}

	return nil
}

// AtomPattern is the vertex label of a Group: a non-empty set of
// acceptable atom specs. A concrete atom matches iff at least one spec
// accepts it.
type AtomPattern struct {
	specs []AtomSpec
}

// MatchesAtom reports set membership of the concrete atom state.
func (p AtomPattern) MatchesAtom(a chem.Atom) bool {
	for _, s := range p.specs {
		if s.Matches(a) {
			return true
		}
	}

	return false
}

// Specs returns a copy of the acceptable specs.
func (p AtomPattern) Specs() []AtomSpec {
	out := make([]AtomSpec, len(p.specs))
	copy(out, p.specs)

	return out
}

// BondPattern is the edge label of a Group: a set of acceptable bond
// orders, or the any-bond wildcard accepting every order.
type BondPattern struct {
	orders uint8 // bitmask indexed by chem.BondOrder
	any    bool
}

// Orders returns a pattern accepting exactly the given orders.
func Orders(os ...chem.BondOrder) BondPattern {
	var p BondPattern
	for _, o := range os {
		if o.Validate() == nil {
			p.orders |= 1 << o
		}
	}

	return p
}

// AnyBond returns the wildcard accepting every concrete order.
func AnyBond() BondPattern { return BondPattern{any: true} }

// MatchesOrder reports whether the concrete order is acceptable.
func (p BondPattern) MatchesOrder(o chem.BondOrder) bool {
	if p.any {
		return true
	}

	return p.orders&(1<<o) != 0
}

// empty reports whether the pattern accepts nothing.
func (p BondPattern) empty() bool { return !p.any && p.orders == 0 }
