// Package chem: the element table.

package chem

import (
	"errors"
	"fmt"
)

// Sentinel errors for chemical vocabulary validation.
var (
	// ErrUnknownElement indicates a symbol or atomic number outside the table.
	ErrUnknownElement = errors.New("chem: unknown element")

	// ErrBadBondOrder indicates a bond order outside the enumerated range.
	ErrBadBondOrder = errors.New("chem: bad bond order")
)

// Element is an atomic number. The zero value is invalid.
type Element uint8

// Named elements covering the species this toolkit is routinely asked to
// model (combustion and pyrolysis chemistry plus common heteroatoms).
// Any atomic number within the table below is accepted.
const (
	Hydrogen   Element = 1
	Helium     Element = 2
	Carbon     Element = 6
	Nitrogen   Element = 7
	Oxygen     Element = 8
	Fluorine   Element = 9
	Neon       Element = 10
	Silicon    Element = 14
	Phosphorus Element = 15
	Sulfur     Element = 16
	Chlorine   Element = 17
	Argon      Element = 18
	Bromine    Element = 35
	Iodine     Element = 53
)

// symbols maps atomic number to element symbol for the supported range.
var symbols = map[Element]string{
	1: "H", 2: "He", 3: "Li", 4: "Be", 5: "B", 6: "C", 7: "N", 8: "O",
	9: "F", 10: "Ne", 11: "Na", 12: "Mg", 13: "Al", 14: "Si", 15: "P",
	16: "S", 17: "Cl", 18: "Ar", 19: "K", 20: "Ca", 26: "Fe", 29: "Cu",
	30: "Zn", 32: "Ge", 34: "Se", 35: "Br", 53: "I",
}

// numbers is the inverse of symbols, built once at init.
var numbers = func() map[string]Element {
	m := make(map[string]Element, len(symbols))
	for n, s := range symbols {
		m[s] = n
	}
	return m
}()

// FromSymbol resolves an element symbol ("C", "Cl", ...) to its Element.
// Returns ErrUnknownElement for symbols outside the table.
func FromSymbol(symbol string) (Element, error) {
	n, ok := numbers[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownElement, symbol)
	}

	return n, nil
}

// Valid reports whether e is within the supported element table.
func (e Element) Valid() bool {
	_, ok := symbols[e]

	return ok
}

// Symbol returns the element symbol, or "?" for numbers outside the table.
func (e Element) Symbol() string {
	s, ok := symbols[e]
	if !ok {
		return "?"
	}

	return s
}

// String implements fmt.Stringer.
func (e Element) String() string { return e.Symbol() }
