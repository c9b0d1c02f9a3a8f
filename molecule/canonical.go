// Package molecule: canonical key and molecular formula.
//
// CanonicalKey is the deduplication fingerprint: a deterministic string
// derived from iterative neighborhood refinement over atom states and
// bond orders. Isomorphic molecules always share a key; distinct
// molecules almost always differ, and the Registry confirms the residual
// collisions by exact isomorphism.

package molecule

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/katalvlaran/chemgraph/chem"
	"github.com/katalvlaran/chemgraph/core"
)

// CanonicalKey returns the deterministic fingerprint string of m.
//
// Algorithm: each atom starts from the code (atom state key, degree);
// each refinement round replaces an atom's code with a hash of its own
// code and the sorted multiset of (bond key, neighbor code) pairs; the
// rounds run |V| times, enough for any influence to cross the graph.
// The key is the molecular formula plus the sorted final codes, so it is
// invariant under any relabeling of atom IDs.
//
// Complexity: O(V · (V + E) log V).
func (m *Molecule) CanonicalKey() string {
	ids := m.g.Vertices()
	n := len(ids)
	if n == 0 {
		return "empty"
	}
	idx := make(map[core.VertexID]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	// Initial codes: atom state + degree.
	codes := make([]uint64, n)
	for i, id := range ids {
		a, _ := m.g.Label(id)
		d, _ := m.g.Degree(id)
		codes[i] = hashString(fmt.Sprintf("%s/%d", a.Key(), d))
	}

	// Refinement rounds.
	next := make([]uint64, n)
	for round := 0; round < n; round++ {
		for i, id := range ids {
			nbrs, _ := m.g.Neighbors(id)
			parts := make([]string, len(nbrs))
			for k, nbr := range nbrs {
				eid, _ := m.g.EdgeBetween(id, nbr)
				order, _ := m.g.EdgeLabel(eid)
				parts[k] = fmt.Sprintf("%s%016x", order.Key(), codes[idx[nbr]])
			}
			sort.Strings(parts)
			next[i] = hashString(fmt.Sprintf("%016x|%s", codes[i], strings.Join(parts, ",")))
		}
		codes, next = next, codes
	}

	// Sorted final codes folded into one digest, prefixed by the formula
	// for readability.
	final := make([]string, n)
	for i, c := range codes {
		final[i] = fmt.Sprintf("%016x", c)
	}
	sort.Strings(final)

	return fmt.Sprintf("%s:%016x", m.Formula(), hashString(strings.Join(final, ",")))
}

// hashString is the FNV-1a 64-bit hash of s.
func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))

	return h.Sum64()
}

// Formula returns the molecular formula in Hill order: carbon first,
// hydrogen second, all other elements alphabetically by symbol (fully
// alphabetical when no carbon is present). Counts of 1 are elided.
func (m *Molecule) Formula() string {
	counts := make(map[chem.Element]int)
	for _, id := range m.g.Vertices() {
		a, _ := m.g.Label(id)
		counts[a.Element]++
	}

	symbols := make([]string, 0, len(counts))
	bySymbol := make(map[string]int, len(counts))
	for el, c := range counts {
		symbols = append(symbols, el.Symbol())
		bySymbol[el.Symbol()] = c
	}
	sort.Strings(symbols)

	ordered := make([]string, 0, len(symbols))
	if _, hasC := counts[chem.Carbon]; hasC {
		ordered = append(ordered, "C")
		if _, hasH := counts[chem.Hydrogen]; hasH {
			ordered = append(ordered, "H")
		}
		for _, s := range symbols {
			if s != "C" && s != "H" {
				ordered = append(ordered, s)
			}
		}
	} else {
		ordered = symbols
	}

	var b strings.Builder
	for _, s := range ordered {
		b.WriteString(s)
		if c := bySymbol[s]; c > 1 {
			fmt.Fprintf(&b, "%d", c)
		}
	}

	return b.String()
}
