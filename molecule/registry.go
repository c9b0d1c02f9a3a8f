// Package molecule: the species registry.
//
// The registry is the explicit, caller-owned "known species" pool used
// by deduplication: buckets keyed by canonical key, membership confirmed
// by exact isomorphism. There is no module-level state; every pool has
// an owner and a lifetime.

package molecule

import "github.com/katalvlaran/chemgraph/iso"

// Registry is a pool of distinct species. The zero value is not usable;
// construct with NewRegistry.
//
// Concurrency: a Registry is not internally synchronized; serialize
// access externally like any other mutable structure in this module.
type Registry struct {
	byKey map[string][]*Molecule
	size  int
}

// NewRegistry returns an empty species pool.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string][]*Molecule)}
}

// Len returns the number of distinct species in the pool.
func (r *Registry) Len() int { return r.size }

// Lookup returns the registered species isomorphic to m, if any.
// Key collisions are confirmed by exact isomorphism, never trusted.
func (r *Registry) Lookup(m *Molecule, opts ...iso.Option) (*Molecule, bool, error) {
	if m == nil {
		return nil, false, ErrNilMolecule
	}
	for _, known := range r.byKey[m.CanonicalKey()] {
		same, err := Isomorphic(known, m, opts...)
		if err != nil {
			return nil, false, err
		}
		if same {
			return known, true, nil
		}
	}

	return nil, false, nil
}

// Add registers m unless an isomorphic species is already present.
// Returns the pool's representative of the species and whether it was
// already known.
func (r *Registry) Add(m *Molecule, opts ...iso.Option) (*Molecule, bool, error) {
	known, ok, err := r.Lookup(m, opts...)
	if err != nil {
		return nil, false, err
	}
	if ok {
		return known, true, nil
	}
	key := m.CanonicalKey()
	r.byKey[key] = append(r.byKey[key], m)
	r.size++

	return m, false, nil
}
