// Package iso: Mapping result type, tunable options, and errors.

package iso

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/chemgraph/core"
)

// Sentinel errors for engine execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("iso: graph is nil")

	// ErrNilPredicate is returned if a nil compatibility predicate is passed.
	ErrNilPredicate = errors.New("iso: compatibility predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("iso: invalid option supplied")

	// ErrSearchAborted is returned when a caller-supplied step budget is
	// exceeded before the search could prove or disprove a match. It is
	// deliberately distinct from the no-match outcome (nil / empty result).
	ErrSearchAborted = errors.New("iso: search bound exceeded")
)

// Mapping is the result of a successful match: an injective function
// from source/pattern vertex IDs to target vertex IDs, plus the edge
// correspondence it implies. Mappings are ephemeral values owned by the
// caller; the engine never retains them.
type Mapping struct {
	// Vertex maps each source/pattern vertex ID to its target image.
	Vertex map[core.VertexID]core.VertexID

	// Edge maps each source/pattern edge ID to its target image.
	// For subgraph embeddings only pattern edges appear.
	Edge map[core.EdgeID]core.EdgeID
}

// IsIdentity reports whether every vertex maps to itself.
func (m *Mapping) IsIdentity() bool {
	for from, to := range m.Vertex {
		if from != to {
			return false
		}
	}

	return true
}

// Inverse returns the inverse mapping. Meaningful for bijective results
// (exact isomorphism and automorphisms).
func (m *Mapping) Inverse() *Mapping {
	inv := &Mapping{
		Vertex: make(map[core.VertexID]core.VertexID, len(m.Vertex)),
		Edge:   make(map[core.EdgeID]core.EdgeID, len(m.Edge)),
	}
	for from, to := range m.Vertex {
		inv.Vertex[to] = from
	}
	for from, to := range m.Edge {
		inv.Edge[to] = from
	}

	return inv
}

// Compose returns the mapping "m after other": vertices are sent through
// other first, then through m. Both operands must share the mid domain
// (automorphisms of one graph compose freely).
func (m *Mapping) Compose(other *Mapping) *Mapping {
	out := &Mapping{
		Vertex: make(map[core.VertexID]core.VertexID, len(other.Vertex)),
		Edge:   make(map[core.EdgeID]core.EdgeID, len(other.Edge)),
	}
	for from, mid := range other.Vertex {
		out.Vertex[from] = m.Vertex[mid]
	}
	for from, mid := range other.Edge {
		out.Edge[from] = m.Edge[mid]
	}

	return out
}

// Option configures engine behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the query is invoked.
type Option func(*Options)

// Options holds the tunable parameters of one engine query.
type Options struct {
	// Ctx allows cancellation and deadlines; checked sparsely inside the
	// search loop (every 1024 steps).
	Ctx context.Context

	// MaxSteps bounds the number of candidate-feasibility checks.
	// 0 disables the bound. When exceeded the query returns
	// ErrSearchAborted instead of a (dis)proven result.
	MaxSteps int

	// Limit caps the number of mappings collected by the enumerating
	// variants (SubgraphAll, Automorphisms). 0 means unlimited.
	Limit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
// background context, unbounded search, unlimited enumeration.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the search to n candidate-feasibility checks.
//
//	n > 0:  bounded search, ErrSearchAborted when exhausted
//	n == 0: explicit no bound
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithLimit caps enumeration at n mappings.
//
//	n > 0:  stop after n mappings
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// buildOptions folds opts over the defaults and surfaces any recorded
// option error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
