// Package iso: the backtracking search core.
//
// The engine works on flattened index-based sides: pattern vertex i and
// target vertex j are plain ints, adjacency is a dense matrix, and the
// compatibility predicates are pre-bound closures. An explicit frame
// stack replaces native recursion so the step budget and context are
// checked between backtracking steps and stack depth never limits input
// size. Branching is fully deterministic: the pattern order is static
// and candidate pools are scanned in ascending target index.

package iso

import "context"

// searchMode selects the injectivity/coverage rules of a query.
type searchMode uint8

const (
	// modeExact requires a bijection preserving adjacency AND
	// non-adjacency (total edge coverage is ensured by the caller's
	// count precheck plus non-adjacency enforcement).
	modeExact searchMode = iota

	// modeEmbed requires an injective embedding; target edges with no
	// pattern counterpart are ignored.
	modeEmbed
)

// side is the flattened form of one graph.
type side struct {
	n      int     // vertex count
	edges  int     // edge count
	deg    []int   // degree per index
	inRing []bool  // lies on a cycle
	adj    [][]int // neighbor indices, ascending
	mat    []bool  // n*n adjacency matrix, mat[i*n+j]
}

// adjacent reports whether vertices i and j are adjacent on s.
func (s *side) adjacent(i, j int) bool { return s.mat[i*s.n+j] }

// engine holds all search data and policies for one query. A dedicated
// struct (instead of anonymous closures) keeps dependencies explicit and
// hot-path state predictable.
type engine struct {
	p, t *side
	mode searchMode

	// vcompat reports label compatibility of pattern vertex pi with
	// target vertex ti; ecompat likewise for the edges (pa,pb)/(ta,tb),
	// which are guaranteed to exist when it is called.
	vcompat func(pi, ti int) bool
	ecompat func(pa, pb, ta, tb int) bool

	// collectAll keeps searching past the first complete mapping.
	collectAll bool
	limit      int // max results when collecting, 0 = unlimited

	ctx      context.Context
	maxSteps int
	steps    int

	order    []int   // pattern indices, most-constrained-first
	assigned []int   // pattern index → target index, -1 = unassigned
	used     []bool  // target index already an image
	results  [][]int // complete assignments (copies)
}

// frame is one explicit stack entry: the candidate pool for the pattern
// vertex at this depth and the scan position within it.
type frame struct {
	cands []int
	next  int
}

// run executes the search and returns every collected assignment.
// The error is non-nil only for ErrSearchAborted or context cancellation.
func (e *engine) run() ([][]int, error) {
	// Zero-vertex patterns match with the empty assignment (exact mode
	// reaches this only when both sides are empty, per the prechecks).
	if e.p.n == 0 {
		return [][]int{{}}, nil
	}

	e.order = patternOrder(e.p)
	e.assigned = make([]int, e.p.n)
	for i := range e.assigned {
		e.assigned[i] = -1
	}
	e.used = make([]bool, e.t.n)

	stack := make([]frame, 1, e.p.n)
	stack[0] = frame{cands: e.candidatePool(0)}

	for len(stack) > 0 {
		depth := len(stack) - 1
		f := &stack[depth]
		v := e.order[depth]

		// Re-entering this frame after a descent (or after recording a
		// result): release the tentative assignment before rescanning.
		if e.assigned[v] != -1 {
			e.used[e.assigned[v]] = false
			e.assigned[v] = -1
		}

		descended := false
		for f.next < len(f.cands) {
			w := f.cands[f.next]
			f.next++

			if err := e.tick(); err != nil {
				return e.results, err
			}
			if !e.feasible(depth, v, w) {
				continue
			}

			e.assigned[v] = w
			e.used[w] = true

			if depth+1 == e.p.n {
				// Complete mapping.
				e.record()
				if !e.collectAll || (e.limit > 0 && len(e.results) == e.limit) {
					return e.results, nil
				}
				// Keep enumerating: release and try the next candidate.
				e.used[w] = false
				e.assigned[v] = -1
				continue
			}

			// Descend with a pool constrained by the new assignment.
			stack = append(stack, frame{cands: e.candidatePool(depth + 1)})
			descended = true
			break
		}

		if !descended {
			stack = stack[:len(stack)-1]
		}
	}

	return e.results, nil
}

// tick advances the step counter, enforcing the budget and (sparsely)
// the context.
func (e *engine) tick() error {
	e.steps++
	if e.maxSteps > 0 && e.steps > e.maxSteps {
		return ErrSearchAborted
	}
	if e.steps&1023 == 0 {
		select {
		case <-e.ctx.Done():
			return e.ctx.Err()
		default:
		}
	}

	return nil
}

// candidatePool returns the raw target candidates for the pattern vertex
// at the given depth: the target neighbors of the image of an already
// assigned pattern neighbor when one exists (the order construction
// guarantees one within a connected run), or every target vertex when a
// new component starts.
func (e *engine) candidatePool(depth int) []int {
	v := e.order[depth]
	for _, u := range e.p.adj[v] {
		if e.assigned[u] != -1 {
			return e.t.adj[e.assigned[u]]
		}
	}
	all := make([]int, e.t.n)
	for i := range all {
		all[i] = i
	}

	return all
}

// feasible reports whether mapping pattern vertex v onto target vertex w
// is consistent with the labels, degrees, and every already assigned
// vertex. Degree is a sound necessity check, not a heuristic: an exact
// image must have equal degree, an embedding image at least the
// pattern's degree.
func (e *engine) feasible(depth, v, w int) bool {
	if e.used[w] {
		return false
	}
	if e.mode == modeExact && e.t.deg[w] != e.p.deg[v] {
		return false
	}
	if e.mode == modeEmbed && e.t.deg[w] < e.p.deg[v] {
		return false
	}
	if !e.vcompat(v, w) {
		return false
	}

	// Mapped pattern neighbors must land on adjacent, edge-compatible
	// target vertices.
	for _, u := range e.p.adj[v] {
		img := e.assigned[u]
		if img == -1 {
			continue
		}
		if !e.t.adjacent(w, img) {
			return false
		}
		if !e.ecompat(v, u, w, img) {
			return false
		}
	}

	// Exact mode additionally forbids adjacency between images of
	// non-adjacent pattern vertices.
	if e.mode == modeExact {
		for d := 0; d < depth; d++ {
			u := e.order[d]
			if e.assigned[u] == -1 || e.p.adjacent(v, u) {
				continue
			}
			if e.t.adjacent(w, e.assigned[u]) {
				return false
			}
		}
	}

	return true
}

// record copies the current complete assignment into the result set.
func (e *engine) record() {
	out := make([]int, len(e.assigned))
	copy(out, e.assigned)
	e.results = append(e.results, out)
}

// patternOrder returns the static visit order of pattern vertices:
// most constrained first. The start vertex maximizes (degree, ring
// membership); each subsequent pick maximizes (already-ordered
// neighbors, degree, ring membership). All ties break on ascending
// index, i.e. insertion order, for reproducibility. Vertices with no
// ordered neighbor (a new component) are admitted once the current
// component is exhausted.
func patternOrder(p *side) []int {
	order := make([]int, 0, p.n)
	placed := make([]bool, p.n)
	anchored := make([]int, p.n) // count of already-ordered neighbors

	// better reports whether candidate j beats the current best i:
	// more ordered neighbors > higher degree > in ring > lower index.
	better := func(i, j int) bool {
		if anchored[i] != anchored[j] {
			return anchored[j] > anchored[i]
		}
		if p.deg[i] != p.deg[j] {
			return p.deg[j] > p.deg[i]
		}
		if p.inRing[i] != p.inRing[j] {
			return p.inRing[j]
		}
		return false // equal scores keep the lower index
	}

	for len(order) < p.n {
		best := -1
		for i := 0; i < p.n; i++ {
			if placed[i] {
				continue
			}
			if best == -1 || better(best, i) {
				best = i
			}
		}
		order = append(order, best)
		placed[best] = true
		for _, nbr := range p.adj[best] {
			anchored[nbr]++
		}
	}

	return order
}
