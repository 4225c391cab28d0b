// Package sssp implements the Dispatcher/Solver that chooses between
// bucket-partitioned frontier search and a plain binary-heap fallback,
// drives the per-query main loop, and owns the dist/settled/frontier state
// for each call.
package sssp

import (
	"context"
	"fmt"
	"math"
	"sync"

	"comespath/pkg/csr"
	"comespath/pkg/frontier"
	"comespath/pkg/partition"
	"comespath/pkg/pivot"
	"comespath/pkg/relax"
)

// Solver runs single-source shortest-path queries against one installed
// CSR graph at a time. A Solver is safe for concurrent ShortestPath/
// ShortestPathTo calls once SetGraph has returned; SetGraph itself must not
// be called concurrently with queries or with itself.
type Solver struct {
	opts Options

	g              *csr.Graph
	sparseFallback bool
	params         partition.Params
	pivots         []bool

	qsPool sync.Pool
}

// New creates a Solver with no graph installed. Call SetGraph before
// ShortestPath/ShortestPathTo.
func New(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{opts: o}
}

// SetGraph installs g as the graph future queries run against, classifying
// it as bucket mode or sparse fallback and, for bucket mode, deriving and
// caching the bucket partition parameters and pivot mask. Graph and derived
// structures live until the next SetGraph call.
func (s *Solver) SetGraph(g *csr.Graph) {
	n := int(g.NumNodes)
	m := g.NumEdges()

	s.g = g
	s.sparseFallback = m < s.opts.SparseThresholdFactor*n
	s.pivots = nil
	s.params = partition.Params{}

	if !s.sparseFallback {
		s.params = partition.Derive(g.Data)
		if !s.opts.DisableLookAhead {
			s.pivots = pivot.Identify(g.Indptr)
		}
	}

	s.qsPool = sync.Pool{
		New: func() any { return newQueryState(n) },
	}
}

// IsSparseFallback reports whether the installed graph is being solved with
// the binary-heap fallback (m < SparseThresholdFactor*n) instead of the
// bucket frontier.
func (s *Solver) IsSparseFallback() bool {
	return s.sparseFallback
}

// ShortestPath computes distances from source to every node, returning a
// dense vector of length n with +Inf for unreachable nodes.
func (s *Solver) ShortestPath(ctx context.Context, source uint32) ([]float64, error) {
	dist, _, err := s.run(ctx, source, noTarget)
	return dist, err
}

// ShortestPathTo computes the distance from source to target only, early
// terminating the search once target is settled. It returns the same value
// ShortestPath(ctx, source) would at index target, including +Inf if
// target is unreachable.
func (s *Solver) ShortestPathTo(ctx context.Context, source, target uint32) (float64, error) {
	if s.g == nil {
		return 0, ErrNoGraph
	}
	if int(target) >= int(s.g.NumNodes) {
		return 0, fmt.Errorf("%w: target=%d n=%d", ErrInvalidTarget, target, s.g.NumNodes)
	}
	dist, _, err := s.run(ctx, source, int(target))
	if err != nil {
		return 0, err
	}
	return dist[target], nil
}

// run validates source/target, drives the chosen mode's main loop, and
// returns a copy of the resulting distance vector plus the final query
// state (exposed for tests that assert on state transitions).
func (s *Solver) run(ctx context.Context, source uint32, target int) ([]float64, State, error) {
	if s.g == nil {
		return nil, StateReady, ErrNoGraph
	}
	n := int(s.g.NumNodes)
	if int(source) >= n {
		return nil, StateReady, fmt.Errorf("%w: source=%d n=%d", ErrInvalidSource, source, n)
	}
	if target != noTarget && target >= n {
		return nil, StateReady, fmt.Errorf("%w: target=%d n=%d", ErrInvalidTarget, target, n)
	}

	qs := s.qsPool.Get().(*queryState)
	defer func() {
		qs.reset()
		s.qsPool.Put(qs)
	}()

	qs.dist[source] = 0

	var (
		state State
		err   error
	)
	if s.sparseFallback {
		state, err = s.runHeap(ctx, qs, source, target)
	} else {
		state, err = s.runBucket(ctx, qs, source, target)
	}
	if err != nil {
		return nil, state, err
	}

	out := make([]float64, n)
	copy(out, qs.dist)
	return out, state, nil
}

// runBucket drives the bucket-frontier main loop of spec.md §4.5.
func (s *Solver) runBucket(ctx context.Context, qs *queryState, source uint32, target int) (State, error) {
	if qs.fr == nil {
		qs.fr = frontier.New(s.params.BucketWidth, s.params.NumBuckets)
	}
	if err := qs.fr.Insert(source, 0); err != nil {
		return StateReady, err
	}

	state := StateReady
	iterations := uint32(0)
	for !qs.fr.IsEmpty() {
		iterations++
		if iterations&255 == 0 {
			if err := ctx.Err(); err != nil {
				return state, err
			}
		}

		u := qs.fr.PopMin()
		if u == frontier.NoNode {
			break
		}
		state = StateRunning

		if qs.settled[u] {
			continue
		}
		qs.settled[u] = true

		if target != noTarget && int(u) == target {
			return StateEarlyTerminated, nil
		}

		if err := relax.Node(u, qs.dist, s.g, s.pivots, qs.fr); err != nil {
			return state, err
		}
	}
	return StateCompleted, nil
}

// runHeap drives the binary-heap fallback of spec.md §4.6, used when the
// graph was classified sparse at SetGraph time.
func (s *Solver) runHeap(ctx context.Context, qs *queryState, source uint32, target int) (State, error) {
	qs.heap.Push(source, 0)

	state := StateReady
	iterations := uint32(0)
	// PeekDist returns +Inf for an empty heap, so this also covers the
	// empty-queue case without a separate Len() check.
	for !math.IsInf(qs.heap.PeekDist(), 1) {
		iterations++
		if iterations&255 == 0 {
			if err := ctx.Err(); err != nil {
				return state, err
			}
		}

		item := qs.heap.Pop()
		u, d := item.node, item.dist
		state = StateRunning

		if qs.settled[u] {
			continue
		}
		if d > qs.dist[u] {
			continue
		}
		qs.settled[u] = true

		if target != noTarget && int(u) == target {
			return StateEarlyTerminated, nil
		}

		neighbors, weights := s.g.Row(u)
		for i, v := range neighbors {
			nd := d + weights[i]
			if nd < qs.dist[v] {
				qs.dist[v] = nd
				qs.heap.Push(v, nd)
			}
		}
	}
	return StateCompleted, nil
}
