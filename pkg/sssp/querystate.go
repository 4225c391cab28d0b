package sssp

import (
	"math"

	"comespath/pkg/frontier"
)

// noTarget marks the absence of a target in internal calls; the exported
// ShortestPath/ShortestPathTo methods translate to and from it.
const noTarget = -1

// queryState holds the mutable working set for one shortest_path call:
// distances, the settled bitset, a Frontier for bucket mode, and a minHeap
// for sparse fallback. Exactly one of fr/heap is driven per query depending
// on the Solver's mode; both live on the struct so one pooled type serves
// either mode. SetGraph replaces the pool, so states are never reused
// across graphs.
type queryState struct {
	dist    []float64
	settled []bool

	fr   *frontier.Frontier
	heap minHeap
}

func newQueryState(n int) *queryState {
	qs := &queryState{
		dist:    make([]float64, n),
		settled: make([]bool, n),
	}
	for i := range qs.dist {
		qs.dist[i] = math.Inf(1)
	}
	return qs
}

// reset restores dist and settled to their post-construction state and
// clears whichever of fr/heap this query used. dist/settled are reset in
// full (O(n)): the algorithm itself is already O(n+m) per query, so this
// adds no asymptotic cost, and it avoids having to thread a touched-node
// accumulator through the Relaxer.
func (qs *queryState) reset() {
	for i := range qs.dist {
		qs.dist[i] = math.Inf(1)
	}
	for i := range qs.settled {
		qs.settled[i] = false
	}
	if qs.fr != nil {
		qs.fr.Reset()
	}
	qs.heap.Reset()
}
