// Package csr defines the read-only Compressed Sparse Row graph the solver
// operates on, and validates it at construction time so that every other
// package can treat a *Graph as trusted input.
package csr

import (
	"fmt"
	"math"
)

// Graph is a directed, weighted graph in Compressed Sparse Row form.
//
// Row u's neighbors are Indices[Indptr[u]:Indptr[u+1]], with corresponding
// weights in Data[Indptr[u]:Indptr[u+1]]. Symmetry (undirected edges stored
// as a pair of directed arcs) is the caller's responsibility; Graph itself
// is always directed.
//
// A Graph is immutable once constructed by New. Multiple queries may read
// it concurrently.
type Graph struct {
	NumNodes uint32
	Indptr   []uint32  // len NumNodes+1, non-decreasing, Indptr[0]==0
	Indices  []uint32  // len NumEdges, neighbor node ids in [0, NumNodes)
	Data     []float64 // len NumEdges, positive finite weights
}

// New validates (n, indptr, indices, data) and returns a Graph wrapping
// them. The slices are not copied; the caller must not mutate them after
// a successful call.
//
// Preconditions, checked in order:
//   - n >= 1
//   - len(indptr) == n+1, indptr[0] == 0, indptr non-decreasing
//   - len(indices) == len(data) == indptr[n]
//   - every indices[i] is in [0, n)
//   - every data[i] is positive and finite
//
// Violations of the first four return ErrInvalidGraph; a bad weight
// returns ErrInvalidWeight. Both wrap the sentinel with the offending
// index for diagnosis.
func New(n int, indptr, indices []uint32, data []float64) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d must be >= 1", ErrInvalidGraph, n)
	}
	if len(indptr) != n+1 {
		return nil, fmt.Errorf("%w: len(indptr)=%d, want %d", ErrInvalidGraph, len(indptr), n+1)
	}
	if indptr[0] != 0 {
		return nil, fmt.Errorf("%w: indptr[0]=%d, want 0", ErrInvalidGraph, indptr[0])
	}
	for i := 1; i <= n; i++ {
		if indptr[i] < indptr[i-1] {
			return nil, fmt.Errorf("%w: indptr not non-decreasing at %d (%d < %d)", ErrInvalidGraph, i, indptr[i], indptr[i-1])
		}
	}
	m := int(indptr[n])
	if len(indices) != m || len(data) != m {
		return nil, fmt.Errorf("%w: indices/data length %d/%d, want %d", ErrInvalidGraph, len(indices), len(data), m)
	}
	for i, v := range indices {
		if int(v) >= n {
			return nil, fmt.Errorf("%w: indices[%d]=%d out of range [0,%d)", ErrInvalidGraph, i, v, n)
		}
	}
	for i, w := range data {
		if !(w > 0) || math.IsInf(w, 0) || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: data[%d]=%v must be positive and finite", ErrInvalidWeight, i, w)
		}
	}

	return &Graph{
		NumNodes: uint32(n),
		Indptr:   indptr,
		Indices:  indices,
		Data:     data,
	}, nil
}

// NumEdges returns the number of directed edges in the graph.
func (g *Graph) NumEdges() int {
	return len(g.Indices)
}

// Row returns the neighbor ids and corresponding weights for node u.
// The returned slices alias g's storage and must not be mutated.
func (g *Graph) Row(u uint32) (neighbors []uint32, weights []float64) {
	start, end := g.Indptr[u], g.Indptr[u+1]
	return g.Indices[start:end], g.Data[start:end]
}

// Degree returns the out-degree of node u.
func (g *Graph) Degree(u uint32) int {
	return int(g.Indptr[u+1] - g.Indptr[u])
}
