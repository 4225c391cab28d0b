package bench

import (
	"fmt"
	"math/rand"

	"comespath/pkg/csr"
)

const minGridDim = 1

// Grid builds a rows x cols orthogonal 4-neighborhood grid: each cell
// connects to its right and bottom neighbors, mirrored in both directions
// so the result behaves like an undirected weighted grid over a directed
// CSR graph. Vertex ids are row-major: id(r,c) = r*cols + c.
//
// weightFn supplies each edge's weight given rng; pass nil for unit
// weights, in which case rng is unused and may also be nil.
func Grid(rows, cols int, weightFn func(*rand.Rand) float64, rng *rand.Rand) (*csr.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("bench: Grid(rows=%d, cols=%d): %w", rows, cols, ErrTooFewVertices)
	}

	weight := func() float64 {
		if weightFn == nil {
			return 1.0
		}
		return weightFn(rng)
	}

	id := func(r, c int) uint32 { return uint32(r*cols + c) }

	numNodes := uint32(rows * cols)
	edges := make([]edge, 0, 2*2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := id(r, c)
			if c+1 < cols {
				v := id(r, c+1)
				w := weight()
				edges = append(edges, edge{from: u, to: v, weight: w}, edge{from: v, to: u, weight: w})
			}
			if r+1 < rows {
				v := id(r+1, c)
				w := weight()
				edges = append(edges, edge{from: u, to: v, weight: w}, edge{from: v, to: u, weight: w})
			}
		}
	}

	return assembleCSR(numNodes, edges)
}
