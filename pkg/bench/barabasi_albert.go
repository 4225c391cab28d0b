package bench

import (
	"fmt"
	"math/rand"

	"comespath/pkg/csr"
)

// BarabasiAlbert builds a scale-free graph of n nodes using preferential
// attachment: each new node connects to m distinct existing nodes chosen
// with probability proportional to their current degree. The first m
// nodes start isolated and the (m+1)th node attaches to all of them,
// matching the standard construction (networkx's barabasi_albert_graph).
// Edges are undirected, stored as both directed arcs in the CSR result.
//
// rng must be non-nil; callers seed it explicitly for reproducible graphs.
func BarabasiAlbert(n, m int, rng *rand.Rand) (*csr.Graph, error) {
	if m < 1 || m >= n {
		return nil, fmt.Errorf("bench: BarabasiAlbert(n=%d, m=%d): %w", n, m, ErrInvalidAttachment)
	}

	var edges []edge
	addUndirected := func(u, v uint32) {
		w := 1.0
		edges = append(edges, edge{from: u, to: v, weight: w}, edge{from: v, to: u, weight: w})
	}

	targets := make([]uint32, m)
	for i := range targets {
		targets[i] = uint32(i)
	}

	var repeatedNodes []uint32
	for source := m; source < n; source++ {
		for _, t := range targets {
			addUndirected(uint32(source), t)
		}
		repeatedNodes = append(repeatedNodes, targets...)
		for i := 0; i < m; i++ {
			repeatedNodes = append(repeatedNodes, uint32(source))
		}
		targets = randomSubset(repeatedNodes, m, rng)
	}

	return assembleCSR(uint32(n), edges)
}

// randomSubset draws m distinct values from seq (sampling with
// replacement, rejecting repeats) the way the reference BA generator's
// _random_subset does.
func randomSubset(seq []uint32, m int, rng *rand.Rand) []uint32 {
	chosen := make(map[uint32]bool, m)
	out := make([]uint32, 0, m)
	for len(out) < m {
		v := seq[rng.Intn(len(seq))]
		if chosen[v] {
			continue
		}
		chosen[v] = true
		out = append(out, v)
	}
	return out
}
