package bench

import "comespath/pkg/csr"

// Diamond returns the 5-node hand-built verification graph from
// comes_path's technical_test.py: a diamond with one long and one short
// route between nodes 0 and 4, symmetrized into an undirected graph.
//
//	0 --(1.0)--> 1 --(2.0)--> 2
//	0 --(5.0)--> 3 --(1.0)--> 2
//	2 --(1.0)--> 4
//
// Shortest distance from 0 to 4 is 4.0, via 0->1->2->4.
func Diamond() (*csr.Graph, error) {
	edges := []edge{
		{from: 0, to: 1, weight: 1.0}, {from: 1, to: 0, weight: 1.0},
		{from: 1, to: 2, weight: 2.0}, {from: 2, to: 1, weight: 2.0},
		{from: 0, to: 3, weight: 5.0}, {from: 3, to: 0, weight: 5.0},
		{from: 3, to: 2, weight: 1.0}, {from: 2, to: 3, weight: 1.0},
		{from: 2, to: 4, weight: 1.0}, {from: 4, to: 2, weight: 1.0},
	}
	return assembleCSR(5, edges)
}
