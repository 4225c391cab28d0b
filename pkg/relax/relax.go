// Package relax implements edge relaxation with pivot look-ahead: the
// standard Dijkstra-style relaxation of a settled node's row, plus one
// bounded extra hop through any relaxed neighbor that is a pivot.
package relax

import (
	"comespath/pkg/csr"
	"comespath/pkg/frontier"
)

// Node performs relaxation from settled node u against its CSR row.
//
// For each (v, w) in u's row, if dist[u]+w improves dist[v], dist[v] is
// updated and v is inserted into fr at its new distance. If v is a pivot,
// one additional level of relaxation runs over v's row — look-ahead is a
// fixed depth of 2 from u; there is no deeper recursion. Look-ahead only
// ever tightens upper bounds and never marks a node settled, so any extra
// relaxation it performs is re-checked against dist when that node is
// eventually popped.
//
// pivots may be nil, in which case look-ahead never triggers and Node does
// plain single-hop relaxation. The solver passes nil when look-ahead is
// disabled (sssp.WithLookAheadDisabled); sparse-fallback mode does not call
// Node at all.
func Node(u uint32, dist []float64, g *csr.Graph, pivots []bool, fr *frontier.Frontier) error {
	neighbors, weights := g.Row(u)
	for i, v := range neighbors {
		nd := dist[u] + weights[i]
		if nd >= dist[v] {
			continue
		}
		dist[v] = nd
		if err := fr.Insert(v, nd); err != nil {
			return err
		}

		if pivots == nil || !pivots[v] {
			continue
		}

		secondNeighbors, secondWeights := g.Row(v)
		for j, nv := range secondNeighbors {
			nd2 := nd + secondWeights[j]
			if nd2 >= dist[nv] {
				continue
			}
			dist[nv] = nd2
			if err := fr.Insert(nv, nd2); err != nil {
				return err
			}
		}
	}
	return nil
}
