package ingest

import (
	"sort"

	"comespath/pkg/csr"
)

// rawEdge is a directed edge with endpoints already remapped to compact
// [0, numNodes) node ids.
type rawEdge struct {
	from, to uint32
	weight   float64
}

// buildCSR sorts rawEdge records by (from, to) and assembles the three CSR
// arrays, mirroring the teacher's graph.Build: a counting pass for
// Indptr followed by a prefix sum, rather than an incremental insert per
// edge, so the whole graph is built in one linear pass over sorted edges.
func buildCSR(numNodes uint32, edges []rawEdge) (*csr.Graph, error) {
	if len(edges) == 0 {
		return nil, ErrEmptySource
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})

	indptr := make([]uint32, numNodes+1)
	for _, e := range edges {
		indptr[e.from+1]++
	}
	for i := uint32(1); i <= numNodes; i++ {
		indptr[i] += indptr[i-1]
	}

	indices := make([]uint32, len(edges))
	data := make([]float64, len(edges))
	for i, e := range edges {
		indices[i] = e.to
		data[i] = e.weight
	}

	return csr.New(int(numNodes), indptr, indices, data)
}
