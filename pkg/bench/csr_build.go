package bench

import (
	"sort"

	"comespath/pkg/csr"
)

// edge is a directed (from, to, weight) triple over compact node ids,
// the same build shape pkg/ingest uses: sort by (from, to), counting pass
// for Indptr, then a prefix sum.
type edge struct {
	from, to uint32
	weight   float64
}

func assembleCSR(numNodes uint32, edges []edge) (*csr.Graph, error) {
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
