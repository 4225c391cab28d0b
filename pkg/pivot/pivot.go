// Package pivot identifies high-degree hub nodes ("pivots") from a graph's
// CSR row-offset array. Pivots get one extra hop of look-ahead relaxation
// whenever their tentative distance improves, funneling shortest-path search through hubs the way
// scale-free graphs naturally route through them.
package pivot

import "sort"

// Percentile is the degree percentile (inclusive) at or above which a node
// is classified as a pivot.
const Percentile = 99

// Identify computes a boolean pivot mask of length n = len(indptr)-1.
//
// threshold = percentile(degree, 99), computed deterministically by
// sorting a copy of the degree slice and indexing
// floor(0.99*(n-1)). A node is a pivot iff its degree is >= threshold.
func Identify(indptr []uint32) []bool {
	n := len(indptr) - 1
	if n <= 0 {
		return nil
	}

	degrees := make([]int, n)
	for v := 0; v < n; v++ {
		degrees[v] = int(indptr[v+1] - indptr[v])
	}

	sorted := make([]int, n)
	copy(sorted, degrees)
	sort.Ints(sorted)

	idx := int(float64(Percentile) / 100 * float64(n-1))
	threshold := sorted[idx]

	mask := make([]bool, n)
	for v, d := range degrees {
		mask[v] = d >= threshold
	}
	return mask
}
