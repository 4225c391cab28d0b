// Package partition derives Frontier Bucket sizing parameters from a
// graph's edge-weight distribution — the "Partitioner" of the solver
// pipeline. It runs once per set_graph call, never per query.
package partition

import "math"

// Epsilon guards against a pathological zero or near-zero minimum edge
// weight collapsing the bucket width to zero.
const Epsilon = 1e-8

// minBucketFloor and maxBucketCap bound the bucket count: at least 1024
// so small graphs still get a useful cyclic window, and at most 100,000
// so a single set_graph call can't allocate an unbounded bucket array.
const (
	minBucketFloor = 1024
	maxBucketCap   = 100_000
	bucketWordBits = 64
)

// Params holds the derived bucket parameters: the width of one distance
// bucket and the number of buckets in the cyclic frontier array.
type Params struct {
	BucketWidth float64
	NumBuckets  int
}

// Derive computes (bucket_width, num_buckets) from a graph's edge weights.
//
// bucket_width = max(Epsilon, min(weights)) — the Dial invariant requires
// bucket_width <= min_weight so that relaxing any edge out of the current
// bucket always lands in a strictly later bucket.
//
// num_buckets is the smallest power of two >= max(1024, min_buckets),
// capped at 100,000, then rounded up to a multiple of 64 so the bitmap
// divides evenly into 64-bit words.
//
// weights must be non-empty and all strictly positive; csr.New already
// enforces positivity for any graph reaching this point. An empty slice
// (the m==0 graph) returns a trivial partition: any positive width and the
// minimum 64-bucket window, since the frontier will never hold more than
// the source node before the search terminates.
func Derive(weights []float64) Params {
	if len(weights) == 0 {
		return Params{BucketWidth: 1, NumBuckets: bucketWordBits}
	}

	minW, maxW := weights[0], weights[0]
	for _, w := range weights[1:] {
		if w < minW {
			minW = w
		}
		if w > maxW {
			maxW = w
		}
	}

	width := math.Max(Epsilon, minW)
	minBuckets := int(math.Ceil(maxW/width)) + 2

	numBuckets := nextPowerOfTwo(max(minBucketFloor, minBuckets))
	if numBuckets > maxBucketCap {
		numBuckets = maxBucketCap
	}
	numBuckets = roundUpToMultiple(numBuckets, bucketWordBits)

	return Params{BucketWidth: width, NumBuckets: numBuckets}
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func roundUpToMultiple(n, multiple int) int {
	if n%multiple == 0 {
		return n
	}
	return (n/multiple + 1) * multiple
}
