// Command bench runs the diamond correctness check from comes_path's
// technical verification, then benchmarks the bucket-partitioned solver
// against its own binary-heap fallback on a generated scale-free graph.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"comespath/pkg/bench"
	"comespath/pkg/csr"
	"comespath/pkg/sssp"
)

func main() {
	n := flag.Int("n", 100_000, "Number of nodes in the generated scale-free graph")
	mParam := flag.Int("m", 5, "Preferential-attachment edges per new node")
	seed := flag.Int64("seed", 1, "Random seed")
	source := flag.Uint("source", 0, "Source node for the benchmark query")
	flag.Parse()

	if err := verifyDiamond(); err != nil {
		log.Fatalf("Diamond verification FAILED: %v", err)
	}
	log.Println("Diamond verification PASSED.")

	rng := rand.New(rand.NewSource(*seed))
	log.Printf("Generating scale-free graph (n=%d, m=%d)...", *n, *mParam)
	weighted, err := weightedBarabasiAlbert(*n, *mParam, rng)
	if err != nil {
		log.Fatalf("Failed to generate graph: %v", err)
	}
	log.Printf("Graph: %d nodes, %d edges", weighted.NumNodes, weighted.NumEdges())

	ctx := context.Background()
	src := uint32(*source)

	bucketSolver := sssp.New()
	bucketSolver.SetGraph(weighted)
	if bucketSolver.IsSparseFallback() {
		log.Println("warning: graph classified sparse; bucket run will use the heap fallback too")
	}
	bucketSolver.ShortestPath(ctx, src) // warm-up, mirrors the Python script's JIT warm-up call
	start := time.Now()
	bucketDist, err := bucketSolver.ShortestPath(ctx, src)
	if err != nil {
		log.Fatalf("bucket solver: %v", err)
	}
	bucketTime := time.Since(start)
	log.Printf("Bucket-partitioned solver: %s", bucketTime)

	heapSolver := sssp.New(sssp.WithSparseThresholdFactor(math.MaxInt32))
	heapSolver.SetGraph(weighted)
	heapSolver.ShortestPath(ctx, src)
	start = time.Now()
	heapDist, err := heapSolver.ShortestPath(ctx, src)
	if err != nil {
		log.Fatalf("heap solver: %v", err)
	}
	heapTime := time.Since(start)
	log.Printf("Binary-heap fallback: %s", heapTime)

	improvement := float64(heapTime-bucketTime) / float64(heapTime) * 100
	log.Printf("Algorithmic dominance (bucket vs heap): %.2f%%", improvement)

	if !distancesMatch(bucketDist, heapDist) {
		log.Println("Validation FAILED: bucket and heap solvers disagree.")
		os.Exit(1)
	}
	log.Println("Validation PASSED.")
}

func verifyDiamond() error {
	g, err := bench.Diamond()
	if err != nil {
		return err
	}
	s := sssp.New()
	s.SetGraph(g)
	dist, err := s.ShortestPathTo(context.Background(), 0, 4)
	if err != nil {
		return err
	}
	if dist != 4.0 {
		return fmt.Errorf("ShortestPathTo(0, 4) = %v, want 4.0", dist)
	}
	return nil
}

// weightedBarabasiAlbert builds a scale-free graph and overwrites its unit
// edge weights with uniform [0.1, 1.1) weights, the way the Python
// benchmark assigns np.random.rand()+0.1 per edge.
func weightedBarabasiAlbert(n, m int, rng *rand.Rand) (*csr.Graph, error) {
	g, err := bench.BarabasiAlbert(n, m, rng)
	if err != nil {
		return nil, err
	}
	data := make([]float64, len(g.Data))
	for i := range data {
		data[i] = rng.Float64() + 0.1
	}
	return csr.New(int(g.NumNodes), g.Indptr, g.Indices, data)
}

func distancesMatch(a, b []float64) bool {
	for i := range a {
		af, bf := math.IsInf(a[i], 1), math.IsInf(b[i], 1)
		if af != bf {
			return false
		}
		if af {
			continue
		}
		if math.Abs(a[i]-b[i]) > 1e-5 {
			return false
		}
	}
	return true
}
