// Command server loads a graph from a file and serves shortest-path
// queries over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"comespath/pkg/api"
	"comespath/pkg/csr"
	"comespath/pkg/ingest"
	"comespath/pkg/sssp"
)

func main() {
	graphPath := flag.String("graph", "", "Path to a graph file (.adj, .graphml, or .osm)")
	format := flag.String("format", "", "Graph format: adj, graphml, or osm (default: inferred from --graph extension)")
	port := flag.Int("port", 8080, "HTTP port")
	corsOrigin := flag.String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	sparseFactor := flag.Int("sparse-threshold-factor", 2, "Edge/node ratio below which the solver falls back to a binary heap")
	flag.Parse()

	if *graphPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: server --graph <file> [--format adj|graphml|osm] [--port 8080]")
		os.Exit(1)
	}

	start := time.Now()

	g, err := loadGraph(*graphPath, *format)
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}
	log.Printf("Loaded: %d nodes, %d edges in %s", g.NumNodes, g.NumEdges(), time.Since(start).Round(time.Millisecond))

	solver := sssp.New(sssp.WithSparseThresholdFactor(*sparseFactor))
	solver.SetGraph(g)
	if solver.IsSparseFallback() {
		log.Println("Graph classified sparse: using binary-heap fallback")
	} else {
		log.Println("Graph classified dense: using bucket-partitioned frontier")
	}

	addr := fmt.Sprintf(":%d", *port)
	cfg := api.DefaultConfig(addr)
	cfg.CORSOrigin = *corsOrigin

	handlers := api.NewHandlers(solver, g)
	srv := api.NewServer(cfg, handlers)

	if err := api.ListenAndServe(srv); err != nil {
		log.Printf("Server stopped: %v", err)
		os.Exit(1)
	}
}

// loadGraph opens path and dispatches to the ingest loader matching
// format, inferring it from path's extension when format is empty.
func loadGraph(path, format string) (*csr.Graph, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch format {
	case "adj":
		return ingest.LoadAdjacencyList(f)
	case "graphml":
		return ingest.LoadGraphML(f)
	case "osm":
		return ingest.LoadOSMXML(context.Background(), f)
	default:
		return nil, fmt.Errorf("server: unrecognized graph format %q", format)
	}
}
