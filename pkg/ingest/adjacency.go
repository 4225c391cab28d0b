package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"comespath/pkg/csr"
)

// LoadAdjacencyList reads a whitespace-separated "from to weight" triple
// per line and builds a CSR graph, mirroring comes_path's load_adj: node
// ids are used directly as array indices (no remapping), and the node
// count is one more than the largest id seen on either side of an edge.
// Blank lines and lines starting with '#' are skipped.
func LoadAdjacencyList(r io.Reader) (*csr.Graph, error) {
	var edges []rawEdge
	var maxID uint32

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 fields, got %d", ErrMalformedRecord, lineNo, len(fields))
		}

		u, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: from-id %q: %v", ErrMalformedRecord, lineNo, fields[0], err)
		}
		v, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: to-id %q: %v", ErrMalformedRecord, lineNo, fields[1], err)
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: weight %q: %v", ErrMalformedRecord, lineNo, fields[2], err)
		}
		if w <= 0 {
			return nil, fmt.Errorf("%w: line %d: weight=%v", ErrNonPositiveWeight, lineNo, w)
		}

		if uint32(u) > maxID {
			maxID = uint32(u)
		}
		if uint32(v) > maxID {
			maxID = uint32(v)
		}
		edges = append(edges, rawEdge{from: uint32(u), to: uint32(v), weight: w})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: reading adjacency list: %w", err)
	}
	if len(edges) == 0 {
		return nil, ErrEmptySource
	}

	return buildCSR(maxID+1, edges)
}
