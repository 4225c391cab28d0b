package ingest

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadAdjacencyList_BuildsExpectedGraph(t *testing.T) {
	input := `# comment line
0 1 2.5
1 2 1.0
0 2 10.0
`
	g, err := LoadAdjacencyList(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadAdjacencyList: %v", err)
	}
	if g.NumNodes != 3 {
		t.Fatalf("NumNodes = %d, want 3", g.NumNodes)
	}
	if g.NumEdges() != 3 {
		t.Fatalf("NumEdges() = %d, want 3", g.NumEdges())
	}

	neighbors, weights := g.Row(0)
	if len(neighbors) != 2 {
		t.Fatalf("Row(0) has %d neighbors, want 2", len(neighbors))
	}
	_ = weights
}

func TestLoadAdjacencyList_NodeCountFromMaxID(t *testing.T) {
	// Node 5 appears but nodes 3,4 never do; node count must still be 6.
	g, err := LoadAdjacencyList(strings.NewReader("0 5 1.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if g.NumNodes != 6 {
		t.Fatalf("NumNodes = %d, want 6", g.NumNodes)
	}
}

func TestLoadAdjacencyList_EmptyInput(t *testing.T) {
	_, err := LoadAdjacencyList(strings.NewReader(""))
	if !errors.Is(err, ErrEmptySource) {
		t.Fatalf("err = %v, want ErrEmptySource", err)
	}
}

func TestLoadAdjacencyList_MalformedLine(t *testing.T) {
	_, err := LoadAdjacencyList(strings.NewReader("0 1\n"))
	if !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("err = %v, want ErrMalformedRecord", err)
	}
}

func TestLoadAdjacencyList_NonPositiveWeight(t *testing.T) {
	_, err := LoadAdjacencyList(strings.NewReader("0 1 0\n"))
	if !errors.Is(err, ErrNonPositiveWeight) {
		t.Fatalf("err = %v, want ErrNonPositiveWeight", err)
	}
}
