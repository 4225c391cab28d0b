package ingest

import (
	"errors"
	"strings"
	"testing"
)

const testGraphML = `<?xml version="1.0" encoding="UTF-8"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <graph id="G" edgedefault="directed">
    <edge source="a" target="b">
      <data key="weight">3.5</data>
    </edge>
    <edge source="b" target="c">
      <data key="weight">1.0</data>
    </edge>
    <edge source="a" target="c"/>
  </graph>
</graphml>`

func TestLoadGraphML_BuildsExpectedGraph(t *testing.T) {
	g, err := LoadGraphML(strings.NewReader(testGraphML))
	if err != nil {
		t.Fatalf("LoadGraphML: %v", err)
	}
	if g.NumNodes != 3 {
		t.Fatalf("NumNodes = %d, want 3", g.NumNodes)
	}
	if g.NumEdges() != 3 {
		t.Fatalf("NumEdges() = %d, want 3", g.NumEdges())
	}

	// node "a" -> id 0 (first seen), "b" -> id 1, "c" -> id 2.
	neighbors, weights := g.Row(0)
	if len(neighbors) != 2 {
		t.Fatalf("Row(0) has %d neighbors, want 2", len(neighbors))
	}
	foundDefaultWeight := false
	for _, w := range weights {
		if w == 1.0 {
			foundDefaultWeight = true
		}
	}
	if !foundDefaultWeight {
		t.Errorf("edge a->c missing <data>, want default weight 1.0, got %v", weights)
	}
}

func TestLoadGraphML_EmptyGraph(t *testing.T) {
	_, err := LoadGraphML(strings.NewReader(`<graphml xmlns="http://graphml.graphdrawing.org/xmlns"><graph/></graphml>`))
	if !errors.Is(err, ErrEmptySource) {
		t.Fatalf("err = %v, want ErrEmptySource", err)
	}
}

func TestLoadGraphML_NonPositiveWeight(t *testing.T) {
	doc := `<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <graph>
    <edge source="a" target="b"><data>-1</data></edge>
  </graph>
</graphml>`
	_, err := LoadGraphML(strings.NewReader(doc))
	if !errors.Is(err, ErrNonPositiveWeight) {
		t.Fatalf("err = %v, want ErrNonPositiveWeight", err)
	}
}
