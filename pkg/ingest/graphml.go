package ingest

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"comespath/pkg/csr"
)

type graphmlDocument struct {
	XMLName xml.Name     `xml:"graphml"`
	Graph   graphmlGraph `xml:"graph"`
}

type graphmlGraph struct {
	Edges []graphmlEdge `xml:"edge"`
}

type graphmlEdge struct {
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphmlData `xml:"data"`
}

type graphmlData struct {
	Value string `xml:",chardata"`
}

// LoadGraphML reads a GraphML document and builds a CSR graph, mirroring
// comes_path's load_graphml: node ids (the GraphML source/target attribute
// strings) are remapped to a compact [0, n) range in first-seen order, and
// an edge's weight is its first nested <data> element's text, defaulting
// to 1.0 when an edge carries none.
func LoadGraphML(r io.Reader) (*csr.Graph, error) {
	var doc graphmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: parsing GraphML: %v", ErrMalformedRecord, err)
	}
	if len(doc.Graph.Edges) == 0 {
		return nil, ErrEmptySource
	}

	nodeIndex := make(map[string]uint32)
	nextID := uint32(0)
	remap := func(id string) uint32 {
		if idx, ok := nodeIndex[id]; ok {
			return idx
		}
		idx := nextID
		nodeIndex[id] = idx
		nextID++
		return idx
	}

	edges := make([]rawEdge, 0, len(doc.Graph.Edges))
	for i, e := range doc.Graph.Edges {
		weight := 1.0
		if len(e.Data) > 0 && e.Data[0].Value != "" {
			w, err := strconv.ParseFloat(e.Data[0].Value, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: edge %d: weight %q: %v", ErrMalformedRecord, i, e.Data[0].Value, err)
			}
			weight = w
		}
		if weight <= 0 {
			return nil, fmt.Errorf("%w: edge %d: weight=%v", ErrNonPositiveWeight, i, weight)
		}

		from := remap(e.Source)
		to := remap(e.Target)
		edges = append(edges, rawEdge{from: from, to: to, weight: weight})
	}

	return buildCSR(nextID, edges)
}
