package ingest

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"

	"comespath/pkg/csr"
	"comespath/pkg/geo"
)

// carHighways lists highway tag values accessible by car. Matches the
// teacher's pkg/osm/parser.go car-routing filter.
var carHighways = map[string]bool{
	"motorway":       true,
	"motorway_link":  true,
	"trunk":          true,
	"trunk_link":     true,
	"primary":        true,
	"primary_link":   true,
	"secondary":      true,
	"secondary_link": true,
	"tertiary":       true,
	"tertiary_link":  true,
	"unclassified":   true,
	"residential":    true,
	"living_street":  true,
	"service":        true,
}

func isCarAccessible(tags osm.Tags) bool {
	if !carHighways[tags.Find("highway")] {
		return false
	}
	if tags.Find("area") == "yes" {
		return false
	}
	access := tags.Find("access")
	if access == "no" || access == "private" {
		return false
	}
	if tags.Find("motor_vehicle") == "no" {
		return false
	}
	return true
}

func directionFlags(tags osm.Tags) (forward, backward bool) {
	forward, backward = true, true

	hw := tags.Find("highway")
	if hw == "motorway" || hw == "motorway_link" || tags.Find("junction") == "roundabout" {
		backward = false
	}

	switch tags.Find("oneway") {
	case "yes", "true", "1":
		forward, backward = true, false
	case "-1", "reverse":
		forward, backward = false, true
	case "no":
		forward, backward = true, true
	case "reversible":
		forward, backward = false, false
	}
	return forward, backward
}

type wayInfo struct {
	nodeIDs  []osm.NodeID
	forward  bool
	backward bool
}

// LoadOSMXML reads an OSM-XML document and builds a CSR graph for car
// routing, mirroring comes_path's load_osm but with the teacher's richer
// two-pass parse: pass one scans <way> elements for car-accessible
// highways and collects the node ids they reference, pass two scans
// <node> elements for the coordinates of exactly those referenced nodes.
// Edge weights are great-circle meters (pkg/geo.Haversine) between
// consecutive way nodes, rather than the Python source's raw lat/lon
// Euclidean distance, since real-world OSM coordinates are geographic.
//
// r must support re-reading from the start for the second pass.
func LoadOSMXML(ctx context.Context, r io.ReadSeeker) (*csr.Graph, error) {
	referenced := make(map[osm.NodeID]struct{})
	var ways []wayInfo

	scanner := osmxml.New(ctx, r)
	for scanner.Scan() {
		w, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if !isCarAccessible(w.Tags) || len(w.Nodes) < 2 {
			continue
		}
		fwd, bwd := directionFlags(w.Tags)
		if !fwd && !bwd {
			continue
		}

		nodeIDs := make([]osm.NodeID, len(w.Nodes))
		for i, wn := range w.Nodes {
			nodeIDs[i] = wn.ID
			referenced[wn.ID] = struct{}{}
		}
		ways = append(ways, wayInfo{nodeIDs: nodeIDs, forward: fwd, backward: bwd})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("ingest: osm pass 1 (ways): %w", err)
	}
	scanner.Close()
	log.Printf("ingest: osm pass 1 complete: %d ways, %d referenced nodes", len(ways), len(referenced))

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("ingest: seeking for osm pass 2: %w", err)
	}

	coords := make(map[osm.NodeID]orb.Point, len(referenced))
	scanner = osmxml.New(ctx, r)
	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, needed := referenced[n.ID]; !needed {
			continue
		}
		coords[n.ID] = orb.Point{n.Lon, n.Lat}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("ingest: osm pass 2 (nodes): %w", err)
	}
	scanner.Close()
	log.Printf("ingest: osm pass 2 complete: %d node coordinates collected", len(coords))

	nodeIndex := make(map[osm.NodeID]uint32, len(coords))
	nextID := uint32(0)
	remap := func(id osm.NodeID) uint32 {
		if idx, ok := nodeIndex[id]; ok {
			return idx
		}
		idx := nextID
		nodeIndex[id] = idx
		nextID++
		return idx
	}

	var edges []rawEdge
	var skipped int
	for _, w := range ways {
		for i := 0; i < len(w.nodeIDs)-1; i++ {
			fromID, toID := w.nodeIDs[i], w.nodeIDs[i+1]
			from, fromOK := coords[fromID]
			to, toOK := coords[toID]
			if !fromOK || !toOK {
				skipped++
				continue
			}

			dist := geo.Haversine(from.Lat(), from.Lon(), to.Lat(), to.Lon())
			if dist <= 0 {
				skipped++
				continue
			}

			fromIdx, toIdx := remap(fromID), remap(toID)
			if w.forward {
				edges = append(edges, rawEdge{from: fromIdx, to: toIdx, weight: dist})
			}
			if w.backward {
				edges = append(edges, rawEdge{from: toIdx, to: fromIdx, weight: dist})
			}
		}
	}
	if skipped > 0 {
		log.Printf("ingest: osm skipped %d edges with missing coordinates or zero length", skipped)
	}
	log.Printf("ingest: osm built %d directed edges over %d nodes", len(edges), nextID)

	return buildCSR(nextID, edges)
}
