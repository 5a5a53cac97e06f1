// Package mapdata holds the extracted map data one conversion job runs on:
// a road network, optional water and park feature collections, and the
// location metadata used for labels.
package mapdata

import (
	"fmt"

	"maplaser/pkg/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
)

// Edge is one road segment. Geometry is nil when only the endpoint nodes are
// known; consumers then fall back to the straight line between From and To.
type Edge struct {
	From     int64
	To       int64
	Geometry orb.Geometry
	Tags     osm.Tags
}

// RoadNetwork is a node/edge road graph with geographic node coordinates.
type RoadNetwork struct {
	Nodes map[int64]orb.Point
	Edges []Edge
}

func NewRoadNetwork() *RoadNetwork {
	return &RoadNetwork{Nodes: map[int64]orb.Point{}}
}

func (rn *RoadNetwork) AddNode(id int64, p orb.Point) {
	rn.Nodes[id] = p
}

func (rn *RoadNetwork) AddEdge(from, to int64, geom orb.Geometry, tags osm.Tags) {
	rn.Edges = append(rn.Edges, Edge{From: from, To: to, Geometry: geom, Tags: tags})
}

// MapData is the input to one conversion job. Water and Parks may be nil;
// a missing category simply produces no layer.
type MapData struct {
	Roads *RoadNetwork
	Water *geojson.FeatureCollection
	Parks *geojson.FeatureCollection

	City    string
	Country string
	Lat     float64
	Lon     float64
}

// Bounds derives the geographic bounding box from all road-network node
// coordinates. A network with no coordinate-bearing nodes is fatal: there is
// no spatial extent to project into.
func (m *MapData) Bounds() (geo.Bounds, error) {
	if m.Roads == nil || len(m.Roads.Nodes) == 0 {
		return geo.Bounds{}, fmt.Errorf("road network has no coordinates")
	}
	first := true
	var b geo.Bounds
	for _, p := range m.Roads.Nodes {
		if first {
			b = geo.Bounds{MinX: p[0], MinY: p[1], MaxX: p[0], MaxY: p[1]}
			first = false
			continue
		}
		if p[0] < b.MinX {
			b.MinX = p[0]
		}
		if p[0] > b.MaxX {
			b.MaxX = p[0]
		}
		if p[1] < b.MinY {
			b.MinY = p[1]
		}
		if p[1] > b.MaxY {
			b.MaxY = p[1]
		}
	}
	return b, nil
}
