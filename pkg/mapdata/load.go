package mapdata

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
)

// Load reads a GeoJSON feature collection exported by the map data fetcher
// and partitions it into roads, water, and parks. Features with a "highway"
// property become road edges; "natural"="water" or "waterway"="riverbank"
// become water; "leisure"="park" or "landuse"="grass" become parks. Other
// features are ignored.
func Load(path string) (*MapData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("map data parse error: %w", err)
	}
	return FromFeatures(fc), nil
}

// FromFeatures partitions an already-parsed feature collection.
func FromFeatures(fc *geojson.FeatureCollection) *MapData {
	m := &MapData{Roads: NewRoadNetwork()}
	var nextNode int64

	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		props := f.Properties

		if stringProp(props, "highway") != "" {
			nextNode = m.Roads.addRoadFeature(f, nextNode)
			continue
		}
		if stringProp(props, "natural") == "water" || stringProp(props, "waterway") == "riverbank" {
			if m.Water == nil {
				m.Water = geojson.NewFeatureCollection()
			}
			m.Water.Append(f)
			continue
		}
		if stringProp(props, "leisure") == "park" || stringProp(props, "landuse") == "grass" {
			if m.Parks == nil {
				m.Parks = geojson.NewFeatureCollection()
			}
			m.Parks.Append(f)
		}
	}
	return m
}

// addRoadFeature registers every vertex of the road geometry as a network
// node (so bounds cover the whole network) and adds one edge carrying the
// explicit geometry and the feature's tags.
func (rn *RoadNetwork) addRoadFeature(f *geojson.Feature, nextNode int64) int64 {
	var vertices []orb.Point
	switch g := f.Geometry.(type) {
	case orb.LineString:
		vertices = g
	case orb.MultiLineString:
		for _, line := range g {
			vertices = append(vertices, line...)
		}
	default:
		// Roads are expected to be lines; anything else still becomes an
		// edge so the path builder can decide what to do with it, but it
		// contributes no nodes.
	}

	first := nextNode
	for _, p := range vertices {
		rn.AddNode(nextNode, p)
		nextNode++
	}
	from, to := first, nextNode-1
	if len(vertices) == 0 {
		from, to = -1, -1
	}
	rn.AddEdge(from, to, f.Geometry, tagsFromProperties(f.Properties))
	return nextNode
}

func tagsFromProperties(props geojson.Properties) osm.Tags {
	var tags osm.Tags
	for key, value := range props {
		if s, ok := value.(string); ok {
			tags = append(tags, osm.Tag{Key: key, Value: s})
		}
	}
	return tags
}

func stringProp(props geojson.Properties, key string) string {
	s, _ := props[key].(string)
	return s
}
