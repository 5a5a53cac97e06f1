// Package pathbuild converts orb geometries into SVG path d strings
// projected onto the output canvas.
package pathbuild

import (
	"fmt"
	"strings"

	"maplaser/pkg/geo"

	"github.com/paulmach/orb"
)

// Path converts a geometry to a path command string. Lines become M/L
// sequences, rings and polygon exteriors additionally close with Z, and
// multi geometries concatenate their members' paths with a single space.
// Empty geometries and unsupported kinds yield "" rather than an error so
// one malformed feature cannot abort the whole job. Coordinates are fixed
// at two decimals for reproducible output.
func Path(g orb.Geometry, b geo.Bounds, c geo.CanvasSpec) string {
	switch g := g.(type) {
	case orb.LineString:
		return points(g, b, c, false)
	case orb.Ring:
		return points(orb.LineString(g), b, c, true)
	case orb.Polygon:
		// Exterior ring only; interior rings (holes) are not rendered.
		if len(g) == 0 {
			return ""
		}
		return points(orb.LineString(g[0]), b, c, true)
	case orb.MultiLineString:
		parts := make([]string, 0, len(g))
		for _, line := range g {
			if d := Path(line, b, c); d != "" {
				parts = append(parts, d)
			}
		}
		return strings.Join(parts, " ")
	case orb.MultiPolygon:
		parts := make([]string, 0, len(g))
		for _, poly := range g {
			if d := Path(poly, b, c); d != "" {
				parts = append(parts, d)
			}
		}
		return strings.Join(parts, " ")
	case orb.Collection:
		parts := make([]string, 0, len(g))
		for _, member := range g {
			if d := Path(member, b, c); d != "" {
				parts = append(parts, d)
			}
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// Segment builds the path for a bare two-point line, used for road edges
// that carry no explicit geometry.
func Segment(from, to orb.Point, b geo.Bounds, c geo.CanvasSpec) string {
	x1, y1 := geo.Project(from[0], from[1], b, c)
	x2, y2 := geo.Project(to[0], to[1], b, c)
	return fmt.Sprintf("M %.2f,%.2f L %.2f,%.2f", x1, y1, x2, y2)
}

func points(line orb.LineString, b geo.Bounds, c geo.CanvasSpec, closed bool) string {
	if len(line) == 0 {
		return ""
	}
	var d strings.Builder
	x, y := geo.Project(line[0][0], line[0][1], b, c)
	fmt.Fprintf(&d, "M %.2f,%.2f", x, y)
	for _, p := range line[1:] {
		x, y = geo.Project(p[0], p[1], b, c)
		fmt.Fprintf(&d, " L %.2f,%.2f", x, y)
	}
	if closed {
		d.WriteString(" Z")
	}
	return d.String()
}
