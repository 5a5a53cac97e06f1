package layers

import (
	"fmt"
	"math"
	"strings"

	"maplaser/pkg/geo"
	"maplaser/pkg/mapdata"
	"maplaser/pkg/pathbuild"
	"maplaser/pkg/roads"
	"maplaser/pkg/theme"

	"github.com/paulmach/orb/geojson"
)

// Label placement fractions of canvas height, matching the poster layout:
// city name, country underneath, coordinate annotation at the bottom.
const (
	cityYFrac    = 0.88
	countryYFrac = 0.92
	coordsYFrac  = 0.95
)

// Assemble runs the shared pipeline: build paths for every enabled category
// and emit layers in the fixed z-order: water, parks, road tiers from
// motorway down to residential, then labels. Categories that are disabled by
// the theme or have no data contribute nothing.
func Assemble(m *mapdata.MapData, opts theme.Options, b geo.Bounds, c geo.CanvasSpec) *Assembly {
	a := &Assembly{}

	if opts.IncludeWater && m.Water != nil {
		a.add(
			Layer{Name: "Water", Category: CategoryWater, Color: opts.WaterColor},
			fillElements(m.Water, CategoryWater, opts.WaterColor, b, c),
		)
	}

	if opts.IncludeParks && m.Parks != nil {
		a.add(
			Layer{Name: "Parks", Category: CategoryParks, Color: opts.ParksColor},
			fillElements(m.Parks, CategoryParks, opts.ParksColor, b, c),
		)
	}

	if opts.IncludeRoads && m.Roads != nil {
		byTier := roadElements(m.Roads, opts, b, c)
		for _, tier := range roads.Tiers {
			a.add(
				Layer{
					Name:     "Roads - " + tier.Title(),
					Category: CategoryRoad,
					Tier:     tier,
					Color:    roads.Color(opts.RoadColors, tier),
				},
				byTier[tier],
			)
		}
	}

	if opts.IncludeText {
		a.add(
			Layer{Name: "Text", Category: CategoryLabel, Color: opts.TextColor},
			labelElements(m, opts, c),
		)
	}

	return a
}

func fillElements(fc *geojson.FeatureCollection, cat Category, color string, b geo.Bounds, c geo.CanvasSpec) []PathElement {
	var elements []PathElement
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		d := pathbuild.Path(f.Geometry, b, c)
		if d == "" {
			continue
		}
		elements = append(elements, PathElement{D: d, Category: cat, Color: color})
	}
	return elements
}

// roadElements builds one path per edge and groups them by tier. Edges with
// explicit geometry use it; otherwise the straight line between the endpoint
// nodes is used. Edges with unresolvable endpoints are skipped.
func roadElements(rn *mapdata.RoadNetwork, opts theme.Options, b geo.Bounds, c geo.CanvasSpec) map[roads.Tier][]PathElement {
	byTier := map[roads.Tier][]PathElement{}
	for _, edge := range rn.Edges {
		var d string
		if edge.Geometry != nil {
			d = pathbuild.Path(edge.Geometry, b, c)
		} else {
			from, okFrom := rn.Nodes[edge.From]
			to, okTo := rn.Nodes[edge.To]
			if !okFrom || !okTo {
				continue
			}
			d = pathbuild.Segment(from, to, b, c)
		}
		if d == "" {
			continue
		}

		tier := roads.Classify(edge.Tags.Find("highway"))
		byTier[tier] = append(byTier[tier], PathElement{
			D:        d,
			Category: CategoryRoad,
			Tier:     tier,
			Color:    roads.Color(opts.RoadColors, tier),
		})
	}
	return byTier
}

func labelElements(m *mapdata.MapData, opts theme.Options, c geo.CanvasSpec) []PathElement {
	label := func(text string, yFrac, fontFrac float64, bold bool, opacity float64) PathElement {
		// Machine output has no text-to-path conversion; a short placeholder
		// line marks the label position there.
		y := c.Height * yFrac
		d := fmt.Sprintf("M %.2f,%.2f L %.2f,%.2f", c.Width/2-100, y, c.Width/2+100, y)
		return PathElement{
			D:        d,
			Category: CategoryLabel,
			Color:    opts.TextColor,
			Label: &Label{
				Text:     text,
				YFrac:    yFrac,
				FontFrac: fontFrac,
				Bold:     bold,
				Opacity:  opacity,
			},
		}
	}

	return []PathElement{
		label(strings.ToUpper(m.City), cityYFrac, 0.05, true, 0),
		label(strings.ToUpper(m.Country), countryYFrac, 0.025, false, 0),
		label(CoordinateLabel(m.Lat, m.Lon), coordsYFrac, 0.015, false, 0.7),
	}
}

// CoordinateLabel formats the map center like "42.3601° N / 71.0589° W".
func CoordinateLabel(lat, lon float64) string {
	ns := "N"
	if lat < 0 {
		ns = "S"
	}
	ew := "E"
	if lon < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.4f° %s / %.4f° %s", math.Abs(lat), ns, math.Abs(lon), ew)
}
