// Package roads normalizes raw OSM highway tags into the fixed five-tier
// road hierarchy used for layer grouping and laser power assignment.
package roads

import "strings"

type Tier int

const (
	Motorway Tier = iota
	Primary
	Secondary
	Tertiary
	Residential
)

// Tiers lists all tiers in descending importance. Layer emission follows
// this order.
var Tiers = []Tier{Motorway, Primary, Secondary, Tertiary, Residential}

func (t Tier) String() string {
	switch t {
	case Motorway:
		return "motorway"
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	default:
		return "residential"
	}
}

// Title returns the tier name capitalized for display ("Motorway").
func (t Tier) Title() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

var synonyms = map[string]Tier{
	"motorway":       Motorway,
	"motorway_link":  Motorway,
	"trunk":          Primary,
	"trunk_link":     Primary,
	"primary":        Primary,
	"primary_link":   Primary,
	"secondary":      Secondary,
	"secondary_link": Secondary,
	"tertiary":       Tertiary,
	"tertiary_link":  Tertiary,
	"residential":    Residential,
	"living_street":  Residential,
	"unclassified":   Residential,
}

// Classify maps a raw highway tag to a tier. Multi-valued tags
// ("primary;service") use only the first value. Anything unrecognized,
// including an empty tag, is residential.
func Classify(raw string) Tier {
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.ToLower(strings.TrimSpace(raw))
	if tier, ok := synonyms[raw]; ok {
		return tier
	}
	return Residential
}

// DefaultColor is the fallback stroke color for a tier the active theme
// does not configure.
const DefaultColor = "#BB0000"

// Color resolves the display color for a tier from a theme's tier color map.
func Color(colors map[string]string, t Tier) string {
	if c := colors[t.String()]; c != "" {
		return c
	}
	return DefaultColor
}
