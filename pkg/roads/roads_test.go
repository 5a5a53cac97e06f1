package roads_test

import (
	"testing"

	"maplaser/pkg/roads"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want roads.Tier
	}{
		{"motorway", roads.Motorway},
		{"motorway_link", roads.Motorway},
		{"trunk", roads.Primary},
		{"trunk_link", roads.Primary},
		{"primary", roads.Primary},
		{"primary_link", roads.Primary},
		{"secondary", roads.Secondary},
		{"secondary_link", roads.Secondary},
		{"tertiary", roads.Tertiary},
		{"tertiary_link", roads.Tertiary},
		{"residential", roads.Residential},
		{"living_street", roads.Residential},
		{"unclassified", roads.Residential},

		// anything outside the table defaults to residential
		{"racetrack", roads.Residential},
		{"service", roads.Residential},
		{"footway", roads.Residential},
		{"", roads.Residential},

		// multi-valued tags use the first value only
		{"motorway;service", roads.Motorway},
		{"trunk;residential", roads.Primary},
		{";motorway", roads.Residential},

		{"MOTORWAY", roads.Motorway},
		{" primary ", roads.Primary},
	}
	for _, test := range tests {
		if got := roads.Classify(test.raw); got != test.want {
			t.Errorf("Classify(%q) = %s, want %s", test.raw, got, test.want)
		}
	}
}

func TestTierStrings(t *testing.T) {
	want := []string{"motorway", "primary", "secondary", "tertiary", "residential"}
	for i, tier := range roads.Tiers {
		if tier.String() != want[i] {
			t.Errorf("Tiers[%d].String() = %q, want %q", i, tier.String(), want[i])
		}
	}
	if roads.Motorway.Title() != "Motorway" {
		t.Errorf("incorrect title: %q", roads.Motorway.Title())
	}
}

func TestColor(t *testing.T) {
	colors := map[string]string{
		"motorway": "#FF0000",
		"primary":  "#EE0000",
	}
	if got := roads.Color(colors, roads.Motorway); got != "#FF0000" {
		t.Errorf("Color(motorway) = %q", got)
	}
	// missing tier falls back to the default
	if got := roads.Color(colors, roads.Tertiary); got != roads.DefaultColor {
		t.Errorf("Color(tertiary) = %q, want %q", got, roads.DefaultColor)
	}
	if got := roads.Color(nil, roads.Motorway); got != roads.DefaultColor {
		t.Errorf("Color with nil map = %q, want %q", got, roads.DefaultColor)
	}
}
