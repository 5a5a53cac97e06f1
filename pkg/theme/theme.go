// Package theme provides laser output options: which map categories to
// include and what color each one gets in the generated documents.
package theme

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Options holds the laser-specific theme settings. Construct via Defaults,
// Load, or ParseOptions; never mutate after construction.
type Options struct {
	IncludeRoads  bool
	IncludeWater  bool
	IncludeParks  bool
	IncludeText   bool
	IncludeBorder bool

	RoadColors map[string]string
	WaterColor string
	ParksColor string
	TextColor  string
}

// Defaults returns the built-in laser options used when a theme file has no
// laser section, or for any key the file omits.
func Defaults() Options {
	return Options{
		IncludeRoads:  true,
		IncludeWater:  true,
		IncludeParks:  true,
		IncludeText:   true,
		IncludeBorder: false,
		RoadColors: map[string]string{
			"motorway":    "#FF0000",
			"primary":     "#EE0000",
			"secondary":   "#DD0000",
			"tertiary":    "#CC0000",
			"residential": "#BB0000",
		},
		WaterColor: "#FFFF00",
		ParksColor: "#FFFFAA",
		TextColor:  "#000000",
	}
}

// laserSection mirrors the optional `laser:` block of a theme file. Pointer
// fields distinguish "omitted" from a deliberate false/empty.
type laserSection struct {
	IncludeRoads  *bool             `yaml:"include_roads"`
	IncludeWater  *bool             `yaml:"include_water"`
	IncludeParks  *bool             `yaml:"include_parks"`
	IncludeText   *bool             `yaml:"include_text"`
	IncludeBorder *bool             `yaml:"include_border"`
	RoadColors    map[string]string `yaml:"road_colors"`
	WaterColor    *string           `yaml:"water_color"`
	ParksColor    *string           `yaml:"parks_color"`
	TextColor     *string           `yaml:"text_color"`
}

type themeFile struct {
	Laser *laserSection `yaml:"laser"`
}

// Load reads a YAML theme file and merges its laser section over the
// defaults.
func Load(path string) (Options, error) {
	file, err := os.Open(path)
	if err != nil {
		return Options{}, err
	}
	defer file.Close()
	return ParseOptionsFromReader(file)
}

// ParseOptionsFromReader parses theme YAML from an io.Reader.
func ParseOptionsFromReader(r io.Reader) (Options, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Options{}, err
	}
	return ParseOptions(data)
}

// ParseOptions merges the laser section of the given theme YAML over the
// defaults and validates every color value.
func ParseOptions(data []byte) (Options, error) {
	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return Options{}, fmt.Errorf("theme parse error: %w", err)
	}

	opts := Defaults()
	if tf.Laser != nil {
		s := tf.Laser
		if s.IncludeRoads != nil {
			opts.IncludeRoads = *s.IncludeRoads
		}
		if s.IncludeWater != nil {
			opts.IncludeWater = *s.IncludeWater
		}
		if s.IncludeParks != nil {
			opts.IncludeParks = *s.IncludeParks
		}
		if s.IncludeText != nil {
			opts.IncludeText = *s.IncludeText
		}
		if s.IncludeBorder != nil {
			opts.IncludeBorder = *s.IncludeBorder
		}
		if s.RoadColors != nil {
			// Merge over the default map so unmentioned tiers keep defaults.
			for tier, color := range s.RoadColors {
				opts.RoadColors[tier] = color
			}
		}
		if s.WaterColor != nil {
			opts.WaterColor = *s.WaterColor
		}
		if s.ParksColor != nil {
			opts.ParksColor = *s.ParksColor
		}
		if s.TextColor != nil {
			opts.TextColor = *s.TextColor
		}
	}

	if err := opts.validateColors(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) validateColors() error {
	for tier, color := range o.RoadColors {
		if _, err := ParseColor(color); err != nil {
			return fmt.Errorf("theme road color for %s: %w", tier, err)
		}
	}
	named := []struct {
		name  string
		value string
	}{
		{"water_color", o.WaterColor},
		{"parks_color", o.ParksColor},
		{"text_color", o.TextColor},
	}
	for _, c := range named {
		if _, err := ParseColor(c.value); err != nil {
			return fmt.Errorf("theme %s: %w", c.name, err)
		}
	}
	return nil
}
