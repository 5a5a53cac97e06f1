package theme

import (
	"fmt"
	"regexp"
	"strconv"
)

// Color is an RGB color with channels in [0, 1].
type Color struct {
	R float64
	G float64
	B float64
}

var rgbPercentRE = regexp.MustCompile(`^rgb\(([0-9.]+)%,([0-9.]+)%,([0-9.]+)%\)$`)
var hexColorRE = regexp.MustCompile(`^#([[:xdigit:]]{2})([[:xdigit:]]{2})([[:xdigit:]]{2})$`)

// ParseColor parses a "#RRGGBB" or "rgb(r%,g%,b%)" color description.
func ParseColor(color string) (Color, error) {
	rgb := rgbPercentRE.FindStringSubmatch(color)
	if rgb != nil {
		parse := func(channel string) float64 {
			val, _ := strconv.ParseFloat(channel, 64)
			return val / 100
		}
		return Color{
			R: parse(rgb[1]),
			G: parse(rgb[2]),
			B: parse(rgb[3]),
		}, nil
	}

	hex := hexColorRE.FindStringSubmatch(color)
	if hex != nil {
		parse := func(channel string) float64 {
			val, _ := strconv.ParseUint(channel, 16, 64)
			return float64(val) / 255.0
		}
		return Color{
			R: parse(hex[1]),
			G: parse(hex[2]),
			B: parse(hex[3]),
		}, nil
	}

	return Color{}, fmt.Errorf("unknown color description %q", color)
}
