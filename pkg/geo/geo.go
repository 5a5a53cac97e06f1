package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnitsPerInch is the canvas resolution. 100 units per inch keeps two
// decimal places of path precision meaningful.
const UnitsPerInch = 100.0

// MMPerInch converts physical size to the millimetre canvas used by the
// machine project format.
const MMPerInch = 25.4

// Margin reserves 5% of the canvas as a border so the projected geometry
// never touches the edge.
const Margin = 0.95

// Bounds is the geographic bounding box of a source geometry set.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// PhysicalSize is the output size in inches.
type PhysicalSize struct {
	Width  float64
	Height float64
}

// SupportedSizes are the canonical sizes offered by the CLI. ParsePhysicalSize
// accepts any positive pair; this list is for validation messaging only.
var SupportedSizes = []string{"8x12", "12x18", "18x24"}

// ParsePhysicalSize parses a compact "WxH" size like "12x18" (inches).
func ParsePhysicalSize(s string) (PhysicalSize, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return PhysicalSize{}, fmt.Errorf("invalid size format %q: expected 'WxH' like %s", s, SupportedSizes[0])
	}
	width, errW := strconv.ParseFloat(parts[0], 64)
	height, errH := strconv.ParseFloat(parts[1], 64)
	if errW != nil || errH != nil {
		return PhysicalSize{}, fmt.Errorf("invalid size values %q: must be numbers", s)
	}
	if width <= 0 || height <= 0 {
		return PhysicalSize{}, fmt.Errorf("invalid size %q: width and height must be positive", s)
	}
	return PhysicalSize{Width: width, Height: height}, nil
}

// CanvasSpec is the canvas size in canvas units, derived from a PhysicalSize.
type CanvasSpec struct {
	Width  float64
	Height float64
}

func Canvas(size PhysicalSize) CanvasSpec {
	return CanvasSpec{
		Width:  size.Width * UnitsPerInch,
		Height: size.Height * UnitsPerInch,
	}
}

// Project maps a geographic point into canvas space: uniform scale to fit,
// 5% margin, centered on both axes, Y flipped (canvas origin is top-left).
// A zero-extent bounds axis falls back to scale 1 instead of dividing by zero.
func Project(x, y float64, b Bounds, c CanvasSpec) (float64, float64) {
	scaleX := 1.0
	if b.Width() > 0 {
		scaleX = c.Width / b.Width()
	}
	scaleY := 1.0
	if b.Height() > 0 {
		scaleY = c.Height / b.Height()
	}
	scale := math.Min(scaleX, scaleY) * Margin

	offsetX := (c.Width - b.Width()*scale) / 2
	offsetY := (c.Height - b.Height()*scale) / 2

	px := (x-b.MinX)*scale + offsetX
	py := c.Height - ((y-b.MinY)*scale + offsetY)
	return px, py
}
