// Package svgout builds the layered vector document: one group per layer in
// z-order, paths carrying their stroke or fill color, and literal text
// labels. The document declares its physical size in inches with a viewBox
// in canvas units.
package svgout

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"maplaser/pkg/geo"
	"maplaser/pkg/layers"
)

type Document struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Groups  []Group  `xml:"g"`
}

type Group struct {
	ID          string `xml:"id,attr"`
	Stroke      string `xml:"stroke,attr,omitempty"`
	Fill        string `xml:"fill,attr,omitempty"`
	StrokeWidth string `xml:"stroke-width,attr,omitempty"`
	Paths       []Path `xml:"path"`
	Texts       []Text `xml:"text"`
}

type Path struct {
	D      string `xml:"d,attr"`
	Fill   string `xml:"fill,attr,omitempty"`
	Stroke string `xml:"stroke,attr,omitempty"`
}

type Text struct {
	X          string `xml:"x,attr"`
	Y          string `xml:"y,attr"`
	TextAnchor string `xml:"text-anchor,attr"`
	FontSize   string `xml:"font-size,attr"`
	FontFamily string `xml:"font-family,attr"`
	FontWeight string `xml:"font-weight,attr,omitempty"`
	Fill       string `xml:"fill,attr"`
	Opacity    string `xml:"opacity,attr,omitempty"`
	Value      string `xml:",chardata"`
}

// Build converts an assembly into the vector document. Fill layers (water,
// parks) render as filled paths with no stroke; road layers as stroked paths
// with no fill; labels as centered text elements.
func Build(a *layers.Assembly, size geo.PhysicalSize, c geo.CanvasSpec) *Document {
	doc := &Document{
		Xmlns:   "http://www.w3.org/2000/svg",
		Width:   formatNumber(size.Width) + "in",
		Height:  formatNumber(size.Height) + "in",
		ViewBox: fmt.Sprintf("0 0 %s %s", formatNumber(c.Width), formatNumber(c.Height)),
	}

	for _, layer := range a.Layers {
		group := Group{ID: layer.ID()}
		switch layer.Category {
		case layers.CategoryWater, layers.CategoryParks:
			for _, idx := range layer.Elements {
				el := a.Elements[idx]
				group.Paths = append(group.Paths, Path{D: el.D, Fill: el.Color, Stroke: "none"})
			}
		case layers.CategoryRoad:
			group.Stroke = layer.Color
			group.Fill = "none"
			group.StrokeWidth = "1"
			for _, idx := range layer.Elements {
				group.Paths = append(group.Paths, Path{D: a.Elements[idx].D})
			}
		case layers.CategoryLabel:
			for _, idx := range layer.Elements {
				el := a.Elements[idx]
				if el.Label == nil {
					continue
				}
				group.Texts = append(group.Texts, textElement(el, c))
			}
		}
		doc.Groups = append(doc.Groups, group)
	}

	return doc
}

func textElement(el layers.PathElement, c geo.CanvasSpec) Text {
	label := el.Label
	text := Text{
		X:          formatNumber(c.Width / 2),
		Y:          formatNumber(c.Height * label.YFrac),
		TextAnchor: "middle",
		FontSize:   formatNumber(c.Height * label.FontFrac),
		FontFamily: "sans-serif",
		Fill:       el.Color,
		Value:      label.Text,
	}
	if label.Bold {
		text.FontWeight = "bold"
	}
	if label.Opacity > 0 {
		text.Opacity = formatNumber(label.Opacity)
	}
	return text
}

// Marshal serializes the document with an XML declaration.
func (d *Document) Marshal() ([]byte, error) {
	body, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Parse reads a document back; used to verify round trips.
func Parse(data []byte) (*Document, error) {
	var doc Document
	err := xml.Unmarshal(data, &doc)
	return &doc, err
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
