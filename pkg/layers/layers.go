// Package layers assembles generated paths into the ordered, color-coded
// layer structure shared by both output documents.
package layers

import (
	"fmt"

	"maplaser/pkg/roads"
)

type Category int

const (
	CategoryWater Category = iota
	CategoryParks
	CategoryRoad
	CategoryLabel
)

func (c Category) String() string {
	switch c {
	case CategoryWater:
		return "water"
	case CategoryParks:
		return "parks"
	case CategoryRoad:
		return "roads"
	default:
		return "labels"
	}
}

// Label carries the literal text content and relative placement of a label
// element. Labels are not converted to path geometry; they are positioned by
// fixed height fractions and rendered as text by the vector document.
type Label struct {
	Text     string
	YFrac    float64
	FontFrac float64
	Bold     bool
	Opacity  float64 // 0 means fully opaque
}

// PathElement is one generated path. Index is the final z-order position in
// the flattened emission order; later elements draw on top.
type PathElement struct {
	D        string
	Category Category
	Tier     roads.Tier // meaningful only for CategoryRoad
	Color    string
	Index    int
	Label    *Label // set only for CategoryLabel
}

// Layer is a named, ordered group of element indices into the flattened
// element list.
type Layer struct {
	Name     string
	Category Category
	Tier     roads.Tier
	Color    string
	Elements []int
}

// ID returns the layer's stable identifier used for vector document groups.
func (l Layer) ID() string {
	if l.Category == CategoryRoad {
		return fmt.Sprintf("roads-%s", l.Tier)
	}
	return l.Category.String()
}

// Assembly is the shared intermediate both output builders consume: layers
// in the fixed emission order and elements carrying their final z-index.
type Assembly struct {
	Layers   []Layer
	Elements []PathElement
}

// add appends a layer and its elements, assigning z-order indices. Layers
// with no elements are dropped.
func (a *Assembly) add(layer Layer, elements []PathElement) {
	if len(elements) == 0 {
		return
	}
	for _, el := range elements {
		el.Index = len(a.Elements)
		layer.Elements = append(layer.Elements, el.Index)
		a.Elements = append(a.Elements, el)
	}
	a.Layers = append(a.Layers, layer)
}
