// Package xcs builds the machine project document: the same layer structure
// as the vector output, with every element bound to the power/speed/density
// settings of the active material profile. Power settings on a physical
// laser are a safety concern, so a profile that lacks settings for a
// category present in the data is a hard error, never a silent default.
package xcs

import (
	"encoding/json"
	"fmt"
	"time"

	"maplaser/pkg/geo"
	"maplaser/pkg/layers"
	"maplaser/pkg/mapdata"
	"maplaser/pkg/profile"

	"github.com/google/uuid"
)

// Processing modes. Road tiers are scored as vector lines, water and parks
// raster-filled, labels engraved solid. This mapping is fixed.
const (
	ModeVectorEngraving     = "VECTOR_ENGRAVING"
	ModeFillVectorEngraving = "FILL_VECTOR_ENGRAVING"
	ModeBitmapEngraving     = "BITMAP_ENGRAVING"
)

type Project struct {
	Version   string    `json:"version"`
	Created   string    `json:"created"`
	Generator string    `json:"generator"`
	Machine   string    `json:"machine"`
	Material  Material  `json:"material"`
	Canvas    Canvas    `json:"canvas"`
	Layers    []Layer   `json:"layers"`
	Elements  []Element `json:"elements"`
	Metadata  Metadata  `json:"metadata"`
}

type Material struct {
	Name      string `json:"name"`
	Thickness int    `json:"thickness"`
}

type Canvas struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// Layer references its elements by id; geometry lives only in Elements.
type Layer struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Visible  bool     `json:"visible"`
	Locked   bool     `json:"locked"`
	Elements []string `json:"elements"`
}

type Element struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	ZIndex     int        `json:"zIndex"`
	Visible    bool       `json:"visible"`
	Locked     bool       `json:"locked"`
	Data       Data       `json:"data"`
	Processing Processing `json:"processing"`
}

type Data struct {
	Path        string `json:"path"`
	Stroke      string `json:"stroke"`
	StrokeWidth int    `json:"strokeWidth"`
	Fill        string `json:"fill"`
}

type Processing struct {
	Mode    string `json:"mode"`
	Power   int    `json:"power"`
	Speed   int    `json:"speed"`
	Density *int   `json:"density,omitempty"`
}

type Metadata struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Build assembles the machine project. Element ids are freshly generated
// uuids, unique within the job, used for the layer's forward references.
func Build(a *layers.Assembly, size geo.PhysicalSize, prof *profile.Profile, m *mapdata.MapData) (*Project, error) {
	project := &Project{
		Version:   "1.0",
		Created:   time.Now().Format(time.RFC3339),
		Generator: "maplaser",
		Machine:   prof.Machine,
		Material:  Material{Name: prof.MaterialName, Thickness: prof.MaterialThickness},
		Canvas: Canvas{
			Width:  size.Width * geo.MMPerInch,
			Height: size.Height * geo.MMPerInch,
			Unit:   "mm",
		},
		Metadata: Metadata{
			City:    m.City,
			Country: m.Country,
			Coordinates: Coordinates{
				Latitude:  m.Lat,
				Longitude: m.Lon,
			},
		},
	}

	for _, layer := range a.Layers {
		out := Layer{
			ID:      uuid.NewString(),
			Name:    layer.Name,
			Color:   layer.Color,
			Visible: true,
		}
		for _, idx := range layer.Elements {
			el, err := buildElement(a.Elements[idx], prof)
			if err != nil {
				return nil, err
			}
			out.Elements = append(out.Elements, el.ID)
			project.Elements = append(project.Elements, el)
		}
		project.Layers = append(project.Layers, out)
	}

	return project, nil
}

func buildElement(el layers.PathElement, prof *profile.Profile) (Element, error) {
	var mode, elemType string
	var op profile.Operation
	var ok bool

	switch el.Category {
	case layers.CategoryRoad:
		mode = ModeVectorEngraving
		elemType = "path"
		op, ok = prof.Score[el.Tier.String()]
		if !ok {
			return Element{}, fmt.Errorf("laser profile has no score settings for %q", el.Tier.String())
		}
	case layers.CategoryWater, layers.CategoryParks:
		mode = ModeFillVectorEngraving
		elemType = "path"
		op, ok = prof.Fill[el.Category.String()]
		if !ok {
			return Element{}, fmt.Errorf("laser profile has no fill settings for %q", el.Category.String())
		}
	case layers.CategoryLabel:
		mode = ModeBitmapEngraving
		elemType = "text"
		op, ok = prof.Solid["text"]
		if !ok {
			return Element{}, fmt.Errorf("laser profile has no solid engrave settings for \"text\"")
		}
	default:
		return Element{}, fmt.Errorf("unknown element category %d", el.Category)
	}

	fill := "none"
	if mode != ModeVectorEngraving {
		fill = el.Color
	}

	return Element{
		ID:      uuid.NewString(),
		Type:    elemType,
		ZIndex:  el.Index,
		Visible: true,
		Data: Data{
			Path:        el.D,
			Stroke:      el.Color,
			StrokeWidth: 1,
			Fill:        fill,
		},
		Processing: Processing{
			Mode:    mode,
			Power:   op.Power,
			Speed:   op.Speed,
			Density: op.Density,
		},
	}, nil
}

// Marshal serializes the project as indented JSON.
func (p *Project) Marshal() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// Parse reads a project back; used to verify round trips.
func Parse(data []byte) (*Project, error) {
	var project Project
	err := json.Unmarshal(data, &project)
	return &project, err
}
