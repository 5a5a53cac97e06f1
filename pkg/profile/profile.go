// Package profile loads and validates laser material profiles: the
// power/speed/density settings for one machine and material combination.
// Validation is strict because a wrong power value damages material or
// worse; the rest of the pipeline trusts a loaded Profile.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operation is the setting for a single laser pass. Density is only set for
// raster fill operations.
type Operation struct {
	Power   int
	Speed   int
	Density *int
}

// Profile is a validated laser profile. Score is keyed by road tier name,
// Fill by area category ("water", "parks"), Solid by label category ("text").
type Profile struct {
	Machine           string
	MaterialName      string
	MaterialThickness int

	Score map[string]Operation
	Fill  map[string]Operation
	Solid map[string]Operation
}

type rawOperation struct {
	Power   *int `yaml:"power"`
	Speed   *int `yaml:"speed"`
	Density *int `yaml:"density"`
}

type rawProfile struct {
	Machine  *string `yaml:"machine"`
	Material *struct {
		Name      *string `yaml:"name"`
		Thickness *int    `yaml:"thickness"`
	} `yaml:"material"`
	Operations *struct {
		Score        map[string]rawOperation `yaml:"score"`
		EngraveFill  map[string]rawOperation `yaml:"engrave_fill"`
		EngraveSolid map[string]rawOperation `yaml:"engrave_solid"`
	} `yaml:"operations"`
}

// scoreKeys are the required operations.score entries; the "roads_" prefix
// is stripped for the Profile.Score map keys.
var scoreKeys = []string{
	"roads_motorway",
	"roads_primary",
	"roads_secondary",
	"roads_tertiary",
	"roads_residential",
}

var fillKeys = []string{"water", "parks"}

// List returns the names of the profiles available in dir, sorted, without
// their .yaml/.yml extension.
func List(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, strings.TrimSuffix(name, ext))
		}
	}
	sort.Strings(names)
	return names
}

// Load reads and validates the named profile from dir, trying .yaml then
// .yml. A not-found error lists the profiles that are available.
func Load(dir, name string) (*Profile, error) {
	var path string
	for _, ext := range []string{".yaml", ".yml"} {
		candidate := filepath.Join(dir, name+ext)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		available := List(dir)
		if len(available) > 0 {
			return nil, fmt.Errorf("laser profile %q not found, available profiles: %s",
				name, strings.Join(available, ", "))
		}
		return nil, fmt.Errorf("laser profile %q not found, no profiles available in %q", name, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	prof, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return prof, nil
}

// Parse validates profile YAML and returns the Profile.
func Parse(data []byte) (*Profile, error) {
	var raw rawProfile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}

	if raw.Machine == nil || *raw.Machine == "" {
		return nil, fmt.Errorf("profile missing required 'machine' key")
	}
	if raw.Material == nil {
		return nil, fmt.Errorf("profile missing required 'material' key")
	}
	if raw.Material.Name == nil || *raw.Material.Name == "" {
		return nil, fmt.Errorf("material missing required 'name' key")
	}
	if raw.Material.Thickness == nil {
		return nil, fmt.Errorf("material missing required 'thickness' key")
	}
	if raw.Operations == nil {
		return nil, fmt.Errorf("profile missing required 'operations' key")
	}

	prof := &Profile{
		Machine:           *raw.Machine,
		MaterialName:      *raw.Material.Name,
		MaterialThickness: *raw.Material.Thickness,
		Score:             map[string]Operation{},
		Fill:              map[string]Operation{},
		Solid:             map[string]Operation{},
	}

	if raw.Operations.Score == nil {
		return nil, fmt.Errorf("operations missing required 'score' section")
	}
	for _, key := range scoreKeys {
		rawOp, ok := raw.Operations.Score[key]
		if !ok {
			return nil, fmt.Errorf("operations.score missing required %q", key)
		}
		op, err := validateOperation(rawOp, "score."+key, false)
		if err != nil {
			return nil, err
		}
		prof.Score[strings.TrimPrefix(key, "roads_")] = op
	}

	if raw.Operations.EngraveFill == nil {
		return nil, fmt.Errorf("operations missing required 'engrave_fill' section")
	}
	for _, key := range fillKeys {
		rawOp, ok := raw.Operations.EngraveFill[key]
		if !ok {
			return nil, fmt.Errorf("operations.engrave_fill missing required %q", key)
		}
		op, err := validateOperation(rawOp, "engrave_fill."+key, true)
		if err != nil {
			return nil, err
		}
		prof.Fill[key] = op
	}

	if raw.Operations.EngraveSolid == nil {
		return nil, fmt.Errorf("operations missing required 'engrave_solid' section")
	}
	rawOp, ok := raw.Operations.EngraveSolid["text"]
	if !ok {
		return nil, fmt.Errorf("operations.engrave_solid missing required \"text\"")
	}
	op, err := validateOperation(rawOp, "engrave_solid.text", false)
	if err != nil {
		return nil, err
	}
	prof.Solid["text"] = op

	return prof, nil
}

func validateOperation(raw rawOperation, name string, requireDensity bool) (Operation, error) {
	if raw.Power == nil {
		return Operation{}, fmt.Errorf("operation %q missing required 'power' key", name)
	}
	if *raw.Power < 1 || *raw.Power > 100 {
		return Operation{}, fmt.Errorf("operation %q power must be 1-100, got %d", name, *raw.Power)
	}
	if raw.Speed == nil {
		return Operation{}, fmt.Errorf("operation %q missing required 'speed' key", name)
	}
	if *raw.Speed < 1 || *raw.Speed > 400 {
		return Operation{}, fmt.Errorf("operation %q speed must be 1-400, got %d", name, *raw.Speed)
	}
	if requireDensity && raw.Density == nil {
		return Operation{}, fmt.Errorf("operation %q missing required 'density' key for fill operation", name)
	}
	if raw.Density != nil && (*raw.Density < 1 || *raw.Density > 100) {
		return Operation{}, fmt.Errorf("operation %q density must be 1-100, got %d", name, *raw.Density)
	}
	return Operation{Power: *raw.Power, Speed: *raw.Speed, Density: raw.Density}, nil
}
