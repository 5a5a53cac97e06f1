package profile_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"maplaser/pkg/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfile = `
machine: xtool-d1-pro-10w
material:
  name: basswood
  thickness: 3
operations:
  score:
    roads_motorway: {power: 60, speed: 100}
    roads_primary: {power: 55, speed: 110}
    roads_secondary: {power: 50, speed: 120}
    roads_tertiary: {power: 45, speed: 130}
    roads_residential: {power: 40, speed: 140}
  engrave_fill:
    water: {power: 35, speed: 200, density: 80}
    parks: {power: 30, speed: 220, density: 60}
  engrave_solid:
    text: {power: 50, speed: 150}
`

func TestParseValid(t *testing.T) {
	prof, err := profile.Parse([]byte(validProfile))
	require.NoError(t, err)

	assert.Equal(t, "xtool-d1-pro-10w", prof.Machine)
	assert.Equal(t, "basswood", prof.MaterialName)
	assert.Equal(t, 3, prof.MaterialThickness)

	motorway := prof.Score["motorway"]
	assert.Equal(t, 60, motorway.Power)
	assert.Equal(t, 100, motorway.Speed)
	assert.Nil(t, motorway.Density)

	water := prof.Fill["water"]
	assert.Equal(t, 35, water.Power)
	require.NotNil(t, water.Density)
	assert.Equal(t, 80, *water.Density)

	text := prof.Solid["text"]
	assert.Equal(t, 50, text.Power)
	assert.Equal(t, 150, text.Speed)
}

func TestParseMissingSections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{
			name:    "missing machine",
			content: "material: {name: ply, thickness: 3}\noperations: {}\n",
			wantIn:  "machine",
		},
		{
			name:    "missing material",
			content: "machine: d1\noperations: {}\n",
			wantIn:  "material",
		},
		{
			name:    "missing operations",
			content: "machine: d1\nmaterial: {name: ply, thickness: 3}\n",
			wantIn:  "operations",
		},
		{
			name:    "missing score section",
			content: "machine: d1\nmaterial: {name: ply, thickness: 3}\noperations:\n  engrave_fill: {}\n",
			wantIn:  "score",
		},
		{
			name: "missing score road",
			content: `
machine: d1
material: {name: ply, thickness: 3}
operations:
  score:
    roads_motorway: {power: 60, speed: 100}
`,
			wantIn: "roads_primary",
		},
		{
			name: "missing fill category",
			content: `
machine: d1
material: {name: ply, thickness: 3}
operations:
  score:
    roads_motorway: {power: 60, speed: 100}
    roads_primary: {power: 55, speed: 110}
    roads_secondary: {power: 50, speed: 120}
    roads_tertiary: {power: 45, speed: 130}
    roads_residential: {power: 40, speed: 140}
  engrave_fill:
    water: {power: 35, speed: 200, density: 80}
`,
			wantIn: "parks",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := profile.Parse([]byte(test.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.wantIn)
		})
	}
}

func TestParseRangeChecks(t *testing.T) {
	base := `
machine: d1
material: {name: ply, thickness: 3}
operations:
  score:
    roads_motorway: {power: %d, speed: %d}
    roads_primary: {power: 55, speed: 110}
    roads_secondary: {power: 50, speed: 120}
    roads_tertiary: {power: 45, speed: 130}
    roads_residential: {power: 40, speed: 140}
  engrave_fill:
    water: {power: 35, speed: 200, density: 80}
    parks: {power: 30, speed: 220, density: 60}
  engrave_solid:
    text: {power: 50, speed: 150}
`
	_, err := profile.Parse([]byte(fmt.Sprintf(base, 0, 100)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "power must be 1-100")

	_, err = profile.Parse([]byte(fmt.Sprintf(base, 101, 100)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "power must be 1-100")

	_, err = profile.Parse([]byte(fmt.Sprintf(base, 60, 500)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "speed must be 1-400")

	_, err = profile.Parse([]byte(fmt.Sprintf(base, 60, 100)))
	require.NoError(t, err)
}

func TestParseDensityRequired(t *testing.T) {
	content := `
machine: d1
material: {name: ply, thickness: 3}
operations:
  score:
    roads_motorway: {power: 60, speed: 100}
    roads_primary: {power: 55, speed: 110}
    roads_secondary: {power: 50, speed: 120}
    roads_tertiary: {power: 45, speed: 130}
    roads_residential: {power: 40, speed: 140}
  engrave_fill:
    water: {power: 35, speed: 200}
    parks: {power: 30, speed: 220, density: 60}
  engrave_solid:
    text: {power: 50, speed: 150}
`
	_, err := profile.Parse([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "density")
	assert.Contains(t, err.Error(), "water")
}

func TestLoadAndList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "basswood-3mm.yaml"), []byte(validProfile), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "acrylic-3mm.yml"), []byte(validProfile), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a profile"), 0644))

	assert.Equal(t, []string{"acrylic-3mm", "basswood-3mm"}, profile.List(dir))

	prof, err := profile.Load(dir, "basswood-3mm")
	require.NoError(t, err)
	assert.Equal(t, "xtool-d1-pro-10w", prof.Machine)

	// .yml extension also resolves
	_, err = profile.Load(dir, "acrylic-3mm")
	require.NoError(t, err)

	_, err = profile.Load(dir, "walnut-5mm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "basswood-3mm", "not-found error should list available profiles")

	_, err = profile.Load(t.TempDir(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profiles available")
}
