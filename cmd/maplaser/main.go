package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"maplaser/pkg/geo"
	"maplaser/pkg/layers"
	"maplaser/pkg/mapdata"
	"maplaser/pkg/profile"
	"maplaser/pkg/svgout"
	"maplaser/pkg/theme"
	"maplaser/pkg/xcs"
)

func main() {
	input := flag.String("input", "", "map data GeoJSON file (required)")
	sizeStr := flag.String("size", "12x18", "physical output size in inches, WxH")
	themePath := flag.String("theme", "", "theme YAML file (optional, defaults apply)")
	profileName := flag.String("profile", "", "laser profile name; when set, an .xcs project is also written")
	profilesDir := flag.String("profiles-dir", "laser_profiles", "directory containing laser profile YAML files")
	city := flag.String("city", "", "city name for the label layer")
	country := flag.String("country", "", "country name for the label layer")
	lat := flag.Float64("lat", 0, "map center latitude")
	lon := flag.Float64("lon", 0, "map center longitude")
	out := flag.String("out", "map", "output basename (.svg/.xcs appended)")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	size, err := geo.ParsePhysicalSize(*sizeStr)
	if err != nil {
		log.Fatalf("%s (supported sizes: %s)", err, strings.Join(geo.SupportedSizes, ", "))
	}

	opts := theme.Defaults()
	if *themePath != "" {
		opts, err = theme.Load(*themePath)
		if err != nil {
			log.Fatalf("theme error: %s", err)
		}
	}

	m, err := mapdata.Load(*input)
	if err != nil {
		log.Fatalf("map data error: %s", err)
	}
	m.City = *city
	m.Country = *country
	m.Lat = *lat
	m.Lon = *lon

	bounds, err := m.Bounds()
	if err != nil {
		log.Fatalf("map data error: %s", err)
	}
	canvas := geo.Canvas(size)

	assembly := layers.Assemble(m, opts, bounds, canvas)

	svgPath := *out + ".svg"
	doc := svgout.Build(assembly, size, canvas)
	data, err := doc.Marshal()
	if err != nil {
		log.Fatalf("svg marshal error: %s", err)
	}
	if err := writeFileAtomic(svgPath, data); err != nil {
		log.Fatalf("svg write error: %s", err)
	}
	fmt.Printf("SVG saved: %s\n", svgPath)
	fmt.Printf("  Size: %g\" x %g\"\n", size.Width, size.Height)
	fmt.Printf("  Layers: %d\n", len(assembly.Layers))

	if *profileName == "" {
		return
	}

	prof, err := profile.Load(*profilesDir, *profileName)
	if err != nil {
		log.Fatalf("profile error: %s", err)
	}
	project, err := xcs.Build(assembly, size, prof, m)
	if err != nil {
		log.Fatalf("xcs build error: %s", err)
	}
	data, err = project.Marshal()
	if err != nil {
		log.Fatalf("xcs marshal error: %s", err)
	}
	xcsPath := *out + ".xcs"
	if err := writeFileAtomic(xcsPath, data); err != nil {
		log.Fatalf("xcs write error: %s", err)
	}
	fmt.Printf("XCS saved: %s\n", xcsPath)
	fmt.Printf("  Machine: %s\n", prof.Machine)
	fmt.Printf("  Material: %s\n", prof.MaterialName)
	fmt.Printf("  Layers: %d\n", len(project.Layers))
	fmt.Printf("  Elements: %d\n", len(project.Elements))
}

// writeFileAtomic writes to a temp file in the target directory and renames
// it into place, so a crash mid-write never leaves a half-written output.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
