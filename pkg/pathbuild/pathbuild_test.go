package pathbuild_test

import (
	"testing"

	"maplaser/pkg/geo"
	"maplaser/pkg/pathbuild"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
)

// With these bounds and canvas, scale is 95 and offset 25 on both axes:
// px = x*95 + 25, py = 975 - y*95. Keeps expected strings easy to derive.
var (
	bounds = geo.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	canvas = geo.CanvasSpec{Width: 1000, Height: 1000}
)

func TestPath(t *testing.T) {
	tests := []struct {
		name string
		geom orb.Geometry
		want string
	}{
		{
			name: "line",
			geom: orb.LineString{{0, 0}, {10, 0}, {10, 10}},
			want: "M 25.00,975.00 L 975.00,975.00 L 975.00,25.00",
		},
		{
			name: "empty line",
			geom: orb.LineString{},
			want: "",
		},
		{
			name: "ring",
			geom: orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
			want: "M 25.00,975.00 L 975.00,975.00 L 975.00,25.00 L 25.00,975.00 Z",
		},
		{
			name: "polygon uses exterior ring only",
			geom: orb.Polygon{
				{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
				{{4, 4}, {6, 4}, {6, 6}, {4, 4}}, // hole, ignored
			},
			want: "M 25.00,975.00 L 975.00,975.00 L 975.00,25.00 L 25.00,975.00 Z",
		},
		{
			name: "empty polygon",
			geom: orb.Polygon{},
			want: "",
		},
		{
			name: "multi line string",
			geom: orb.MultiLineString{
				{{0, 0}, {10, 0}},
				{},
				{{0, 10}, {10, 10}},
			},
			want: "M 25.00,975.00 L 975.00,975.00 M 25.00,25.00 L 975.00,25.00",
		},
		{
			name: "multi polygon skips empty members",
			geom: orb.MultiPolygon{
				{{{0, 0}, {10, 0}, {5, 5}, {0, 0}}},
				{},
			},
			want: "M 25.00,975.00 L 975.00,975.00 L 500.00,500.00 L 25.00,975.00 Z",
		},
		{
			name: "collection",
			geom: orb.Collection{
				orb.LineString{{0, 0}, {10, 0}},
				orb.Point{5, 5},
				orb.LineString{{0, 10}, {10, 10}},
			},
			want: "M 25.00,975.00 L 975.00,975.00 M 25.00,25.00 L 975.00,25.00",
		},
		{
			name: "unsupported kind",
			geom: orb.Point{5, 5},
			want: "",
		},
		{
			name: "unsupported bound",
			geom: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}},
			want: "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := pathbuild.Path(test.geom, bounds, canvas)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("incorrect path: %s", diff)
			}
		})
	}
}

func TestSegment(t *testing.T) {
	got := pathbuild.Segment(orb.Point{0, 0}, orb.Point{10, 10}, bounds, canvas)
	want := "M 25.00,975.00 L 975.00,25.00"
	if got != want {
		t.Errorf("Segment = %q, want %q", got, want)
	}
}
