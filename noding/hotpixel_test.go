package noding

import (
	"testing"

	geom "github.com/twpayne/go-geom"
)

func TestHotPixelIntersects(t *testing.T) {
	px := hotPixel{pt: geom.Coord{2, 0}, half: 0.5}
	tests := []struct {
		name   string
		p0, p1 geom.Coord
		want   bool
	}{
		{"through center", geom.Coord{0, 0}, geom.Coord{5, 0}, true},
		{"vertical through", geom.Coord{2, -3}, geom.Coord{2, 5}, true},
		{"clips corner", geom.Coord{1.4, 0}, geom.Coord{2, 0.6}, true},
		{"endpoint inside", geom.Coord{2.2, 0.2}, geom.Coord{9, 9}, true},
		{"misses above", geom.Coord{0, 1}, geom.Coord{5, 1}, false},
		{"misses diagonally", geom.Coord{3, 1}, geom.Coord{5, -1}, false},
		{"far away", geom.Coord{10, 10}, geom.Coord{11, 10}, false},
		// The bottom and left sides belong to the pixel; the top and
		// right sides do not.
		{"along bottom side", geom.Coord{0, -0.5}, geom.Coord{5, -0.5}, true},
		{"along left side", geom.Coord{1.5, -3}, geom.Coord{1.5, 3}, true},
		{"along top side", geom.Coord{0, 0.5}, geom.Coord{5, 0.5}, false},
		{"along right side", geom.Coord{2.5, -3}, geom.Coord{2.5, 3}, false},
		{"grazes upper-left corner upward", geom.Coord{1, 0}, geom.Coord{2, 1}, false},
		{"through upper-left corner downward", geom.Coord{1, 1}, geom.Coord{2, 0}, true},
	}
	for _, tc := range tests {
		if got := px.intersects(tc.p0, tc.p1); got != tc.want {
			t.Errorf("%s: intersects(%v, %v) = %v, want %v", tc.name, tc.p0, tc.p1, got, tc.want)
		}
	}
}

func TestSegmentIntersection(t *testing.T) {
	pt, ok := SegmentIntersection(
		geom.Coord{0, 0}, geom.Coord{5, 0},
		geom.Coord{2, -3}, geom.Coord{2, 5},
	)
	if !ok {
		t.Fatal("expected an intersection")
	}
	if pt[0] != 2 || pt[1] != 0 {
		t.Errorf("intersection = %v, want (2,0)", pt)
	}

	if _, ok := SegmentIntersection(
		geom.Coord{0, 0}, geom.Coord{5, 0},
		geom.Coord{0, 1}, geom.Coord{5, 1},
	); ok {
		t.Error("parallel segments must not intersect")
	}

	if _, ok := SegmentIntersection(
		geom.Coord{0, 0}, geom.Coord{1, 0},
		geom.Coord{2, -1}, geom.Coord{2, 1},
	); ok {
		t.Error("disjoint segments must not intersect")
	}
}

func TestSegmentsIntersectTouching(t *testing.T) {
	// Endpoint touch counts.
	if !SegmentsIntersect(
		geom.Coord{0, 0}, geom.Coord{2, 2},
		geom.Coord{2, 2}, geom.Coord{4, 0},
	) {
		t.Error("touching endpoints must intersect")
	}
	// Collinear overlap counts.
	if !SegmentsIntersect(
		geom.Coord{0, 0}, geom.Coord{4, 0},
		geom.Coord{2, 0}, geom.Coord{6, 0},
	) {
		t.Error("collinear overlap must intersect")
	}
	if SegmentsIntersect(
		geom.Coord{0, 0}, geom.Coord{1, 1},
		geom.Coord{3, 0}, geom.Coord{4, 1},
	) {
		t.Error("disjoint segments must not intersect")
	}
}
