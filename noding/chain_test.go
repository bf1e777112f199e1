package noding

import (
	"testing"

	"github.com/dhconnelly/rtreego"
	geom "github.com/twpayne/go-geom"
)

func TestChainSpans(t *testing.T) {
	// Rises, then falls: two monotone runs.
	pts := []geom.Coord{{0, 0}, {1, 1}, {2, 2}, {3, 1}, {4, 0}}
	spans := chainSpans(pts)
	want := [][2]int{{0, 2}, {2, 4}}
	if len(spans) != len(want) {
		t.Fatalf("chainSpans = %v, want %v", spans, want)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d = %v, want %v", i, spans[i], want[i])
		}
	}
}

func TestChainSpansSingleSegment(t *testing.T) {
	spans := chainSpans([]geom.Coord{{0, 0}, {5, 5}})
	if len(spans) != 1 || spans[0] != [2]int{0, 1} {
		t.Errorf("chainSpans = %v, want [[0 1]]", spans)
	}
}

func TestBaseEnvelope2D(t *testing.T) {
	xs := []float64{3, -1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	ys := []float64{2, 7, 1, 8, 2, 8, 1, 8, 2, 8, -4}
	minX, minY, maxX, maxY := BaseEnvelope2D(xs, ys)
	if minX != -1 || minY != -4 || maxX != 9 || maxY != 8 {
		t.Errorf("BaseEnvelope2D = (%v,%v,%v,%v), want (-1,-4,9,8)", minX, minY, maxX, maxY)
	}
}

func TestBaseEnvelope2DMatchesScalar(t *testing.T) {
	xs := make([]float64, 103) // awkward length to exercise the tail path
	ys := make([]float64, 103)
	for i := range xs {
		xs[i] = float64((i*31)%17) - 8
		ys[i] = float64((i*13)%23) - 11
	}
	wantMinX, wantMaxX := xs[0], xs[0]
	wantMinY, wantMaxY := ys[0], ys[0]
	for i := range xs {
		wantMinX = min(wantMinX, xs[i])
		wantMaxX = max(wantMaxX, xs[i])
		wantMinY = min(wantMinY, ys[i])
		wantMaxY = max(wantMaxY, ys[i])
	}
	minX, minY, maxX, maxY := BaseEnvelope2D(xs, ys)
	if minX != wantMinX || minY != wantMinY || maxX != wantMaxX || maxY != wantMaxY {
		t.Errorf("BaseEnvelope2D = (%v,%v,%v,%v), want (%v,%v,%v,%v)",
			minX, minY, maxX, maxY, wantMinX, wantMinY, wantMaxX, wantMaxY)
	}
}

func TestBuildChainIndexDegenerateStrings(t *testing.T) {
	strs := []*NodedString{
		NewNodedString(0, []geom.Coord{{1, 1}}),         // no segments
		NewNodedString(1, []geom.Coord{{0, 0}, {0, 5}}), // zero-width envelope
		NewNodedString(2, []geom.Coord{{0, 0}, {5, 0}}), // zero-height envelope
	}
	idx := buildChainIndex(strs, 0.5)
	if len(idx.chains) != 2 {
		t.Fatalf("got %d chains, want 2", len(idx.chains))
	}
}

func TestChainIndexSearch(t *testing.T) {
	strs := []*NodedString{
		NewNodedString(0, []geom.Coord{{0, 0}, {10, 0}}),
		NewNodedString(1, []geom.Coord{{0, 5}, {10, 5}}),
	}
	idx := buildChainIndex(strs, 0.5)

	found := idx.search(rtreego.Point{5, 0}.ToRect(0.5))
	if len(found) != 1 || found[0].str != strs[0] {
		t.Fatalf("search returned %d chains, want only the chain of the first string", len(found))
	}
}
