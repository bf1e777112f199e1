// Copyright 2024 The planar Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snapround

import (
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/planar/noding"
)

// isPolygonallyValid reports whether every polygonal component of g
// satisfies the structural ring rules: closed rings of at least four
// points with nonzero area, shell counter-clockwise and holes
// clockwise, no ring self-intersection away from vertex adjacency,
// rings of one polygon meeting at most in isolated shared vertices,
// holes inside their shell. Non-polygonal components are always valid
// here; noding has already resolved their crossings into shared
// vertices.
func isPolygonallyValid(g geom.T) bool {
	switch t := g.(type) {
	case *geom.Polygon:
		return validPolygon(t)
	case *geom.MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			if !validPolygon(t.Polygon(i)) {
				return false
			}
		}
	case *geom.GeometryCollection:
		for _, c := range t.Geoms() {
			if !isPolygonallyValid(c) {
				return false
			}
		}
	}
	return true
}

func validPolygon(p *geom.Polygon) bool {
	n := p.NumLinearRings()
	if n == 0 {
		return true // empty
	}
	rings := make([][]geom.Coord, n)
	for i := 0; i < n; i++ {
		r := p.LinearRing(i).Coords()
		if !ringWellFormed(r) {
			return false
		}
		area := signedArea(r)
		if area == 0 {
			return false
		}
		if i == 0 && area < 0 || i > 0 && area > 0 {
			return false
		}
		if ringSelfIntersects(r) {
			return false
		}
		rings[i] = r
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if ringsIntersect(rings[i], rings[j]) {
				return false
			}
		}
	}
	// With no improper ring intersections, one vertex off the shell
	// boundary decides containment of the whole hole.
	for i := 1; i < n; i++ {
		if !holeInShell(rings[i], rings[0]) {
			return false
		}
	}
	return true
}

func ringWellFormed(r []geom.Coord) bool {
	if len(r) < 4 {
		return false
	}
	first, last := r[0], r[len(r)-1]
	return first[0] == last[0] && first[1] == last[1]
}

// ringSelfIntersects brute-forces all non-adjacent segment pairs of a
// closed ring. Valid output polygons are small enough after noding
// that the quadratic check is the simplest reliable gate.
func ringSelfIntersects(r []geom.Coord) bool {
	ns := len(r) - 1
	for i := 0; i < ns; i++ {
		for j := i + 1; j < ns; j++ {
			if j == i+1 || (i == 0 && j == ns-1) {
				continue
			}
			if noding.SegmentsIntersect(r[i], r[i+1], r[j], r[j+1]) {
				return true
			}
		}
	}
	return false
}

// ringsIntersect reports whether two rings interact beyond isolated
// touches at shared vertices. After noding every touch point between a
// hole and its shell is a vertex of both rings, so a shared-vertex
// touch is the one contact a valid polygon may keep.
func ringsIntersect(a, b []geom.Coord) bool {
	for i := 0; i < len(a)-1; i++ {
		for j := 0; j < len(b)-1; j++ {
			if !noding.SegmentsIntersect(a[i], a[i+1], b[j], b[j+1]) {
				continue
			}
			if !touchAtSharedVertexOnly(a[i], a[i+1], b[j], b[j+1]) {
				return true
			}
		}
	}
	return false
}

// touchAtSharedVertexOnly reports whether two intersecting segments
// meet in exactly one point which is an endpoint of both. Collinear
// segments extending past the shared endpoint overlap and do not
// qualify.
func touchAtSharedVertexOnly(a0, a1, b0, b1 geom.Coord) bool {
	var p, aOther, bOther geom.Coord
	switch {
	case coordsEqual(a0, b0):
		p, aOther, bOther = a0, a1, b1
	case coordsEqual(a0, b1):
		p, aOther, bOther = a0, a1, b0
	case coordsEqual(a1, b0):
		p, aOther, bOther = a1, a0, b1
	case coordsEqual(a1, b1):
		p, aOther, bOther = a1, a0, b0
	default:
		return false
	}
	cross := (aOther[0]-p[0])*(bOther[1]-p[1]) - (aOther[1]-p[1])*(bOther[0]-p[0])
	if cross != 0 {
		return true
	}
	// Collinear: an overlap exists exactly when both segments leave the
	// shared endpoint in the same direction.
	dot := (aOther[0]-p[0])*(bOther[0]-p[0]) + (aOther[1]-p[1])*(bOther[1]-p[1])
	return dot < 0
}

func coordsEqual(a, b geom.Coord) bool {
	return a[0] == b[0] && a[1] == b[1]
}

// holeInShell reports whether a hole ring lies inside its shell. The
// hole may touch the shell boundary, so containment is decided by the
// first hole vertex strictly off the boundary. A hole whose every
// vertex sits on the boundary bounds no interior and does not qualify.
func holeInShell(hole, shell []geom.Coord) bool {
	for _, p := range hole[:len(hole)-1] {
		if pointOnRing(p, shell) {
			continue
		}
		return pointInRing(p, shell)
	}
	return false
}

// pointOnRing reports whether p lies on an edge of the closed ring r.
func pointOnRing(p geom.Coord, r []geom.Coord) bool {
	for i := 0; i < len(r)-1; i++ {
		a, b := r[i], r[i+1]
		cross := (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
		if cross != 0 {
			continue
		}
		if min(a[0], b[0]) <= p[0] && p[0] <= max(a[0], b[0]) &&
			min(a[1], b[1]) <= p[1] && p[1] <= max(a[1], b[1]) {
			return true
		}
	}
	return false
}

// signedArea is the shoelace sum of a closed ring: positive for
// counter-clockwise orientation.
func signedArea(r []geom.Coord) float64 {
	var sum float64
	for i := 0; i < len(r)-1; i++ {
		sum += r[i][0]*r[i+1][1] - r[i+1][0]*r[i][1]
	}
	return sum / 2
}

// pointInRing is a standard ray cast across the edges of a closed
// ring. Boundary points count as outside.
func pointInRing(p geom.Coord, r []geom.Coord) bool {
	in := false
	for i := 0; i < len(r)-1; i++ {
		a, b := r[i], r[i+1]
		if (a[1] > p[1]) != (b[1] > p[1]) {
			x := a[0] + (p[1]-a[1])/(b[1]-a[1])*(b[0]-a[0])
			if p[0] < x {
				in = !in
			}
		}
	}
	return in
}

func reverseRing(r []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, len(r))
	for i, c := range r {
		out[len(r)-1-i] = c
	}
	return out
}
