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

package noding

import (
	"sort"

	geom "github.com/twpayne/go-geom"
)

// A NodedString is a tagged string of line segments whose vertex list
// can be augmented with nodes (intersection points) during noding.
// The tag is an opaque integer assigned by the caller; it is carried
// through noding untouched and is how noded linework is matched back to
// its source component. Vertex order is never changed and the string is
// never reversed; noding only inserts points.
type NodedString struct {
	tag   int
	pts   []geom.Coord
	nodes map[int][]geom.Coord // segment index -> nodes lying on that segment
}

// NewNodedString returns a string over pts carrying the given tag.
// The coordinate slice is retained, not copied.
func NewNodedString(tag int, pts []geom.Coord) *NodedString {
	return &NodedString{tag: tag, pts: pts}
}

// Tag returns the opaque tag the string was created with.
func (s *NodedString) Tag() int { return s.tag }

// NumCoords returns the number of original vertices, excluding nodes.
func (s *NodedString) NumCoords() int { return len(s.pts) }

// Coord returns the i-th original vertex.
func (s *NodedString) Coord(i int) geom.Coord { return s.pts[i] }

// Coords returns the original vertex sequence, excluding nodes.
func (s *NodedString) Coords() []geom.Coord { return s.pts }

// NumSegments returns the number of line segments between vertices.
func (s *NodedString) NumSegments() int {
	if len(s.pts) < 2 {
		return 0
	}
	return len(s.pts) - 1
}

// AddNode records a node lying on segment i (the segment from vertex i
// to vertex i+1). Nodes equal to either endpoint of the segment are
// dropped, since that vertex is already present, as are nodes already
// recorded for the segment.
func (s *NodedString) AddNode(i int, pt geom.Coord) {
	if coordEqual(pt, s.pts[i]) || coordEqual(pt, s.pts[i+1]) {
		return
	}
	for _, n := range s.nodes[i] {
		if coordEqual(n, pt) {
			return
		}
	}
	if s.nodes == nil {
		s.nodes = make(map[int][]geom.Coord)
	}
	s.nodes[i] = append(s.nodes[i], pt)
}

// NodedCoords returns the vertex sequence with all recorded nodes
// inserted in order along each segment, consecutive duplicates
// collapsed. Strings shorter than two points are returned as-is;
// callers treat them as collapsed.
func (s *NodedString) NodedCoords() []geom.Coord {
	if len(s.pts) < 2 {
		return append([]geom.Coord(nil), s.pts...)
	}
	out := make([]geom.Coord, 0, len(s.pts)+len(s.nodes))
	for i := 0; i < len(s.pts)-1; i++ {
		out = appendCoord(out, s.pts[i])
		ns := s.nodes[i]
		if len(ns) == 0 {
			continue
		}
		ns = append([]geom.Coord(nil), ns...)
		origin := s.pts[i]
		sort.Slice(ns, func(a, b int) bool {
			return dist2(origin, ns[a]) < dist2(origin, ns[b])
		})
		for _, n := range ns {
			out = appendCoord(out, n)
		}
	}
	return appendCoord(out, s.pts[len(s.pts)-1])
}

func appendCoord(out []geom.Coord, c geom.Coord) []geom.Coord {
	if n := len(out); n > 0 && coordEqual(out[n-1], c) {
		return out
	}
	return append(out, c)
}

func coordEqual(a, b geom.Coord) bool {
	return a[0] == b[0] && a[1] == b[1]
}

func dist2(a, b geom.Coord) float64 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	return dx*dx + dy*dy
}
