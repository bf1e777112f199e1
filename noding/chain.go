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
	"github.com/dhconnelly/rtreego"
	geom "github.com/twpayne/go-geom"
)

// A monotoneChain is a maximal run of consecutive segments of one
// string whose direction stays within a single quadrant. Segments
// within one chain can only meet at shared vertices, so intersection
// search only has to test segments of distinct chains.
type monotoneChain struct {
	id         int
	str        *NodedString
	start, end int // vertex index range [start, end]
	rect       rtreego.Rect
}

func (c *monotoneChain) Bounds() rtreego.Rect { return c.rect }

// chainIndex is an R-tree over the monotone chains of a set of segment
// strings, expanded by pad on every side so that hot-pixel queries with
// a tolerance square hit every candidate chain.
type chainIndex struct {
	tree   *rtreego.Rtree
	chains []*monotoneChain
}

func buildChainIndex(strs []*NodedString, pad float64) *chainIndex {
	idx := &chainIndex{tree: rtreego.NewTree(2, 25, 50)}
	for _, s := range strs {
		if s.NumSegments() == 0 {
			continue
		}
		// SoA layout for the envelope kernel.
		xs := make([]float64, s.NumCoords())
		ys := make([]float64, s.NumCoords())
		for i, c := range s.Coords() {
			xs[i] = c[0]
			ys[i] = c[1]
		}
		for _, span := range chainSpans(s.Coords()) {
			minX, minY, maxX, maxY := BaseEnvelope2D(xs[span[0]:span[1]+1], ys[span[0]:span[1]+1])
			rect, err := rtreego.NewRect(
				rtreego.Point{minX - pad, minY - pad},
				[]float64{maxX - minX + 2*pad, maxY - minY + 2*pad},
			)
			if err != nil {
				continue
			}
			mc := &monotoneChain{id: len(idx.chains), str: s, start: span[0], end: span[1], rect: rect}
			idx.chains = append(idx.chains, mc)
			idx.tree.Insert(mc)
		}
	}
	return idx
}

// search returns the chains whose padded envelope intersects rect.
func (idx *chainIndex) search(rect rtreego.Rect) []*monotoneChain {
	found := idx.tree.SearchIntersect(rect)
	out := make([]*monotoneChain, len(found))
	for i, sp := range found {
		out[i] = sp.(*monotoneChain)
	}
	return out
}

// chainSpans splits pts into monotone runs, returned as inclusive
// vertex index ranges [start, end]. A new chain starts whenever the
// segment direction leaves the current quadrant.
func chainSpans(pts []geom.Coord) [][2]int {
	var spans [][2]int
	start := 0
	q := quadrant(pts[0], pts[1])
	for i := 1; i < len(pts)-1; i++ {
		if nq := quadrant(pts[i], pts[i+1]); nq != q {
			spans = append(spans, [2]int{start, i})
			start = i
			q = nq
		}
	}
	return append(spans, [2]int{start, len(pts) - 1})
}

func quadrant(p0, p1 geom.Coord) int {
	q := 0
	if p1[0] < p0[0] {
		q |= 1
	}
	if p1[1] < p0[1] {
		q |= 2
	}
	return q
}
