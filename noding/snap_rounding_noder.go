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
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/planar/grid"
)

// SnapRoundingNoder nodes segment strings by snap rounding onto a
// fixed-precision grid. Every vertex and every segment intersection
// point becomes a hot pixel; any segment passing through a hot pixel's
// tolerance square is noded at the pixel's center. Candidate pairs are
// found through an R-tree over monotone chains.
//
// Input coordinates are expected to be rounded to the grid already;
// the noder re-rounds defensively when collecting pixels.
type SnapRoundingNoder struct {
	grid grid.Grid
}

// NewSnapRoundingNoder returns a noder snapping to g.
func NewSnapRoundingNoder(g grid.Grid) *SnapRoundingNoder {
	return &SnapRoundingNoder{grid: g}
}

// ComputeNodes implements Noder.
func (n *SnapRoundingNoder) ComputeNodes(strs []*NodedString) error {
	if n.grid.Scale() <= 0 {
		return errors.New("noding: snap rounding requires a positive grid scale")
	}
	half := n.grid.CellWidth() / 2
	idx := buildChainIndex(strs, half)
	pixels := n.collectPixels(strs, idx, half)
	n.snapToPixels(idx, pixels, half)
	return nil
}

type pixelKey [2]float64

// collectPixels gathers the hot pixels: one per distinct snapped
// vertex, one per snapped crossing point of any two segments.
func (n *SnapRoundingNoder) collectPixels(strs []*NodedString, idx *chainIndex, half float64) map[pixelKey]hotPixel {
	pixels := make(map[pixelKey]hotPixel)
	add := func(c geom.Coord) {
		p := n.grid.MakePrecise(c)
		pixels[pixelKey{p[0], p[1]}] = hotPixel{pt: p, half: half}
	}
	for _, s := range strs {
		for _, c := range s.Coords() {
			add(c)
		}
	}
	for _, a := range idx.chains {
		for _, b := range idx.search(a.rect) {
			if b.id <= a.id {
				continue
			}
			addChainIntersections(a, b, add)
		}
	}
	return pixels
}

// addChainIntersections finds all single-point crossings between
// segments of chains a and b. Adjacent segments of the same string are
// skipped; they can only meet at their shared vertex, which is a pixel
// already.
func addChainIntersections(a, b *monotoneChain, add func(geom.Coord)) {
	for i := a.start; i < a.end; i++ {
		p0 := a.str.Coord(i)
		p1 := a.str.Coord(i + 1)
		for j := b.start; j < b.end; j++ {
			if a.str == b.str && (i-j == 1 || j-i == 1 || i == j) {
				continue
			}
			if pt, ok := SegmentIntersection(p0, p1, b.str.Coord(j), b.str.Coord(j+1)); ok {
				add(pt)
			}
		}
	}
}

// snapToPixels inserts a node at each pixel center into every segment
// passing through that pixel.
func (n *SnapRoundingNoder) snapToPixels(idx *chainIndex, pixels map[pixelKey]hotPixel, half float64) {
	for _, px := range pixels {
		rect := rtreego.Point{px.pt[0], px.pt[1]}.ToRect(half)
		for _, c := range idx.search(rect) {
			for i := c.start; i < c.end; i++ {
				if px.intersects(c.str.Coord(i), c.str.Coord(i+1)) {
					c.str.AddNode(i, px.pt)
				}
			}
		}
	}
}
