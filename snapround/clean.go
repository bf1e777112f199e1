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

	"github.com/spatialkit/planar/grid"
)

// PolygonCleaner is the default Repairer. It re-assembles each
// polygonal component from its rings: rings with fewer than four
// points or zero area are dropped, shells are oriented
// counter-clockwise and holes clockwise, and holes not contained in
// their shell are dropped. The result is deterministic and produced in
// a single pass. Self-intersecting rings that survive these rules are
// kept; callers needing full overlay-grade repair should supply their
// own Repairer.
type PolygonCleaner struct {
	grid grid.Grid
}

// NewPolygonCleaner returns a cleaner deduplicating ring vertices on g.
func NewPolygonCleaner(g grid.Grid) *PolygonCleaner {
	return &PolygonCleaner{grid: g}
}

// Repair implements Repairer. It never fails; degenerate input yields
// an empty geometry of the same kind.
func (c *PolygonCleaner) Repair(g geom.T) (geom.T, error) {
	return c.clean(g), nil
}

func (c *PolygonCleaner) clean(g geom.T) geom.T {
	switch t := g.(type) {
	case *geom.Polygon:
		return c.cleanPolygon(t)
	case *geom.MultiPolygon:
		out := geom.NewMultiPolygon(geom.XY)
		for i := 0; i < t.NumPolygons(); i++ {
			if p := c.cleanPolygon(t.Polygon(i)); p.NumLinearRings() > 0 {
				_ = out.Push(p)
			}
		}
		return out
	case *geom.GeometryCollection:
		out := geom.NewGeometryCollection()
		for _, child := range t.Geoms() {
			if cleaned := c.clean(child); !isEmptyGeom(cleaned) {
				out.MustPush(cleaned)
			}
		}
		return out
	}
	return g
}

func (c *PolygonCleaner) cleanPolygon(p *geom.Polygon) *geom.Polygon {
	out := geom.NewPolygon(geom.XY)
	var shell []geom.Coord
	for i := 0; i < p.NumLinearRings(); i++ {
		r := c.prepareRing(p.LinearRing(i).Coords())
		if r == nil {
			if i == 0 {
				break // shell degenerate, polygon is gone
			}
			continue
		}
		area := signedArea(r)
		if i == 0 {
			if area < 0 {
				r = reverseRing(r)
			}
			shell = r
			_ = out.Push(geom.NewLinearRing(geom.XY).MustSetCoords(r))
			continue
		}
		if !holeInShell(r, shell) {
			continue
		}
		if area > 0 {
			r = reverseRing(r)
		}
		_ = out.Push(geom.NewLinearRing(geom.XY).MustSetCoords(r))
	}
	return out
}

// prepareRing deduplicates, closes and vets one ring, returning nil
// for rings that cannot bound any area.
func (c *PolygonCleaner) prepareRing(r []geom.Coord) []geom.Coord {
	r = c.grid.RoundCoords(r)
	if len(r) == 0 {
		return nil
	}
	if first, last := r[0], r[len(r)-1]; first[0] != last[0] || first[1] != last[1] {
		r = append(r, geom.Coord{first[0], first[1]})
	}
	if len(r) < 4 || signedArea(r) == 0 {
		return nil
	}
	return r
}
