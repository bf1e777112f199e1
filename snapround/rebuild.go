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
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
)

// rebuild produces a copy of g with the same tree structure whose
// linear leaves carry the noded coordinates. The rebuilder repeats the
// extraction walk, consuming one arena id per non-empty linear leaf;
// leaves whose id is absent from noded have collapsed and are removed
// from their parent. nFrags is checked against the number of ids
// consumed to catch any divergence between the two walks.
func rebuild(g geom.T, noded map[int][]geom.Coord, nFrags int) (geom.T, error) {
	rb := &rebuilder{noded: noded}
	out := rb.geometry(g)
	if rb.next != nFrags {
		return nil, errors.Errorf("snapround: rebuild consumed %d fragment tags, extraction produced %d", rb.next, nFrags)
	}
	if out == nil {
		// The whole input vanished (point-only input or total collapse).
		return geom.NewGeometryCollection(), nil
	}
	return out, nil
}

type rebuilder struct {
	noded map[int][]geom.Coord
	next  int
}

// take returns the noded coordinates of the next leaf in walk order,
// or ok=false if the leaf collapsed.
func (rb *rebuilder) take() ([]geom.Coord, bool) {
	pts, ok := rb.noded[rb.next]
	rb.next++
	return pts, ok
}

// geometry rebuilds one component. A nil result means the component
// vanished: point components always, linear components whose linework
// collapsed.
func (rb *rebuilder) geometry(g geom.T) geom.T {
	switch t := g.(type) {
	case *geom.Point, *geom.MultiPoint:
		return nil
	case *geom.LineString:
		if t.NumCoords() == 0 {
			return nil
		}
		if pts, ok := rb.take(); ok {
			return geom.NewLineString(geom.XY).MustSetCoords(pts)
		}
		return nil
	case *geom.LinearRing:
		if t.NumCoords() == 0 {
			return nil
		}
		if pts, ok := rb.take(); ok {
			return geom.NewLinearRing(geom.XY).MustSetCoords(pts)
		}
		return nil
	case *geom.MultiLineString:
		out := geom.NewMultiLineString(geom.XY)
		for i := 0; i < t.NumLineStrings(); i++ {
			if t.LineString(i).NumCoords() == 0 {
				continue
			}
			if pts, ok := rb.take(); ok {
				_ = out.Push(geom.NewLineString(geom.XY).MustSetCoords(pts))
			}
		}
		return out
	case *geom.Polygon:
		return rb.polygon(t)
	case *geom.MultiPolygon:
		out := geom.NewMultiPolygon(geom.XY)
		for i := 0; i < t.NumPolygons(); i++ {
			if p := rb.polygon(t.Polygon(i)); p.NumLinearRings() > 0 {
				_ = out.Push(p)
			}
		}
		return out
	case *geom.GeometryCollection:
		out := geom.NewGeometryCollection()
		for _, c := range t.Geoms() {
			if child := rb.geometry(c); child != nil && !isEmptyGeom(child) {
				out.MustPush(child)
			}
		}
		return out
	}
	// extractStrings already rejected unknown kinds.
	return nil
}

// polygon rebuilds a polygon ring by ring. If the exterior ring
// collapsed the polygon is empty, but the ids of its interior rings
// are still consumed to keep the walks aligned.
func (rb *rebuilder) polygon(t *geom.Polygon) *geom.Polygon {
	out := geom.NewPolygon(geom.XY)
	shellGone := false
	for i := 0; i < t.NumLinearRings(); i++ {
		if t.LinearRing(i).NumCoords() == 0 {
			continue
		}
		pts, ok := rb.take()
		switch {
		case i == 0 && !ok:
			shellGone = true
		case !shellGone && ok:
			_ = out.Push(geom.NewLinearRing(geom.XY).MustSetCoords(pts))
		}
	}
	if shellGone {
		return geom.NewPolygon(geom.XY)
	}
	return out
}

// isEmptyGeom reports whether g has no components at all. Collection
// members that rebuild to empty geometries are dropped, mirroring the
// removal of collapsed leaves.
func isEmptyGeom(g geom.T) bool {
	switch t := g.(type) {
	case *geom.LineString:
		return t.NumCoords() == 0
	case *geom.LinearRing:
		return t.NumCoords() == 0
	case *geom.Polygon:
		return t.NumLinearRings() == 0
	case *geom.MultiLineString:
		return t.NumLineStrings() == 0
	case *geom.MultiPolygon:
		return t.NumPolygons() == 0
	case *geom.GeometryCollection:
		return t.NumGeoms() == 0
	}
	return false
}
