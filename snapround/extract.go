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
	"fmt"

	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/planar/grid"
	"github.com/spatialkit/planar/noding"
)

// UnsupportedComponentError reports a geometry component outside the
// supported kinds (Point, LineString, LinearRing, Polygon and their
// collections).
type UnsupportedComponentError struct {
	Component geom.T
}

func (e *UnsupportedComponentError) Error() string {
	return fmt.Sprintf("snapround: unsupported geometry component %T", e.Component)
}

// extractStrings walks g and emits one tagged segment string per
// non-empty linear leaf, with coordinates pre-rounded to the grid. The
// tag is the leaf's index in traversal order; the rebuild walk repeats
// the exact same order, so the index doubles as the arena id.
func extractStrings(g geom.T, gr grid.Grid) ([]*noding.NodedString, error) {
	var frags []*noding.NodedString
	if err := eachLinearLeaf(g, func(pts []geom.Coord) {
		frags = append(frags, noding.NewNodedString(len(frags), gr.RoundCoords(pts)))
	}); err != nil {
		return nil, err
	}
	return frags, nil
}

// eachLinearLeaf visits every linear component of g in deterministic
// traversal order. Point components and empty lines are skipped, so
// they contribute no fragment. Polygon rings and multi-geometry
// members are visited as independent leaves.
func eachLinearLeaf(g geom.T, fn func([]geom.Coord)) error {
	switch t := g.(type) {
	case *geom.Point, *geom.MultiPoint:
		// Point geometries are not snap-rounded.
	case *geom.LineString:
		if t.NumCoords() > 0 {
			fn(t.Coords())
		}
	case *geom.LinearRing:
		if t.NumCoords() > 0 {
			fn(t.Coords())
		}
	case *geom.MultiLineString:
		for i := 0; i < t.NumLineStrings(); i++ {
			if ls := t.LineString(i); ls.NumCoords() > 0 {
				fn(ls.Coords())
			}
		}
	case *geom.Polygon:
		for i := 0; i < t.NumLinearRings(); i++ {
			if r := t.LinearRing(i); r.NumCoords() > 0 {
				fn(r.Coords())
			}
		}
	case *geom.MultiPolygon:
		for i := 0; i < t.NumPolygons(); i++ {
			if err := eachLinearLeaf(t.Polygon(i), fn); err != nil {
				return err
			}
		}
	case *geom.GeometryCollection:
		for _, c := range t.Geoms() {
			if err := eachLinearLeaf(c, fn); err != nil {
				return err
			}
		}
	default:
		return &UnsupportedComponentError{Component: g}
	}
	return nil
}
