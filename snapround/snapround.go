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

// Package snapround nodes a geometry by snap rounding onto a
// fixed-precision grid.
//
//   - Point components are not handled; they are dropped if present in
//     the input.
//   - Linework which collapses to fewer than two points due to
//     snapping is removed.
//   - Polygonal output that becomes invalid through topology collapse
//     is passed to a Repairer.
//
// Input coordinates must be expressed in the same spatial reference as
// the grid; no reprojection is performed.
package snapround

import (
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"

	"github.com/spatialkit/planar/grid"
	"github.com/spatialkit/planar/noding"
)

// A Repairer turns an invalid polygonal geometry into a valid one. It
// must always return some valid geometry, even a degenerate or empty
// one. The repaired geometry may restructure rings and is not
// guaranteed to preserve the input vertex set.
type Repairer interface {
	Repair(g geom.T) (geom.T, error)
}

// RounderOptions controls the behavior of a Rounder. A nil Noder or
// Repairer is replaced by the package defaults (SnapRoundingNoder,
// PolygonCleaner).
type RounderOptions struct {
	Grid         grid.Grid
	LineworkOnly bool
	Noder        noding.Noder
	Repairer     Repairer
}

// A Rounder snap-rounds geometries onto one precision grid. It holds
// no per-invocation state; a single Rounder may process distinct
// geometries from multiple goroutines.
type Rounder struct {
	opts RounderOptions
}

// NewRounder creates a Rounder with the given options.
func NewRounder(opts RounderOptions) *Rounder {
	if opts.Noder == nil {
		opts.Noder = noding.NewSnapRoundingNoder(opts.Grid)
	}
	if opts.Repairer == nil {
		opts.Repairer = NewPolygonCleaner(opts.Grid)
	}
	return &Rounder{opts: opts}
}

// SnapRound snap-rounds g onto a grid with the given scale using the
// default collaborators, returning the full rebuilt geometry.
func SnapRound(g geom.T, scale float64) (geom.T, error) {
	return NewRounder(RounderOptions{Grid: grid.New(scale)}).SnapRound(g)
}

// SnapRound snap-rounds g. In linework-only mode the result is a flat
// MultiLineString of the noded fragments; otherwise it is a geometry
// with the same tree structure as g whose linear components carry the
// noded coordinates, repaired if rounding made it invalid.
func (r *Rounder) SnapRound(g geom.T) (geom.T, error) {
	if r.opts.Grid.Scale() <= 0 {
		return nil, errors.New("snapround: grid scale must be positive")
	}
	frags, err := extractStrings(g, r.opts.Grid)
	if err != nil {
		return nil, err
	}
	if err := r.opts.Noder.ComputeNodes(frags); err != nil {
		return nil, err
	}
	noded, err := collectNoded(frags)
	if err != nil {
		return nil, err
	}
	if r.opts.LineworkOnly {
		return nodedLinework(frags, noded), nil
	}
	out, err := rebuild(g, noded, len(frags))
	if err != nil {
		return nil, err
	}
	if isPolygonallyValid(out) {
		return out, nil
	}
	return r.opts.Repairer.Repair(out)
}

// collectNoded builds the tag -> noded coordinates mapping, dropping
// fragments that collapsed below two points. The noder contract is
// checked here: every fragment must still carry its original tag and
// report a coordinate sequence.
func collectNoded(frags []*noding.NodedString) (map[int][]geom.Coord, error) {
	m := make(map[int][]geom.Coord, len(frags))
	for _, f := range frags {
		if f.Tag() < 0 || f.Tag() >= len(frags) {
			return nil, errors.Errorf("snapround: noder corrupted fragment tag %d", f.Tag())
		}
		if _, dup := m[f.Tag()]; dup {
			return nil, errors.Errorf("snapround: duplicate fragment tag %d", f.Tag())
		}
		pts := f.NodedCoords()
		if len(pts) < 2 {
			continue // collapsed
		}
		m[f.Tag()] = pts
	}
	return m, nil
}

// nodedLinework assembles the surviving fragments into a flat
// MultiLineString, in fragment order.
func nodedLinework(frags []*noding.NodedString, noded map[int][]geom.Coord) geom.T {
	out := geom.NewMultiLineString(geom.XY)
	for _, f := range frags {
		pts, ok := noded[f.Tag()]
		if !ok {
			continue
		}
		// Push only fails on layout mismatch, which cannot happen here.
		_ = out.Push(geom.NewLineString(geom.XY).MustSetCoords(pts))
	}
	return out
}
