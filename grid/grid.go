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

// Package grid provides fixed-precision coordinate grids for planar
// geometry. Snapping all coordinates of a data set to a common grid is
// a prerequisite for robust overlay operations.
package grid

import (
	"math"

	geom "github.com/twpayne/go-geom"
)

// Grid is a uniform fixed-precision coordinate grid. Scale is the
// number of grid cells per unit of length: a scale of 1000 keeps three
// decimal digits. Grid is an immutable value and may be shared freely
// between goroutines.
type Grid struct {
	scale float64
}

// New returns a grid with the given scale. A non-positive scale yields
// a grid whose MakePrecise is the identity.
func New(scale float64) Grid {
	return Grid{scale: scale}
}

// Scale returns the number of grid cells per unit.
func (g Grid) Scale() float64 { return g.scale }

// CellWidth returns the spacing between adjacent grid points, or 0 for
// a non-positive scale.
func (g Grid) CellWidth() float64 {
	if g.scale <= 0 {
		return 0
	}
	return 1 / g.scale
}

// MakePrecise returns a copy of c with its X and Y ordinates snapped to
// the nearest grid point. Ordinates beyond the first two are copied
// unchanged. Ties round away from zero.
func (g Grid) MakePrecise(c geom.Coord) geom.Coord {
	out := make(geom.Coord, len(c))
	copy(out, c)
	if g.scale <= 0 || len(c) < 2 {
		return out
	}
	out[0] = math.Round(c[0]*g.scale) / g.scale
	out[1] = math.Round(c[1]*g.scale) / g.scale
	return out
}

// RoundCoords snaps every coordinate of seq to the grid and collapses
// immediately-consecutive duplicate points into one. An empty input
// yields an empty output. The input is not modified.
func (g Grid) RoundCoords(seq []geom.Coord) []geom.Coord {
	out := make([]geom.Coord, 0, len(seq))
	for _, c := range seq {
		p := g.MakePrecise(c)
		if n := len(out); n > 0 && out[n-1][0] == p[0] && out[n-1][1] == p[1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
