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

package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	geom "github.com/twpayne/go-geom"
)

func TestMakePrecise(t *testing.T) {
	tests := []struct {
		scale float64
		in    geom.Coord
		want  geom.Coord
	}{
		{1, geom.Coord{0.1, 0.1}, geom.Coord{0, 0}},
		{1, geom.Coord{4.9, 0.1}, geom.Coord{5, 0}},
		{1, geom.Coord{-0.6, 2.5}, geom.Coord{-1, 3}},
		{10, geom.Coord{1.234, -1.235}, geom.Coord{1.2, -1.2}},
		{100, geom.Coord{1.234, 5.678}, geom.Coord{1.23, 5.68}},
		{0, geom.Coord{1.234, 5.678}, geom.Coord{1.234, 5.678}},
	}
	for _, tc := range tests {
		got := New(tc.scale).MakePrecise(tc.in)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("MakePrecise(%v) at scale %v: diff (-want +got):\n%s", tc.in, tc.scale, diff)
		}
	}
}

func TestMakePreciseDoesNotMutateInput(t *testing.T) {
	in := geom.Coord{0.4, 0.6}
	New(1).MakePrecise(in)
	if in[0] != 0.4 || in[1] != 0.6 {
		t.Errorf("input mutated: %v", in)
	}
}

func TestRoundCoordsCollapsesDuplicates(t *testing.T) {
	g := New(1)
	in := []geom.Coord{{0.1, 0.1}, {0.2, -0.2}, {3.9, 0}, {4.1, 0.1}}
	want := []geom.Coord{{0, 0}, {4, 0}}
	if diff := cmp.Diff(want, g.RoundCoords(in)); diff != "" {
		t.Errorf("RoundCoords diff (-want +got):\n%s", diff)
	}
}

func TestRoundCoordsEmpty(t *testing.T) {
	if got := New(1).RoundCoords(nil); len(got) != 0 {
		t.Errorf("RoundCoords(nil) = %v, want empty", got)
	}
}

func TestRoundCoordsIdempotent(t *testing.T) {
	g := New(10)
	in := []geom.Coord{{0.13, 0.17}, {2.51, -0.49}, {2.54, -0.51}, {7, 3}}
	once := g.RoundCoords(in)
	twice := g.RoundCoords(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("rounding twice differs from rounding once (-once +twice):\n%s", diff)
	}
}

func TestRoundCoordsPreservesRingClosure(t *testing.T) {
	g := New(1)
	ring := []geom.Coord{{0.1, 0.1}, {5.1, 0}, {5, 4.9}, {0, 5.1}, {0.1, 0.1}}
	got := g.RoundCoords(ring)
	first, last := got[0], got[len(got)-1]
	if first[0] != last[0] || first[1] != last[1] {
		t.Errorf("ring closure lost: first %v last %v", first, last)
	}
}
