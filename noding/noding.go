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

// Package noding inserts nodes into collections of line segments at
// every point where two segments intersect, so that no segment passes
// undetected through another's interior. The package provides the
// segment string container and a snap-rounding Noder that resolves
// intersections on a fixed-precision grid.
package noding

// A Noder computes intersection nodes for a set of segment strings and
// inserts them into the strings in place. After ComputeNodes returns,
// each string's NodedCoords reports its final vertex sequence,
// including every inserted node. Implementations must not reorder or
// reverse existing vertices and must leave each string's tag untouched.
type Noder interface {
	ComputeNodes(strings []*NodedString) error
}
