package noding

import (
	"math"

	geom "github.com/twpayne/go-geom"
)

// A hotPixel is the tolerance square centered on a grid point. Every
// segment passing through the square gets a node at the square's
// center. The half width is half the grid cell width.
type hotPixel struct {
	pt   geom.Coord
	half float64
}

// intersects reports whether the segment (p0,p1) passes through the
// pixel's tolerance square. The square is closed on its bottom and
// left sides and open on its top and right sides, so a segment that
// only grazes a pixel's upper or right boundary is not renoded and
// adjacent pixels never claim the same boundary point.
func (h hotPixel) intersects(p0, p1 geom.Coord) bool {
	minX := h.pt[0] - h.half
	maxX := h.pt[0] + h.half
	minY := h.pt[1] - h.half
	maxY := h.pt[1] + h.half

	// Orient the segment in the positive x direction.
	px, py, qx, qy := p0[0], p0[1], p1[0], p1[1]
	if px > qx {
		px, py, qx, qy = qx, qy, px, py
	}

	// Envelope rejection. The >= comparisons on the max sides make
	// the top and right boundaries exclusive.
	if px >= maxX || qx < minX {
		return false
	}
	if math.Min(py, qy) >= maxY || math.Max(py, qy) < minY {
		return false
	}

	// A vertical or horizontal segment surviving the envelope check
	// reaches the pixel interior or one of its closed sides.
	if px == qx || py == qy {
		return true
	}

	// Diagonal segment: classify the pixel corners against the
	// segment's supporting line. The envelope check confines the
	// segment enough that corner orientations decide the outcome.
	// A corner on the line is a grazing contact whose side depends on
	// the segment direction: UL and UR lie on the open top, LR on the
	// open right, LL belongs to the pixel.
	upward := qy > py
	p := geom.Coord{px, py}
	q := geom.Coord{qx, qy}

	orientUL := orientation(p, q, geom.Coord{minX, maxY})
	if orientUL == 0 {
		// An upward segment through UL touches the open top only.
		return !upward
	}
	orientUR := orientation(p, q, geom.Coord{maxX, maxY})
	if orientUR == 0 {
		// A downward segment through UR touches the open sides only.
		return upward
	}
	if orientUL != orientUR { // crosses top side
		return true
	}
	orientLL := orientation(p, q, geom.Coord{minX, minY})
	if orientLL == 0 {
		return true
	}
	if orientLL != orientUL { // crosses left side
		return true
	}
	orientLR := orientation(p, q, geom.Coord{maxX, minY})
	if orientLR == 0 {
		// An upward segment through LR touches the open right only.
		return !upward
	}
	if orientLL != orientLR { // crosses bottom side
		return true
	}
	if orientLR != orientUR { // crosses right side
		return true
	}
	return false
}

// SegmentsIntersect reports whether the closed segments (p0,p1) and
// (q0,q1) share at least one point, including endpoint touches and
// collinear overlap.
func SegmentsIntersect(p0, p1, q0, q1 geom.Coord) bool {
	o1 := orientation(p0, p1, q0)
	o2 := orientation(p0, p1, q1)
	o3 := orientation(q0, q1, p0)
	o4 := orientation(q0, q1, p1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegment(p0, p1, q0) {
		return true
	}
	if o2 == 0 && onSegment(p0, p1, q1) {
		return true
	}
	if o3 == 0 && onSegment(q0, q1, p0) {
		return true
	}
	if o4 == 0 && onSegment(q0, q1, p1) {
		return true
	}
	return false
}

// SegmentIntersection returns the single point where the closed
// segments (p0,p1) and (q0,q1) cross, if there is one. Parallel and
// collinear pairs report no intersection; their shared vertices are
// covered by vertex hot pixels during snap rounding.
func SegmentIntersection(p0, p1, q0, q1 geom.Coord) (geom.Coord, bool) {
	dpx := p1[0] - p0[0]
	dpy := p1[1] - p0[1]
	dqx := q1[0] - q0[0]
	dqy := q1[1] - q0[1]

	denom := dpx*dqy - dpy*dqx
	if denom == 0 {
		return nil, false
	}
	t := ((q0[0]-p0[0])*dqy - (q0[1]-p0[1])*dqx) / denom
	u := ((q0[0]-p0[0])*dpy - (q0[1]-p0[1])*dpx) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return nil, false
	}
	return geom.Coord{p0[0] + t*dpx, p0[1] + t*dpy}, true
}

// orientation returns the sign of the cross product (q-p) x (r-p):
// +1 for a left turn, -1 for a right turn, 0 for collinear points.
func orientation(p, q, r geom.Coord) int {
	v := (q[0]-p[0])*(r[1]-p[1]) - (q[1]-p[1])*(r[0]-p[0])
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// onSegment reports whether the collinear point q lies within the
// bounding box of segment (p0,p1).
func onSegment(p0, p1, q geom.Coord) bool {
	return q[0] >= math.Min(p0[0], p1[0]) && q[0] <= math.Max(p0[0], p1[0]) &&
		q[1] >= math.Min(p0[1], p1[1]) && q[1] <= math.Max(p0[1], p1[1])
}
