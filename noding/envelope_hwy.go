package noding

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// Batch envelope computation (Structure of Arrays).
// Chain envelopes are computed for every monotone chain during index
// construction, which dominates noding setup time on large inputs, so
// the x and y ordinates are kept in separate slices and reduced in one
// vectorized pass.

// BaseEnvelope2D computes the bounding envelope of a coordinate run
// held in SoA layout (parallel x and y slices).
func BaseEnvelope2D[T hwy.Floats](xs, ys []T) (minX, minY, maxX, maxY T) {
	size := min(len(xs), len(ys))
	if size == 0 {
		return 0, 0, 0, 0
	}

	// Initialize with the first coordinate broadcasted so zero-padding
	// from masked loads can never leak into the reduction.
	vMinX := hwy.Set(xs[0])
	vMaxX := hwy.Set(xs[0])
	vMinY := hwy.Set(ys[0])
	vMaxY := hwy.Set(ys[0])

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vx := hwy.Load(xs[offset:])
			vy := hwy.Load(ys[offset:])
			vMinX = hwy.Min(vMinX, vx)
			vMaxX = hwy.Max(vMaxX, vx)
			vMinY = hwy.Min(vMinY, vy)
			vMaxY = hwy.Max(vMaxY, vy)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vx := hwy.MaskLoad(mask, xs[offset:])
			vy := hwy.MaskLoad(mask, ys[offset:])

			// Load the running min/max into the false lanes so the
			// masked-out zeros do not affect the result.
			vMinX = hwy.Min(vMinX, hwy.IfThenElse(mask, vx, vMinX))
			vMaxX = hwy.Max(vMaxX, hwy.IfThenElse(mask, vx, vMaxX))
			vMinY = hwy.Min(vMinY, hwy.IfThenElse(mask, vy, vMinY))
			vMaxY = hwy.Max(vMaxY, hwy.IfThenElse(mask, vy, vMaxY))
		},
	)

	return hwy.ReduceMin(vMinX), hwy.ReduceMin(vMinY), hwy.ReduceMax(vMaxX), hwy.ReduceMax(vMaxY)
}
