package curve

import (
	"math"

	"github.com/npillmayer/pulsepath"
)

// PointAt returns the point at normalized arc-length position t. t is
// clamped into [0,1]; NaN counts as 0. For fixed (curve, t) the result
// is bit-reproducible.
//
// Degenerate curves resolve every query to Origin().
func (sc *SampledCurve) PointAt(t float64) pulsepath.Pair {
	if sc.IsDegenerate() {
		return sc.origin
	}
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	target := t * sc.totalLength
	acc := 0.0
	for _, seg := range sc.segments {
		if acc+seg.Length >= target {
			return pulsepath.Lerp(seg.Start, seg.End, (target-acc)/seg.Length)
		}
		acc += seg.Length
	}
	// Float accumulation fell short of target near t=1.
	return sc.segments[len(sc.segments)-1].End
}
