// Package shape generates closed decorative path figures for the curve
// sampler: rings, stars and petal rosettes, keyed by a small integer
// the way mandala pickers select them.
package shape

import (
	"math"

	"github.com/npillmayer/pulsepath"
	"github.com/npillmayer/pulsepath/curve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'shape'
func tracer() tracing.Trace {
	return tracing.Select("shape")
}

const pi2 = 2 * math.Pi

// knots per petal lobe; high enough that chord approximation reads as
// a smooth curve
const petalDetail = 8

// Figure returns the closed figure for key k, with k in 1..9 the way a
// mandala picker numbers them. Out-of-range keys are clamped, not
// rejected.
func Figure(k int, center pulsepath.Pair, radius float64) []curve.PathCommand {
	if k < 1 {
		tracer().Debugf("figure key %d clamped to 1", k)
		k = 1
	} else if k > 9 {
		tracer().Debugf("figure key %d clamped to 9", k)
		k = 9
	}
	switch k {
	case 1:
		return Ring(6, center, radius)
	case 2:
		return Star(5, 0.5, center, radius)
	case 3:
		return Petals(3, center, radius)
	case 4:
		return Ring(8, center, radius)
	case 5:
		return Star(6, 0.45, center, radius)
	case 6:
		return Petals(6, center, radius)
	case 7:
		return Star(7, 0.5, center, radius)
	case 8:
		return Petals(8, center, radius)
	}
	return Star(9, 0.4, center, radius)
}

// Ring returns a regular polygon with the given number of sides,
// starting at angle pi/2 (top) and running counterclockwise.
func Ring(sides int, center pulsepath.Pair, radius float64) []curve.PathCommand {
	if sides < 3 {
		sides = 3
	}
	commands := make([]curve.PathCommand, 0, sides+1)
	for i := 0; i < sides; i++ {
		p := ringPoint(center, radius, float64(i)/float64(sides))
		if i == 0 {
			commands = append(commands, curve.MoveTo(p))
		} else {
			commands = append(commands, curve.LineTo(p))
		}
	}
	return append(commands, curve.ClosePath())
}

// Star returns a star polygon with the given number of points, inner
// vertices at inner*radius.
func Star(points int, inner float64, center pulsepath.Pair, radius float64) []curve.PathCommand {
	if points < 3 {
		points = 3
	}
	n := points * 2
	commands := make([]curve.PathCommand, 0, n+1)
	for i := 0; i < n; i++ {
		r := radius
		if i%2 == 1 {
			r = radius * inner
		}
		p := ringPoint(center, r, float64(i)/float64(n))
		if i == 0 {
			commands = append(commands, curve.MoveTo(p))
		} else {
			commands = append(commands, curve.LineTo(p))
		}
	}
	return append(commands, curve.ClosePath())
}

// Petals returns a rosette outline with the given petal count: a ring
// whose radius is modulated by a cosine lobe per petal. Knots are
// emitted as CurveTo commands with radial control points; the sampler
// only uses the anchors, but producers drawing the outline directly get
// plausible tangents.
func Petals(count int, center pulsepath.Pair, radius float64) []curve.PathCommand {
	if count < 2 {
		count = 2
	}
	n := count * petalDetail
	commands := make([]curve.PathCommand, 0, n+1)
	prev := pulsepath.Origin
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		p := ringPoint(center, petalRadius(radius, float64(count), t), t)
		if i == 0 {
			commands = append(commands, curve.MoveTo(p))
		} else {
			commands = append(commands, curve.CurveTo(p,
				pulsepath.Lerp(prev, p, 1.0/3.0), pulsepath.Lerp(prev, p, 2.0/3.0)))
		}
		prev = p
	}
	return append(commands, curve.ClosePath())
}

// petal lobes: radius swings between 0.7r and r
func petalRadius(radius, count, t float64) float64 {
	return radius * (0.85 + 0.15*math.Cos(count*t*pi2))
}

// ringPoint returns the outline point at fraction t of a full turn,
// starting at the top of the ring and running counterclockwise.
func ringPoint(center pulsepath.Pair, radius, t float64) pulsepath.Pair {
	top := center.Shifted(pulsepath.P(0, radius))
	return top.Rotatedaround(center, t*pi2)
}
