/*
Package pulsepath implements a constant-speed traversal engine for 2D
vector paths, used to drive markers and their trailing comet particles
at a speed synchronized to an external beats-per-minute signal.

The root package holds the base numeric and point types shared by the
subpackages: curve (arc-length sampling of paths), trail (per-frame
particle computation), shape (decorative path generators) and polygon
(chord-outline operations).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pulsepath

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pulsepath'
func tracer() tracing.Trace {
	return tracing.Select("pulsepath")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Fract returns the fractional part of x, i.e. x - floor(x), mapping any
// finite x into [0,1). Non-finite input maps to 0 so that callers never
// see NaN progress values.
func Fract(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	f := x - math.Floor(x)
	if f >= 1 { // guard against floor rounding at huge magnitudes
		f = 0
	}
	return f
}

// === Pair Data Type ========================================================

// Pair is a 2D-point, represented as a complex number.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p.C()), imag(p.C())
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a).Zap()
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return (p + v).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	sin, cos := math.Sincos(theta)
	return P(p.X()*cos-p.Y()*sin, p.X()*sin+p.Y()*cos).Zap()
}

// Rotatedaround returns a new pair rotated around v by theta (counterclockwise).
func (p Pair) Rotatedaround(v Pair, theta float64) Pair {
	return p.Shifted(-v).Rotated(theta).Shifted(v).Zap()
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Pair) float64 {
	return cmplx.Abs((q - p).C())
}

// Lerp interpolates linearly between p and q. t=0 yields p, t=1 yields q;
// t is not clamped.
func Lerp(p, q Pair, t float64) Pair {
	return P(p.X()+(q.X()-p.X())*t, p.Y()+(q.Y()-p.Y())*t)
}
