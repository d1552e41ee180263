// Package curve converts vector path descriptions into arc-length
// parametrized polylines.
/*

A path arrives as a sequence of drawing commands (MoveTo, LineTo,
CurveTo, ClosePath), the way shape generators and vector-asset perimeter
extractors produce them. Build walks the commands once and emits one
straight chord per pen-advancing command, annotated with its length.
Curved commands are deliberately approximated by the chord between their
anchors; smoothness is achieved by knot density on the producing side,
not by flattening here.

The resulting SampledCurve answers point queries by normalized arc
length: PointAt(t) with t in [0,1] walks the chords and interpolates
linearly inside the hit chord, so equal steps in t travel equal
distances along the path regardless of its geometric complexity. That
property is what lets the trail package move particles at uniform
visual speed.

A SampledCurve is immutable. A changed path needs a fresh Build; queries
against a curve built from a different logical path are the caller's
bug, not detectable here.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve
