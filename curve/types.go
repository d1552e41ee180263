package curve

import (
	"fmt"

	"github.com/npillmayer/pulsepath"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curve'
func tracer() tracing.Trace {
	return tracing.Select("curve")
}

type cmdOp uint8

const (
	opMoveTo cmdOp = iota
	opLineTo
	opCurveTo
	opClosePath
)

// PathCommand is one step of a vector path definition. Commands are
// constructed with MoveTo, LineTo, CurveTo and ClosePath, and consumed
// by Build.
type PathCommand struct {
	op    cmdOp
	to    pulsepath.Pair
	ctrl1 pulsepath.Pair
	ctrl2 pulsepath.Pair
}

// MoveTo repositions the pen without drawing.
func MoveTo(p pulsepath.Pair) PathCommand {
	return PathCommand{op: opMoveTo, to: p}
}

// LineTo draws a straight line from the pen to p.
func LineTo(p pulsepath.Pair) PathCommand {
	return PathCommand{op: opLineTo, to: p}
}

// CurveTo draws a cubic curve from the pen to p with control points
// ctrl1 and ctrl2. Build approximates it by the chord pen--p; the
// control points are carried for producers that care but are ignored
// during sampling.
func CurveTo(p, ctrl1, ctrl2 pulsepath.Pair) PathCommand {
	return PathCommand{op: opCurveTo, to: p, ctrl1: ctrl1, ctrl2: ctrl2}
}

// ClosePath draws a straight line from the pen back to the start of the
// first chord of the path.
func ClosePath() PathCommand {
	return PathCommand{op: opClosePath}
}

// Debug Stringer for a path command.
func (cmd PathCommand) String() string {
	switch cmd.op {
	case opMoveTo:
		return fmt.Sprintf("moveto %s", cmd.to)
	case opLineTo:
		return fmt.Sprintf("lineto %s", cmd.to)
	case opCurveTo:
		return fmt.Sprintf("curveto %s and %s .. %s", cmd.ctrl1, cmd.ctrl2, cmd.to)
	}
	return "closepath"
}

// Segment is a straight chord of a sampled path, annotated with its
// length. Segments are immutable once built.
type Segment struct {
	Start  pulsepath.Pair
	End    pulsepath.Pair
	Length float64
}

// SampledCurve is an arc-length parametrized polyline, built once from
// a command sequence and immutable thereafter. A curve with total
// length 0 is degenerate but valid: every query resolves to the
// fallback origin.
type SampledCurve struct {
	segments    []Segment
	totalLength float64
	origin      pulsepath.Pair
}

// N returns the chord count.
func (sc *SampledCurve) N() int {
	return len(sc.segments)
}

// Chord returns chord i in path order.
func (sc *SampledCurve) Chord(i int) Segment {
	return sc.segments[i]
}

// Len returns the total arc length of the curve.
func (sc *SampledCurve) Len() float64 {
	return sc.totalLength
}

// Origin returns the fallback point: the first pen position the path
// established, or (0,0) if it never established one.
func (sc *SampledCurve) Origin() pulsepath.Pair {
	return sc.origin
}

// IsDegenerate is a predicate: does every query collapse to Origin()?
func (sc *SampledCurve) IsDegenerate() bool {
	return len(sc.segments) == 0 || pulsepath.Is0(sc.totalLength)
}

// AsString returns a curve as a one-line debugging string, knot
// coordinates joined by "--".
func AsString(sc *SampledCurve) string {
	if sc.N() == 0 {
		return "<degenerate>"
	}
	s := sc.segments[0].Start.String()
	for _, seg := range sc.segments {
		s += fmt.Sprintf(" -- %s", seg.End)
	}
	return s
}
