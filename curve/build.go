package curve

import (
	"github.com/npillmayer/pulsepath"
)

// Build converts a command sequence into a SampledCurve. The pen starts
// at the origin; MoveTo repositions it, LineTo and CurveTo emit the
// chord from the pen to their anchor, ClosePath emits the chord from
// the pen back to the first chord's start point. Zero-length chords are
// skipped so that downstream interpolation never divides by zero.
//
// Degenerate input (no commands, or commands of cumulative length zero)
// yields a curve with Len() == 0. That is a valid curve, not an error.
func Build(commands []PathCommand) *SampledCurve {
	sc := &SampledCurve{}
	pen := pulsepath.Origin
	haveOrigin := false
	for _, cmd := range commands {
		switch cmd.op {
		case opMoveTo:
			pen = cmd.to
			if !haveOrigin {
				sc.origin = pen
				haveOrigin = true
			}
		case opLineTo, opCurveTo:
			sc.addChord(pen, cmd.to)
			pen = cmd.to
		case opClosePath:
			if len(sc.segments) > 0 {
				first := sc.segments[0].Start
				sc.addChord(pen, first)
				pen = first
			}
		}
	}
	if len(sc.segments) > 0 {
		sc.origin = sc.segments[0].Start
	}
	tracer().Debugf("built curve of %d chords, length %.4f", sc.N(), sc.Len())
	return sc
}

func (sc *SampledCurve) addChord(from, to pulsepath.Pair) {
	d := pulsepath.Dist(from, to)
	if pulsepath.Is0(d) {
		return
	}
	sc.segments = append(sc.segments, Segment{Start: from, End: to, Length: d})
	sc.totalLength += d
}
