// Package polygon provides chord-outline polygons for sampled curves,
// with boolean clipping operations bridged to polyclip-go. Hosts use
// these for hit-testing and debug overlays; clipped outlines convert
// back to path commands so they can be sampled and animated themselves.
package polygon

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/pulsepath"
	"github.com/npillmayer/pulsepath/curve"
	"github.com/npillmayer/schuko/tracing"
)

// L writes to trace with key 'polygon'
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a knot sequence, optionally closed. Build one with the
// NullPolygon builder, with Box, or from a sampled curve.
type Polygon struct {
	points []pulsepath.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p pulsepath.Pair) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a closed axis-aligned rectangle from a top-left and a
// bottom-right corner.
func Box(topleft, botright pulsepath.Pair) *Polygon {
	return NullPolygon().
		Knot(topleft).
		Knot(pulsepath.P(botright.X(), topleft.Y())).
		Knot(botright).
		Knot(pulsepath.P(topleft.X(), botright.Y())).
		Cycle()
}

// FromCurve returns the chord outline of a sampled curve as a closed
// polygon. Degenerate curves yield an empty polygon.
func FromCurve(sc *curve.SampledCurve) *Polygon {
	pg := NullPolygon()
	if sc.IsDegenerate() {
		return pg
	}
	pg.Knot(sc.Chord(0).Start)
	for i := 0; i < sc.N(); i++ {
		end := sc.Chord(i).End
		if i == sc.N()-1 && end.Equal(pg.points[0]) {
			break // closing chord, knot already present
		}
		pg.Knot(end)
	}
	return pg.Cycle()
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the knot count.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Z returns the knot at position (i mod N).
func (pg *Polygon) Z(i int) pulsepath.Pair {
	if i < 0 || i >= pg.N() {
		i = ((i % pg.N()) + pg.N()) % pg.N()
	}
	return pg.points[i]
}

// AsString returns a polygon as a (debugging) string, knots joined by
// "--", closed polygons terminated with "cycle".
func AsString(pg *Polygon) string {
	var s string
	for i, p := range pg.points {
		if i > 0 {
			s += " -- "
		}
		s += p.String()
	}
	if pg.cycle {
		s += " -- cycle"
	}
	return s
}

// Commands converts a polygon back into a drawable path, so that
// clipped outlines can be sampled and animated like any other path.
func Commands(pg *Polygon) []curve.PathCommand {
	if pg.N() == 0 {
		return nil
	}
	commands := make([]curve.PathCommand, 0, pg.N()+1)
	commands = append(commands, curve.MoveTo(pg.points[0]))
	for _, p := range pg.points[1:] {
		commands = append(commands, curve.LineTo(p))
	}
	if pg.cycle {
		commands = append(commands, curve.ClosePath())
	}
	return commands
}

// Area returns the unsigned area of a closed polygon (shoelace sum);
// open polygons have area 0.
func Area(pg *Polygon) float64 {
	if !pg.cycle || pg.N() < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < pg.N(); i++ {
		a, b := pg.Z(i), pg.Z(i+1)
		sum += a.X()*b.Y() - b.X()*a.Y()
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

// BoundingBox returns the lower-left and upper-right corner of a
// polygon's bounding box.
func BoundingBox(pg *Polygon) (pulsepath.Pair, pulsepath.Pair) {
	if pg.N() == 0 {
		return pulsepath.Origin, pulsepath.Origin
	}
	box := toClip(pg).BoundingBox()
	return pulsepath.P(box.Min.X, box.Min.Y), pulsepath.P(box.Max.X, box.Max.Y)
}

// Union clips two closed polygons against each other and returns the
// contours of their union.
func Union(pg, other *Polygon) []*Polygon {
	return construct(polyclip.UNION, pg, other)
}

// Intersect clips two closed polygons against each other and returns
// the contours of their intersection.
func Intersect(pg, other *Polygon) []*Polygon {
	return construct(polyclip.INTERSECTION, pg, other)
}

func construct(op polyclip.Op, pg, other *Polygon) []*Polygon {
	result := toClip(pg).Construct(op, toClip(other))
	L().Debugf("clip op %d: %d contours", op, len(result))
	return fromClip(result)
}

func toClip(pg *Polygon) polyclip.Polygon {
	contour := make(polyclip.Contour, pg.N())
	for i, p := range pg.points {
		contour[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return polyclip.Polygon{contour}
}

func fromClip(clipped polyclip.Polygon) []*Polygon {
	polygons := make([]*Polygon, 0, len(clipped))
	for _, contour := range clipped {
		pg := NullPolygon()
		for _, p := range contour {
			pg.Knot(pulsepath.P(p.X, p.Y))
		}
		polygons = append(polygons, pg.Cycle())
	}
	return polygons
}
