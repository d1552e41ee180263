package curve

import (
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/pulsepath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func squareCommands() []PathCommand {
	return []PathCommand{
		MoveTo(pulsepath.P(0, 0)),
		LineTo(pulsepath.P(10, 0)),
		LineTo(pulsepath.P(10, 10)),
		LineTo(pulsepath.P(0, 10)),
		ClosePath(),
	}
}

func TestBuildSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := Build(squareCommands())
	if sc.N() != 4 {
		t.Fatalf("expected 4 chords, got %d", sc.N())
	}
	if sc.Len() != 40 {
		t.Fatalf("expected total length 40, got %g", sc.Len())
	}
}

func TestArcLengthConservation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := Build(squareCommands())
	sum := 0.0
	for i := 0; i < sc.N(); i++ {
		sum += sc.Chord(i).Length
	}
	if math.Abs(sum-sc.Len()) > 1e-12 {
		t.Fatalf("chord lengths sum to %g, curve reports %g", sum, sc.Len())
	}
}

func TestPointAtSquareScenario(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := Build(squareCommands())
	if p := sc.PointAt(0.25); !p.Equal(pulsepath.P(10, 0)) {
		t.Errorf("pointAt(0.25) = %v, want (10,0)", p)
	}
	if p := sc.PointAt(0.5); !p.Equal(pulsepath.P(10, 10)) {
		t.Errorf("pointAt(0.5) = %v, want (10,10)", p)
	}
}

func TestPointAtEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := Build(squareCommands())
	if p := sc.PointAt(0); !p.Equal(sc.Chord(0).Start) {
		t.Errorf("pointAt(0) = %v, want first chord start", p)
	}
	if p := sc.PointAt(1); !p.Equal(sc.Chord(sc.N() - 1).End) {
		t.Errorf("pointAt(1) = %v, want last chord end", p)
	}
}

func TestPointAtMonotonic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := Build(squareCommands())
	wants := []struct {
		t float64
		p pulsepath.Pair
	}{
		{0.125, pulsepath.P(5, 0)},
		{0.375, pulsepath.P(10, 5)},
		{0.625, pulsepath.P(5, 10)},
		{0.875, pulsepath.P(0, 5)},
	}
	for _, w := range wants {
		if p := sc.PointAt(w.t); !p.Equal(w.p) {
			t.Errorf("pointAt(%g) = %v, want %v", w.t, p, w.p)
		}
	}
}

func TestPointAtClamping(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := Build(squareCommands())
	if p := sc.PointAt(-0.5); !p.Equal(sc.PointAt(0)) {
		t.Errorf("pointAt(-0.5) = %v, want clamp to start", p)
	}
	if p := sc.PointAt(1.5); !p.Equal(sc.PointAt(1)) {
		t.Errorf("pointAt(1.5) = %v, want clamp to end", p)
	}
	if p := sc.PointAt(math.NaN()); !p.Equal(sc.PointAt(0)) {
		t.Errorf("pointAt(NaN) = %v, want clamp to start", p)
	}
}

func TestDegenerateSafety(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := Build(nil)
	if !sc.IsDegenerate() {
		t.Fatalf("empty build should be degenerate")
	}
	if p := sc.PointAt(0.5); !p.IsOrigin() {
		t.Errorf("degenerate pointAt = %v, want (0,0)", p)
	}
	sc = Build([]PathCommand{MoveTo(pulsepath.P(5, 5))})
	if p := sc.PointAt(0.5); !p.Equal(pulsepath.P(5, 5)) {
		t.Errorf("moveto-only pointAt = %v, want (5,5) fallback", p)
	}
}

func TestZeroLengthChordsSkipped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := Build([]PathCommand{
		MoveTo(pulsepath.P(0, 0)),
		LineTo(pulsepath.P(0, 0)), // zero chord
		LineTo(pulsepath.P(4, 0)),
		LineTo(pulsepath.P(4, 0)), // zero chord
		ClosePath(),
	})
	if sc.N() != 2 {
		t.Fatalf("expected 2 chords after skipping, got %d", sc.N())
	}
	if sc.Len() != 8 {
		t.Fatalf("expected length 8, got %g", sc.Len())
	}
}

func TestClosePathOnClosedOutline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// outline already ends at its start; ClosePath must not emit a
	// zero-length chord
	sc := Build([]PathCommand{
		MoveTo(pulsepath.P(0, 0)),
		LineTo(pulsepath.P(1, 0)),
		LineTo(pulsepath.P(0, 1)),
		LineTo(pulsepath.P(0, 0)),
		ClosePath(),
	})
	if sc.N() != 3 {
		t.Fatalf("expected 3 chords, got %d", sc.N())
	}
}

func TestCurveToChordApproximation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// control points are ignored; only the anchors count
	sc := Build([]PathCommand{
		MoveTo(pulsepath.P(0, 0)),
		CurveTo(pulsepath.P(6, 8), pulsepath.P(100, -100), pulsepath.P(-100, 100)),
	})
	if sc.N() != 1 {
		t.Fatalf("expected 1 chord, got %d", sc.N())
	}
	if sc.Len() != 10 {
		t.Fatalf("expected chord length 10, got %g", sc.Len())
	}
	if p := sc.PointAt(0.5); !p.Equal(pulsepath.P(3, 4)) {
		t.Errorf("pointAt(0.5) = %v, want chord midpoint (3,4)", p)
	}
}

func TestPointAtDeterminism(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := Build(squareCommands())
	for _, tt := range []float64{0, 0.1, 0.333, 0.75, 0.999, 1} {
		if sc.PointAt(tt) != sc.PointAt(tt) {
			t.Fatalf("pointAt(%g) not reproducible", tt)
		}
	}
}

func ExampleBuild() {
	sc := Build([]PathCommand{
		MoveTo(pulsepath.P(0, 0)),
		LineTo(pulsepath.P(10, 0)),
		LineTo(pulsepath.P(10, 10)),
		LineTo(pulsepath.P(0, 10)),
		ClosePath(),
	})
	fmt.Printf("curve = %s\n", AsString(sc))
	fmt.Printf("length = %g\n", sc.Len())
	// Output:
	// curve = (0,0) -- (10,0) -- (10,10) -- (0,10) -- (0,0)
	// length = 40
}
