package regioncurve

import (
	"testing"

	"github.com/golang/geo/r3"

	"go.viam.com/rdk/logging"
)

func TestSimplifyClosedCurves_SquareStaysClosed(t *testing.T) {
	logger := logging.NewTestLogger(t)

	ring := squareRing(20, 10, 0)
	cfg := ContourConfig{
		SequencingEpsilon:       0,
		SimplificationAlphaMm:   100,
		SimplificationMinPoints: 10,
	}

	out := SimplifyClosedCurves([]Curve{ring}, cfg, logger)
	if len(out) != 1 {
		t.Fatalf("got %d curves, want 1", len(out))
	}
	c := out[0]
	if !c.Closed {
		t.Error("simplified curve lost its closed flag")
	}
	if c.Front() != c.Back() {
		t.Errorf("simplified curve endpoints differ: %v vs %v", c.Front(), c.Back())
	}
	if c.Len() > ring.Len() {
		t.Errorf("simplified curve grew from %d to %d points", ring.Len(), c.Len())
	}
}

func TestSimplifyClosedCurves_SkipsSmallCurves(t *testing.T) {
	logger := logging.NewTestLogger(t)

	small := Curve{Points: []r3.Vector{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 5}, {X: 0, Y: 0},
	}, Closed: true}
	cfg := ContourConfig{SimplificationAlphaMm: 100, SimplificationMinPoints: 10}

	out := SimplifyClosedCurves([]Curve{small}, cfg, logger)
	if len(out) != 1 {
		t.Fatalf("got %d curves, want 1", len(out))
	}
	if out[0].Len() != small.Len() {
		t.Errorf("small curve changed from %d to %d points", small.Len(), out[0].Len())
	}
}

func TestSimplifyClosedCurves_KeepsCurveOnDegenerateHull(t *testing.T) {
	logger := logging.NewTestLogger(t)

	// Collinear points defeat the plane fit; the curve must pass through.
	flat := lineCurve(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	cfg := ContourConfig{SimplificationAlphaMm: 100, SimplificationMinPoints: 5}

	out := SimplifyClosedCurves([]Curve{flat}, cfg, logger)
	if len(out) != 1 {
		t.Fatalf("got %d curves, want 1", len(out))
	}
	if out[0].Len() != flat.Len() {
		t.Errorf("degenerate curve changed from %d to %d points", flat.Len(), out[0].Len())
	}
}

func TestSimplifyByMinLength(t *testing.T) {
	c := lineCurve(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	out := SimplifyByMinLength([]Curve{c}, 2.5)
	if len(out) != 1 {
		t.Fatalf("got %d curves, want 1", len(out))
	}
	s := out[0]
	if s.Front().X != 0 {
		t.Errorf("first point = %v, want x=0", s.Front())
	}
	if s.Back().X != 10 {
		t.Errorf("last point = %v, want x=10", s.Back())
	}
	// Interior points must be spaced more than 2.5 apart.
	for i := 1; i < s.Len()-1; i++ {
		d := s.Points[i].Sub(s.Points[i-1]).Norm()
		if d <= 2.5 {
			t.Errorf("kept points %d and %d only %.2f apart", i-1, i, d)
		}
	}
	if s.Len() >= c.Len() {
		t.Errorf("decimation kept %d of %d points", s.Len(), c.Len())
	}
}

func TestFilterMinPoints(t *testing.T) {
	long := lineCurve(0, 1, 2, 3, 4)
	short := lineCurve(0, 1)
	out := FilterMinPoints([]Curve{long, short}, 3)
	if len(out) != 1 {
		t.Fatalf("got %d curves, want 1", len(out))
	}
	if out[0].Len() != long.Len() {
		t.Errorf("kept the wrong curve: %d points", out[0].Len())
	}
}
