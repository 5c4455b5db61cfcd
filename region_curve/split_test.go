package regioncurve

import (
	"testing"

	"github.com/golang/geo/r3"
)

func lineCurve(xs ...float64) Curve {
	pts := make([]r3.Vector, len(xs))
	for i, x := range xs {
		pts[i] = r3.Vector{X: x, Y: 0, Z: 0}
	}
	return Curve{Points: pts}
}

func TestSplitByGap_NoGap(t *testing.T) {
	c := lineCurve(0, 1, 2, 3, 4)
	runs := SplitByGap(c, 5)
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Len() != 5 {
		t.Errorf("run has %d points, want 5", runs[0].Len())
	}
}

func TestSplitByGap_SplitsAtGap(t *testing.T) {
	c := lineCurve(0, 1, 2, 50, 51, 52)
	runs := SplitByGap(c, 10)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Len() != 3 || runs[1].Len() != 3 {
		t.Errorf("run sizes %d and %d, want 3 and 3", runs[0].Len(), runs[1].Len())
	}
	if runs[0].Back().X != 2 || runs[1].Front().X != 50 {
		t.Errorf("split boundary wrong: %v | %v", runs[0].Back(), runs[1].Front())
	}
}

func TestSplitByGap_DropsCoincidentPoints(t *testing.T) {
	c := Curve{Points: []r3.Vector{
		{X: 0}, {X: 1}, {X: 1 + 1e-12}, {X: 2},
	}}
	runs := SplitByGap(c, 10)
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Len() != 3 {
		t.Errorf("run has %d points, want 3 after coincident drop", runs[0].Len())
	}
}

func TestSplitByGap_DiscardsSinglePointRuns(t *testing.T) {
	// The lone point at 100 is isolated by gaps on both sides.
	c := lineCurve(0, 1, 2, 100, 200, 201, 202)
	runs := SplitByGap(c, 10)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	for _, r := range runs {
		for _, p := range r.Points {
			if p.X == 100 {
				t.Errorf("isolated point survived splitting")
			}
		}
	}
}
