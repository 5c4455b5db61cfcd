package regioncurve

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"

	"go.viam.com/rdk/logging"
)

func lineSpacingOK(t *testing.T, c Curve, spacing float64) {
	t.Helper()
	for i := 1; i < c.Len(); i++ {
		d := c.Points[i].Sub(c.Points[i-1]).Norm()
		if d > spacing+1e-9 {
			t.Errorf("gap of %.3f between sequenced points %d and %d, want <= %.3f", d, i-1, i, spacing)
		}
	}
}

func TestSequence_ScrambledLine(t *testing.T) {
	logger := logging.NewTestLogger(t)

	line := make([]r3.Vector, 20)
	for i := range line {
		line[i] = r3.Vector{X: float64(i), Y: 0, Z: 0}
	}
	scrambled := make([]r3.Vector, len(line))
	copy(scrambled, line)
	rng := rand.New(rand.NewSource(7))
	rng.Shuffle(len(scrambled), func(i, j int) {
		scrambled[i], scrambled[j] = scrambled[j], scrambled[i]
	})

	c := Sequence(scrambled, 0, logger)
	if c.Len() != len(line) {
		t.Fatalf("sequenced %d points, want %d", c.Len(), len(line))
	}
	lineSpacingOK(t, c, 1.0)
}

func TestSequence_GrowsFromNearerEnd(t *testing.T) {
	logger := logging.NewTestLogger(t)

	// The start point sits mid-line, so the chain must reverse once the
	// first side is exhausted to pick up the other side.
	pts := []r3.Vector{
		{X: 5, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 3, Y: 0, Z: 0},
		{X: 4, Y: 0, Z: 0},
		{X: 6, Y: 0, Z: 0},
		{X: 7, Y: 0, Z: 0},
		{X: 8, Y: 0, Z: 0},
		{X: 9, Y: 0, Z: 0},
	}
	c := Sequence(pts, 0, logger)
	if c.Len() != len(pts) {
		t.Fatalf("sequenced %d points, want %d", c.Len(), len(pts))
	}
	lineSpacingOK(t, c, 1.0)
}

func TestSequence_Degenerate(t *testing.T) {
	logger := logging.NewTestLogger(t)

	if c := Sequence(nil, 0, logger); c.Len() != 0 {
		t.Errorf("empty input sequenced to %d points", c.Len())
	}
	one := []r3.Vector{{X: 1, Y: 2, Z: 3}}
	c := Sequence(one, 0, logger)
	if c.Len() != 1 || c.Points[0] != one[0] {
		t.Errorf("single-point input sequenced to %v", c.Points)
	}
}
