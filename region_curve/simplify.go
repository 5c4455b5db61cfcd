package regioncurve

import (
	"github.com/golang/geo/r3"

	"go.viam.com/rdk/logging"
)

// SimplifyClosedCurves reduces the point count of closed curves through
// concave-hull simplification, then re-sequences and re-closes each result.
// Curves below cfg.SimplificationMinPoints, and curves whose hull turns out
// degenerate, are kept as they are.
func SimplifyClosedCurves(curves []Curve, cfg ContourConfig, logger logging.Logger) []Curve {
	out := make([]Curve, 0, len(curves))
	for i, c := range curves {
		if c.Len() < cfg.SimplificationMinPoints {
			out = append(out, c)
			continue
		}
		hull, err := ConcaveHull(c, cfg.SimplificationAlphaMm)
		if err != nil {
			logger.Debugf("hull simplification skipped for curve %d: %v", i, err)
			out = append(out, c)
			continue
		}
		logger.Debugf("concave hull simplified curve %d from %d to %d points", i, c.Len(), len(hull))
		seq := Sequence(hull, cfg.SequencingEpsilon, logger)
		out = append(out, closeCurve(seq))
	}
	return out
}

// SimplifyByMinLength walks each curve keeping a point only when it lies
// more than minLength from the last kept point. The first and last points
// are always kept, so the final pair may be closer than minLength.
func SimplifyByMinLength(curves []Curve, minLength float64) []Curve {
	simplified := make([]Curve, 0, len(curves))
	for _, c := range curves {
		if c.Len() == 0 {
			continue
		}
		kept := []r3.Vector{c.Front()}
		for i := 1; i < c.Len()-1; i++ {
			if c.Points[i].Sub(kept[len(kept)-1]).Norm() > minLength {
				kept = append(kept, c.Points[i])
			}
		}
		if c.Len() > 1 {
			kept = append(kept, c.Back())
		}
		simplified = append(simplified, Curve{Points: kept, Closed: c.Closed})
	}
	return simplified
}

// FilterMinPoints drops curves with fewer than minPoints points.
func FilterMinPoints(curves []Curve, minPoints int) []Curve {
	kept := make([]Curve, 0, len(curves))
	for _, c := range curves {
		if c.Len() < minPoints {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
