package regioncurve

import "github.com/golang/geo/r3"

// minPointDist is the spacing below which consecutive sequenced points are
// considered coincident and dropped.
const minPointDist = 1e-8

// SplitByGap cuts a sequenced curve into contiguous runs wherever the gap
// between consecutive points reaches splitDist. Coincident points within a
// run are dropped and runs of a single point are discarded. Runs keep the
// original relative order.
func SplitByGap(curve Curve, splitDist float64) []Curve {
	pts := curve.Points

	var runs []Curve
	startIdx := 0
	for i := 0; i < len(pts); i++ {
		endIdx := i
		if i < len(pts)-1 {
			if pts[i+1].Sub(pts[i]).Norm() < splitDist {
				continue
			}
		}

		if endIdx == startIdx {
			// single point, discard
			startIdx = i + 1
			continue
		}

		segment := make([]r3.Vector, 0, endIdx-startIdx+1)
		for p := startIdx; p <= endIdx; p++ {
			if p > startIdx && pts[p].Sub(segment[len(segment)-1]).Norm() < minPointDist {
				// too close, do not add
				continue
			}
			segment = append(segment, pts[p])
		}

		if len(segment) <= 1 {
			continue
		}
		runs = append(runs, Curve{Points: segment})
		startIdx = i + 1
	}
	return runs
}
