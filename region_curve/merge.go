package regioncurve

import (
	"github.com/golang/geo/r3"

	"go.viam.com/rdk/logging"
)

// MergeOpenCurves greedily stitches open curves into longer ones wherever a
// pair of endpoints comes within maxMergeDist, then classifies every
// survivor as closed or open using closedMaxDist. Each curve in list order
// becomes an accumulator that repeats full passes over the unmerged
// candidates until a pass produces no merge, since one merge can bring a
// previously distant curve within range. The outcome depends on input list
// order; that is a deliberate property downstream consumers rely on.
//
// The returned error reports a run that produced no closed curves at all;
// the open-curve output is still valid in that case.
func MergeOpenCurves(curves []Curve, maxMergeDist, closedMaxDist float64, logger logging.Logger) (closed, open []Curve, err error) {
	merged := make([]bool, len(curves))

	for i := range curves {
		if merged[i] {
			logger.Debugf("curve %d has already been merged", i)
			continue
		}

		acc := curves[i].Clone()
		logger.Debugf("attempting to merge curve %d with %d points", i, acc.Len())

		for keepMerging := true; keepMerging; {
			keepMerging = false
			for j := range curves {
				if j == i || merged[j] {
					continue
				}
				next, ok := tryMerge(acc, curves[j], maxMergeDist)
				if !ok {
					continue
				}
				acc = next
				merged[i] = true
				merged[j] = true
				keepMerging = true
				logger.Debugf("merged curve %d with %d points into curve %d, final curve has %d points",
					j, curves[j].Len(), i, acc.Len())
			}
		}

		if acc.Front().Sub(acc.Back()).Norm() < closedMaxDist {
			acc = closeCurve(acc)
			closed = append(closed, acc)
			logger.Debugf("found closed curve with %d points", acc.Len())
		} else {
			open = append(open, acc)
			logger.Debugf("copied curve %d into open curves", i)
		}
		merged[i] = true
	}

	if len(closed) == 0 {
		return closed, open, ErrNoClosedCurves
	}
	logger.Infof("found %d closed curves", len(closed))
	return closed, open, nil
}

// tryMerge splices c2 onto c1 when their closest endpoint pair is within
// maxDist, picking the splice orientation from which pair was closest:
// front-front and back-back pairings reverse c2 before splicing onto the
// matching end, front-back pairings splice without reversal. Inputs are
// never mutated; the merged curve is returned only on success, so a failed
// attempt leaves the caller's state unchanged.
func tryMerge(c1, c2 Curve, maxDist float64) (Curve, bool) {
	dists := [4]float64{
		c1.Front().Sub(c2.Front()).Norm(),
		c1.Front().Sub(c2.Back()).Norm(),
		c1.Back().Sub(c2.Front()).Norm(),
		c1.Back().Sub(c2.Back()).Norm(),
	}

	best := 0
	for k := 1; k < len(dists); k++ {
		if dists[k] < dists[best] {
			best = k
		}
	}
	if dists[best] > maxDist {
		// curves are too far, not merging
		return Curve{}, false
	}

	second := c2.Clone()
	out := make([]r3.Vector, 0, c1.Len()+c2.Len())
	switch best {
	case 0: // front2 to front1
		second.Reverse()
		out = append(out, second.Points...)
		out = append(out, c1.Points...)
	case 1: // back2 to front1
		out = append(out, second.Points...)
		out = append(out, c1.Points...)
	case 2: // back1 to front2
		out = append(out, c1.Points...)
		out = append(out, second.Points...)
	case 3: // back1 to back2
		second.Reverse()
		out = append(out, c1.Points...)
		out = append(out, second.Points...)
	}
	return Curve{Points: out}, true
}
