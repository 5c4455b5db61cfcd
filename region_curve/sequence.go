package regioncurve

import (
	"github.com/golang/geo/r3"

	"go.viam.com/rdk/logging"
)

// Sequence reorders an unordered point set into a traversal path by
// repeated nearest-neighbor extension. The chain starts at the first input
// point; each step removes the current point from the unsequenced pool,
// re-indexes the pool and extends the chain with the pool point nearest to
// the current point. When the found neighbor lies closer to the chain's
// start than to the point being extended, the chain is reversed first so
// growth continues from whichever end is nearer to new material. A query
// that finds no neighbor stops sequencing early and the partial path is
// returned.
func Sequence(points []r3.Vector, epsilon float64, logger logging.Logger) Curve {
	if len(points) == 0 {
		return Curve{}
	}
	if len(points) == 1 {
		return Curve{Points: []r3.Vector{points[0]}}
	}

	index := NewSpatialIndex(points, epsilon)
	unsequenced := make([]int, len(points))
	for i := range unsequenced {
		unsequenced[i] = i
	}
	visited := make([]bool, len(points))

	sequenced := make([]int, 0, len(points))
	searchIdx := 0

	for iter := 0; iter <= len(points); iter++ {
		unsequenced = removeIndex(unsequenced, searchIdx)
		if len(unsequenced) == 0 {
			break
		}
		index.Rebuild(unsequenced)

		nearest, dist, ok := index.Nearest(points[searchIdx])
		if !ok {
			p := points[searchIdx]
			logger.Warnf("nearest-neighbor search found no points close to (%f, %f, %f)", p.X, p.Y, p.Z)
			break
		}

		if len(sequenced) == 0 {
			sequenced = append(sequenced, searchIdx)
			visited[searchIdx] = true
		}

		if visited[nearest] {
			logger.Warn("found repeated point during reordering stage, should not happen but proceeding")
			continue
		}

		// Grow from the other end when the new point is nearer the start
		// of the chain than the end being extended.
		start := points[sequenced[0]]
		if start.Sub(points[nearest]).Norm() < dist {
			reverseInts(sequenced)
		}

		searchIdx = nearest
		sequenced = append(sequenced, nearest)
		visited[nearest] = true
	}

	logger.Debugf("sequenced %d points from %d", len(sequenced), len(points))

	out := make([]r3.Vector, len(sequenced))
	for i, idx := range sequenced {
		out[i] = points[idx]
	}
	return Curve{Points: out}
}

// removeIndex removes the first occurrence of v from s, preserving order.
func removeIndex(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
