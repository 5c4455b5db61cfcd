package regioncurve

import (
	"math"

	"github.com/golang/geo/r3"
)

// RemoveStatisticalOutliers drops points whose mean distance to their meanK
// nearest neighbors exceeds the population mean of that statistic by more
// than stdDevThresh standard deviations. The relative order of surviving
// points is preserved; downstream sequencing and merging depend on it.
func RemoveStatisticalOutliers(points []r3.Vector, meanK int, stdDevThresh float64) []r3.Vector {
	if meanK < 1 || len(points) <= meanK {
		return points
	}

	index := NewSpatialIndex(points, 0)
	meanDists := make([]float64, len(points))
	var sum float64
	for i, p := range points {
		neighbors := index.NearestK(p, meanK+1) // the query point is one of them
		var total float64
		count := 0
		for _, n := range neighbors {
			if n == i {
				continue
			}
			total += points[n].Sub(p).Norm()
			count++
		}
		if count > 0 {
			meanDists[i] = total / float64(count)
		}
		sum += meanDists[i]
	}

	mean := sum / float64(len(points))
	var variance float64
	for _, d := range meanDists {
		variance += (d - mean) * (d - mean)
	}
	threshold := mean + stdDevThresh*math.Sqrt(variance/float64(len(points)))

	kept := make([]r3.Vector, 0, len(points))
	for i, p := range points {
		if meanDists[i] <= threshold {
			kept = append(kept, p)
		}
	}
	return kept
}
