package regioncurve

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// SpatialIndex answers nearest-neighbor queries over a point slice and can
// be rebuilt over an arbitrary subset of it. Query results are indices into
// the original slice, so callers keep their own ordering.
type SpatialIndex struct {
	points []r3.Vector
	eps    float64
	tree   *kdtree.Tree
}

// NewSpatialIndex builds an index over every point in the slice. eps is an
// approximate-search tolerance accepted for parity with FLANN-style
// indices; lookups here are exact, which satisfies any non-negative
// tolerance.
func NewSpatialIndex(points []r3.Vector, eps float64) *SpatialIndex {
	s := &SpatialIndex{points: points, eps: eps}
	all := make([]int, len(points))
	for i := range all {
		all[i] = i
	}
	s.Rebuild(all)
	return s
}

// Rebuild re-indexes the given subset of the original point slice.
// Queries against an empty subset report no neighbors.
func (s *SpatialIndex) Rebuild(indices []int) {
	if len(indices) == 0 {
		s.tree = nil
		return
	}
	tagged := make(indexedPoints, 0, len(indices))
	for _, idx := range indices {
		tagged = append(tagged, indexedPoint{pos: s.points[idx], idx: idx})
	}
	s.tree = kdtree.New(tagged, false)
}

// Nearest returns the index of the indexed point closest to p and its
// distance. ok is false when the index holds no points.
func (s *SpatialIndex) Nearest(p r3.Vector) (int, float64, bool) {
	if s.tree == nil {
		return 0, 0, false
	}
	c, sq := s.tree.Nearest(indexedPoint{pos: p, idx: -1})
	ip, ok := c.(indexedPoint)
	if !ok {
		return 0, 0, false
	}
	return ip.idx, math.Sqrt(sq), true
}

// NearestK returns the indices of up to k indexed points closest to p, in
// no particular order.
func (s *SpatialIndex) NearestK(p r3.Vector, k int) []int {
	if s.tree == nil || k <= 0 {
		return nil
	}
	keep := kdtree.NewNKeeper(k)
	s.tree.NearestSet(keep, indexedPoint{pos: p, idx: -1})
	out := make([]int, 0, keep.Heap.Len())
	for _, c := range keep.Heap {
		ip, ok := c.Comparable.(indexedPoint)
		if !ok {
			continue
		}
		out = append(out, ip.idx)
	}
	return out
}

// Radius returns the indices of all indexed points within r of p, in no
// particular order. A point exactly at p is included.
func (s *SpatialIndex) Radius(p r3.Vector, r float64) []int {
	if s.tree == nil || r < 0 {
		return nil
	}
	keep := kdtree.NewDistKeeper(r * r)
	s.tree.NearestSet(keep, indexedPoint{pos: p, idx: -1})
	out := make([]int, 0, keep.Heap.Len())
	for _, c := range keep.Heap {
		ip, ok := c.Comparable.(indexedPoint)
		if !ok {
			continue
		}
		out = append(out, ip.idx)
	}
	return out
}

// indexedPoint tags a position with its index into the source slice so
// tree queries can be mapped back to the caller's ordering.
type indexedPoint struct {
	pos r3.Vector
	idx int
}

func (p indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	switch d {
	case 0:
		return p.pos.X - q.pos.X
	case 1:
		return p.pos.Y - q.pos.Y
	case 2:
		return p.pos.Z - q.pos.Z
	default:
		panic("illegal dimension")
	}
}

func (p indexedPoint) Dims() int { return 3 }

func (p indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	diff := p.pos.Sub(q.pos)
	return diff.X*diff.X + diff.Y*diff.Y + diff.Z*diff.Z
}

// indexedPoints satisfies kdtree.Interface.
type indexedPoints []indexedPoint

func (ps indexedPoints) Index(i int) kdtree.Comparable { return ps[i] }

func (ps indexedPoints) Len() int { return len(ps) }

func (ps indexedPoints) Slice(start, end int) kdtree.Interface { return ps[start:end] }

func (ps indexedPoints) Pivot(d kdtree.Dim) int {
	ph := pointsHelper{indexedPoints: ps, Dim: d}
	return ph.Pivot()
}

// pointsHelper is required to help indexedPoints
type pointsHelper struct {
	kdtree.Dim
	indexedPoints
}

func (ph pointsHelper) Less(i, j int) bool {
	switch ph.Dim {
	case 0:
		return ph.indexedPoints[i].pos.X < ph.indexedPoints[j].pos.X
	case 1:
		return ph.indexedPoints[i].pos.Y < ph.indexedPoints[j].pos.Y
	case 2:
		return ph.indexedPoints[i].pos.Z < ph.indexedPoints[j].pos.Z
	default:
		panic("illegal dimension")
	}
}

func (ph pointsHelper) Pivot() int {
	return kdtree.Partition(ph, kdtree.MedianOfMedians(ph))
}

func (ph pointsHelper) Slice(start, end int) kdtree.SortSlicer {
	ph.indexedPoints = ph.indexedPoints[start:end]
	return ph
}

func (ph pointsHelper) Swap(i, j int) {
	ph.indexedPoints[i], ph.indexedPoints[j] = ph.indexedPoints[j], ph.indexedPoints[i]
}
