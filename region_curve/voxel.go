package regioncurve

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
)

// voxelCoords addresses one cell of a voxel grid.
type voxelCoords struct {
	i, j, k int
}

// VoxelDownsample replaces all points falling inside one leaf-sized voxel
// with their centroid. Output is ordered by voxel coordinate so the result
// is deterministic regardless of input order. A leaf size of 0 or less
// returns the input unchanged.
func VoxelDownsample(points []r3.Vector, leaf float64) []r3.Vector {
	if leaf <= 0 || len(points) == 0 {
		return points
	}

	min := points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		min.Z = math.Min(min.Z, p.Z)
	}

	type cell struct {
		sum r3.Vector
		n   int
	}
	cells := make(map[voxelCoords]*cell)
	for _, p := range points {
		vc := voxelCoords{
			i: int(math.Floor((p.X - min.X) / leaf)),
			j: int(math.Floor((p.Y - min.Y) / leaf)),
			k: int(math.Floor((p.Z - min.Z) / leaf)),
		}
		c, ok := cells[vc]
		if !ok {
			c = &cell{}
			cells[vc] = c
		}
		c.sum = c.sum.Add(p)
		c.n++
	}

	coords := make([]voxelCoords, 0, len(cells))
	for vc := range cells {
		coords = append(coords, vc)
	}
	sort.Slice(coords, func(a, b int) bool {
		va, vb := coords[a], coords[b]
		if va.i != vb.i {
			return va.i < vb.i
		}
		if va.j != vb.j {
			return va.j < vb.j
		}
		return va.k < vb.k
	})

	out := make([]r3.Vector, 0, len(coords))
	for _, vc := range coords {
		c := cells[vc]
		out = append(out, c.sum.Mul(1/float64(c.n)))
	}
	return out
}
