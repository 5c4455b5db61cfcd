package regioncurve

import (
	"math"

	"github.com/fogleman/delaunay"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// ConcaveHull simplifies a closed polygon to the boundary of its Delaunay
// alpha shape: the polygon is projected onto its best-fit plane, the
// triangulation is filtered to triangles whose circumradius is at most
// alpha, and the edges bounding the surviving triangles give the hull
// vertices. The returned points are an unordered subset of the input;
// callers re-sequence them.
func ConcaveHull(polygon Curve, alpha float64) ([]r3.Vector, error) {
	pts := polygon.Points
	// The duplicated closing point would collapse two triangulation sites.
	if polygon.Closed && len(pts) > 1 {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 4 {
		return nil, ErrDegenerateHull
	}

	origin, e1, e2, err := planeBasis(pts)
	if err != nil {
		return nil, err
	}

	sites := make([]delaunay.Point, len(pts))
	for i, p := range pts {
		d := p.Sub(origin)
		sites[i] = delaunay.Point{X: d.Dot(e1), Y: d.Dot(e2)}
	}
	tri, err := delaunay.Triangulate(sites)
	if err != nil {
		return nil, err
	}

	type edge struct{ a, b int }
	edgeCount := make(map[edge]int)
	kept := 0
	ts := tri.Triangles
	for t := 0; t < len(ts); t += 3 {
		a, b, c := ts[t], ts[t+1], ts[t+2]
		if circumradius(sites[a], sites[b], sites[c]) > alpha {
			continue
		}
		kept++
		for _, e := range [3]edge{{a, b}, {b, c}, {c, a}} {
			if e.a > e.b {
				e.a, e.b = e.b, e.a
			}
			edgeCount[e]++
		}
	}
	if kept == 0 {
		return nil, ErrDegenerateHull
	}

	// Edges used by exactly one surviving triangle bound the alpha shape.
	onHull := make(map[int]bool)
	for e, count := range edgeCount {
		if count == 1 {
			onHull[e.a] = true
			onHull[e.b] = true
		}
	}
	hull := make([]r3.Vector, 0, len(onHull))
	for i, p := range pts {
		if onHull[i] {
			hull = append(hull, p)
		}
	}
	if len(hull) < 3 {
		return nil, ErrDegenerateHull
	}
	return hull, nil
}

// planeBasis fits a plane to the points by PCA and returns its centroid and
// the two principal in-plane directions.
func planeBasis(pts []r3.Vector) (origin, e1, e2 r3.Vector, err error) {
	var cx, cy, cz float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
		cz += p.Z
	}
	n := float64(len(pts))
	origin = r3.Vector{X: cx / n, Y: cy / n, Z: cz / n}

	var cov [9]float64 // 3x3 row-major
	for _, p := range pts {
		dx := p.X - origin.X
		dy := p.Y - origin.Y
		dz := p.Z - origin.Z
		cov[0] += dx * dx
		cov[1] += dx * dy
		cov[2] += dx * dz
		cov[4] += dy * dy
		cov[5] += dy * dz
		cov[8] += dz * dz
	}
	cov[3], cov[6], cov[7] = cov[1], cov[2], cov[5]
	for i := range cov {
		cov[i] /= n
	}

	covMat := mat.NewSymDense(3, cov[:])
	var eigen mat.EigenSym
	if !eigen.Factorize(covMat, true) {
		return origin, e1, e2, ErrDegenerateHull
	}

	// Eigenvalues ascend; the two largest spread directions span the plane.
	vals := eigen.Values(nil)
	if vals[1] < 1e-12 {
		return origin, e1, e2, ErrDegenerateHull
	}
	var vecs mat.Dense
	eigen.VectorsTo(&vecs)
	e1 = r3.Vector{X: vecs.At(0, 2), Y: vecs.At(1, 2), Z: vecs.At(2, 2)}
	e2 = r3.Vector{X: vecs.At(0, 1), Y: vecs.At(1, 1), Z: vecs.At(2, 1)}
	return origin, e1, e2, nil
}

func circumradius(a, b, c delaunay.Point) float64 {
	la := math.Hypot(b.X-a.X, b.Y-a.Y)
	lb := math.Hypot(c.X-b.X, c.Y-b.Y)
	lc := math.Hypot(a.X-c.X, a.Y-c.Y)
	area := math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
	if area < 1e-12 {
		return math.Inf(1)
	}
	return la * lb * lc / (4 * area)
}
