package regioncurve

import "github.com/golang/geo/r3"

// Curve is an ordered sequence of 3D points representing a traversal path.
// A closed curve carries its first point duplicated at the end.
type Curve struct {
	Points []r3.Vector
	Closed bool
}

// Len returns the number of points in the curve.
func (c Curve) Len() int { return len(c.Points) }

// Front returns the first point of the curve.
func (c Curve) Front() r3.Vector { return c.Points[0] }

// Back returns the last point of the curve.
func (c Curve) Back() r3.Vector { return c.Points[len(c.Points)-1] }

// Clone returns a deep copy of the curve.
func (c Curve) Clone() Curve {
	pts := make([]r3.Vector, len(c.Points))
	copy(pts, c.Points)
	return Curve{Points: pts, Closed: c.Closed}
}

// Reverse flips the traversal order in place.
func (c *Curve) Reverse() {
	for i, j := 0, len(c.Points)-1; i < j; i, j = i+1, j-1 {
		c.Points[i], c.Points[j] = c.Points[j], c.Points[i]
	}
}

// NormalSample pairs a curve point with the unit surface normal sampled at
// it from a frame's normal field.
type NormalSample struct {
	Point  r3.Vector
	Normal r3.Vector
}
