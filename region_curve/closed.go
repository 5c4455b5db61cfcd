package regioncurve

// ClassifyClosed files each sequenced curve as closed or open by the
// distance between its endpoints. A closed curve gets its first point
// duplicated onto the end to close the loop; open curves pass through
// unchanged.
func ClassifyClosed(curves []Curve, maxDist float64) (closed, open []Curve) {
	for _, c := range curves {
		if c.Len() == 0 {
			continue
		}
		if c.Front().Sub(c.Back()).Norm() < maxDist {
			closed = append(closed, closeCurve(c))
		} else {
			open = append(open, c)
		}
	}
	return closed, open
}

func closeCurve(c Curve) Curve {
	c.Points = append(c.Points, c.Front())
	c.Closed = true
	return c
}
