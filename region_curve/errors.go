package regioncurve

import "errors"

var (
	// ErrNoClosedCurves is returned when a merge pass produces no closed curves.
	ErrNoClosedCurves = errors.New("found no closed curves")

	// ErrEmptyPointSet is returned when an operation needs at least one point.
	ErrEmptyPointSet = errors.New("point set is empty")

	// ErrNoNormalSamples is returned when normal estimation yields no usable samples.
	ErrNoNormalSamples = errors.New("normal field has no samples")

	// ErrNoNearbyNormal is returned when no normal sample is found near a curve point.
	ErrNoNearbyNormal = errors.New("no normal sample near curve point")

	// ErrDegenerateHull is returned when concave-hull simplification cannot
	// produce a valid boundary for a polygon.
	ErrDegenerateHull = errors.New("concave hull is degenerate")
)
