package regiondetection

import "errors"

var (
	// ErrNoInput means Compute was called with no frames.
	ErrNoInput = errors.New("no input frames provided")
	// ErrCloudNotOrganized means a frame's cloud dimensions do not match its storage.
	ErrCloudNotOrganized = errors.New("point cloud is not organized")
	// ErrEmptyContour means a frame carried a contour with no pixels.
	ErrEmptyContour = errors.New("contour has no points")
	// ErrContourOutOfBounds means a contour pixel falls outside the cloud grid.
	ErrContourOutOfBounds = errors.New("contour point outside cloud bounds")
	// ErrNoClosedRegions means the pipeline finished without a single closed region.
	ErrNoClosedRegions = errors.New("no closed regions detected")
)
