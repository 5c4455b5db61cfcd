package regiondetection

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// projectContours lifts each pixel contour of a frame into 3D using the
// frame's organized cloud, after applying the frame transform to the cloud.
// Pixels registered to invalid cells are dropped in place; pixels outside
// the grid are an error. Returns the projected contours and the transformed
// cloud so later stages see points in the same space.
func projectContours(bundle DataBundle) ([][]r3.Vector, *OrganizedCloud, error) {
	if !bundle.Cloud.organized() {
		return nil, nil, ErrCloudNotOrganized
	}
	cloud := bundle.Cloud.transformed(bundle.Transform)
	projected := make([][]r3.Vector, 0, len(bundle.Contours))
	for i, contour := range bundle.Contours {
		if len(contour) == 0 {
			return nil, nil, errors.Wrapf(ErrEmptyContour, "contour %d", i)
		}
		pts := make([]r3.Vector, 0, len(contour))
		for _, px := range contour {
			if px.X < 0 || px.X >= cloud.Width || px.Y < 0 || px.Y >= cloud.Height {
				return nil, nil, errors.Wrapf(ErrContourOutOfBounds, "contour %d pixel (%d, %d)", i, px.X, px.Y)
			}
			p, ok := cloud.At(px.X, px.Y)
			if !ok {
				continue
			}
			pts = append(pts, p)
		}
		projected = append(projected, pts)
	}
	return projected, cloud, nil
}
