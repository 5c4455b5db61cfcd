package regiondetection

import (
	"image"
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/rdk/pointcloud"
	"go.viam.com/rdk/spatialmath"
)

// OrganizedCloud is a depth-registered 3D point grid indexable by the same
// pixel coordinates as its source raster. Cells are stored row-major;
// invalid cells hold NaN coordinates.
type OrganizedCloud struct {
	Width  int
	Height int
	Points []r3.Vector
}

// At returns the 3D point registered at pixel (x, y). ok is false when the
// cell holds an invalid point.
func (c *OrganizedCloud) At(x, y int) (r3.Vector, bool) {
	p := c.Points[y*c.Width+x]
	if invalidPoint(p) {
		return r3.Vector{}, false
	}
	return p, true
}

// organized reports whether the grid dimensions match the storage.
func (c *OrganizedCloud) organized() bool {
	return c != nil && c.Width > 0 && c.Height > 0 && len(c.Points) == c.Width*c.Height
}

// transformed returns a copy of the cloud with pose applied to every valid
// cell, preserving the grid layout. A nil pose returns the cloud as is.
func (c *OrganizedCloud) transformed(pose spatialmath.Pose) *OrganizedCloud {
	if pose == nil {
		return c
	}
	out := &OrganizedCloud{
		Width:  c.Width,
		Height: c.Height,
		Points: make([]r3.Vector, len(c.Points)),
	}
	for i, p := range c.Points {
		if invalidPoint(p) {
			out.Points[i] = p
			continue
		}
		out.Points[i] = spatialmath.Compose(pose, spatialmath.NewPoseFromPoint(p)).Point()
	}
	return out
}

// validPoints collects every valid cell in raster order.
func (c *OrganizedCloud) validPoints() []r3.Vector {
	pts := make([]r3.Vector, 0, len(c.Points))
	for _, p := range c.Points {
		if invalidPoint(p) {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

func invalidPoint(p r3.Vector) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}

// DataBundle is the per-frame input: boundary pixel contours aligned with
// an organized point cloud, plus a rigid transform applied to the projected
// points before further processing. Contours are expected to arrive
// gap-filled, with no two consecutive pixels more than one apart.
type DataBundle struct {
	Contours  [][]image.Point
	Cloud     *OrganizedCloud
	Transform spatialmath.Pose
}

// RegionResults holds one ordered pose sequence per surviving region,
// index-aligned with the curve that produced it.
type RegionResults struct {
	ClosedRegionPoses [][]spatialmath.Pose
	OpenRegionPoses   [][]spatialmath.Pose
}

// PointCloud flattens every region's pose positions into a point cloud,
// handy for writing results out as a PCD for inspection.
func (r *RegionResults) PointCloud() (pointcloud.PointCloud, error) {
	cloud := pointcloud.New()
	regions := make([][]spatialmath.Pose, 0, len(r.ClosedRegionPoses)+len(r.OpenRegionPoses))
	regions = append(regions, r.ClosedRegionPoses...)
	regions = append(regions, r.OpenRegionPoses...)
	for _, region := range regions {
		for _, pose := range region {
			if err := cloud.Set(pose.Point(), nil); err != nil {
				return nil, err
			}
		}
	}
	return cloud, nil
}
