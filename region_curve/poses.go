package regioncurve

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/spatialmath"
)

// SynthesizePoses builds one 6-DOF pose per curve point: x along the local
// tangent, z along the sampled surface normal, y completing a right-handed
// frame. The final point of a curve reuses the tangent of its preceding
// segment with the direction sign flipped. samples is the accumulated
// curve-point normal collection; the sample nearest to each point supplies
// its surface normal. Curves with fewer than two points carry no tangent
// and are skipped.
func SynthesizePoses(curves []Curve, samples []NormalSample, kdtreeEpsilon float64, logger logging.Logger) ([][]spatialmath.Pose, error) {
	if len(curves) == 0 {
		return nil, nil
	}
	if len(samples) == 0 {
		return nil, ErrNoNormalSamples
	}

	positions := make([]r3.Vector, len(samples))
	for i, s := range samples {
		positions[i] = s.Point
	}
	index := NewSpatialIndex(positions, kdtreeEpsilon)

	poses := make([][]spatialmath.Pose, 0, len(curves))
	for ci, c := range curves {
		if c.Len() < 2 {
			logger.Debugf("skipping pose synthesis for curve %d with %d points", ci, c.Len())
			continue
		}
		logger.Debugf("computing pose orientation vectors for curve %d with %d points", ci, c.Len())

		curvePoses := make([]spatialmath.Pose, 0, c.Len())
		for i := range c.Points {
			next := i + 1
			dir := 1.0
			if next >= c.Len() {
				next = i - 1
				dir = -1.0
			}

			sampleIdx, _, ok := index.Nearest(c.Points[i])
			if !ok {
				return nil, errors.Wrap(ErrNoNearbyNormal, "pose computation")
			}

			p1 := c.Points[i]
			p2 := c.Points[next]

			xDir := p2.Sub(p1).Normalize().Mul(dir)
			zDir := samples[sampleIdx].Normal.Normalize()
			yDir := zDir.Cross(xDir).Normalize()
			// Re-orthogonalize so the basis stays exact despite sampling noise.
			zDir = xDir.Cross(yDir).Normalize()

			rot, err := spatialmath.NewRotationMatrix([]float64{
				xDir.X, yDir.X, zDir.X,
				xDir.Y, yDir.Y, zDir.Y,
				xDir.Z, yDir.Z, zDir.Z,
			})
			if err != nil {
				return nil, err
			}
			curvePoses = append(curvePoses, spatialmath.NewPose(p1, rot))
		}
		poses = append(poses, curvePoses)
	}
	return poses, nil
}
