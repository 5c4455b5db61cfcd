package regioncurve

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/rdk/logging"
)

// NormalField estimates one surface normal per voxel-downsampled point of a
// frame's source cloud and answers nearest-normal queries for arbitrary
// points. A field is built once per frame and discarded with it.
type NormalField struct {
	samples []NormalSample
	index   *SpatialIndex
}

// BuildNormalField downsamples the cloud by cfg.DownsampleLeafMm, estimates
// a normal for each surviving point from its radius neighborhood and
// orients every normal away from cfg.Viewpoint. Points with too few
// neighbors for a plane fit are skipped.
func BuildNormalField(cloud []r3.Vector, cfg NormalsConfig, logger logging.Logger) (*NormalField, error) {
	if len(cloud) == 0 {
		return nil, ErrEmptyPointSet
	}

	down := VoxelDownsample(cloud, cfg.DownsampleLeafMm)
	index := NewSpatialIndex(down, cfg.KDTreeEpsilon)

	samples := make([]NormalSample, 0, len(down))
	skipped := 0
	for _, p := range down {
		neighborIdx := index.Radius(p, cfg.SearchRadiusMm)
		if len(neighborIdx) < 3 {
			skipped++
			continue
		}
		neighbors := make([]r3.Vector, len(neighborIdx))
		for i, idx := range neighborIdx {
			neighbors[i] = down[idx]
		}
		normal, ok := planeNormalOf(neighbors)
		if !ok {
			skipped++
			continue
		}
		// Keep the field consistently oriented away from the viewpoint.
		if normal.Dot(cfg.Viewpoint.Sub(p)) > 0 {
			normal = normal.Mul(-1)
		}
		samples = append(samples, NormalSample{Point: p, Normal: normal})
	}
	if skipped > 0 {
		logger.Debugf("normal estimation skipped %d of %d downsampled points", skipped, len(down))
	}
	if len(samples) == 0 {
		return nil, ErrNoNormalSamples
	}

	positions := make([]r3.Vector, len(samples))
	for i, s := range samples {
		positions[i] = s.Point
	}
	return &NormalField{
		samples: samples,
		index:   NewSpatialIndex(positions, cfg.KDTreeEpsilon),
	}, nil
}

// Size returns the number of normal samples in the field.
func (f *NormalField) Size() int { return len(f.samples) }

// NormalAt returns the unit normal of the field sample nearest to p.
func (f *NormalField) NormalAt(p r3.Vector) (r3.Vector, error) {
	idx, _, ok := f.index.Nearest(p)
	if !ok {
		return r3.Vector{}, errors.Wrapf(ErrNoNearbyNormal, "at (%f, %f, %f)", p.X, p.Y, p.Z)
	}
	return f.samples[idx].Normal, nil
}

// planeNormalOf fits a plane to the neighborhood by PCA and returns its
// unit normal, the eigenvector of the smallest covariance eigenvalue.
func planeNormalOf(neighbors []r3.Vector) (r3.Vector, bool) {
	var cx, cy, cz float64
	for _, p := range neighbors {
		cx += p.X
		cy += p.Y
		cz += p.Z
	}
	n := float64(len(neighbors))
	cx /= n
	cy /= n
	cz /= n

	var cov [9]float64 // 3x3 row-major
	for _, p := range neighbors {
		dx := p.X - cx
		dy := p.Y - cy
		dz := p.Z - cz
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
		return r3.Vector{}, false
	}
	var vecs mat.Dense
	eigen.VectorsTo(&vecs)

	// Normal is the eigenvector of the smallest eigenvalue (column 0).
	normal := r3.Vector{X: vecs.At(0, 0), Y: vecs.At(1, 0), Z: vecs.At(2, 0)}
	norm := normal.Norm()
	if norm < 1e-12 {
		return r3.Vector{}, false
	}
	return normal.Mul(1 / norm), true
}
