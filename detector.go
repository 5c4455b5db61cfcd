package regiondetection

import (
	"context"
	"fmt"

	"go.viam.com/rdk/logging"

	"github.com/ben-greenberg/Region-Detection/region_curve"
)

// RegionDetector turns per-frame boundary contours and organized point
// clouds into ordered, oriented boundary curves for each detected region.
type RegionDetector struct {
	cfg    regioncurve.Config
	logger logging.Logger
}

// NewRegionDetector validates cfg and builds a detector. A nil cfg uses the
// defaults.
func NewRegionDetector(cfg *regioncurve.Config, logger logging.Logger) (*RegionDetector, error) {
	if cfg == nil {
		c := regioncurve.DefaultConfig()
		cfg = &c
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RegionDetector{cfg: *cfg, logger: logger}, nil
}

// frameCurves is the per-frame intermediate state carried into the
// cross-frame merge.
type frameCurves struct {
	closed []regioncurve.Curve
	open   []regioncurve.Curve
}

// Compute runs the full pipeline over a set of frames. Every frame is
// processed independently up through per-frame simplification, then open
// curves are merged across frames and poses are synthesized for every
// surviving region. Returns ErrNoClosedRegions alongside the (open-only)
// results when no closed region was found.
func (d *RegionDetector) Compute(ctx context.Context, frames []DataBundle) (*RegionResults, error) {
	if len(frames) == 0 {
		return nil, ErrNoInput
	}

	var (
		allClosed []regioncurve.Curve
		allOpen   []regioncurve.Curve
		samples   []regioncurve.NormalSample
	)
	for i, frame := range frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fc, frameSamples, err := d.computeFrame(frame)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		d.logger.Debugf("frame %d: %d closed curves, %d open curves, %d normal samples",
			i, len(fc.closed), len(fc.open), len(frameSamples))
		allClosed = append(allClosed, fc.closed...)
		allOpen = append(allOpen, fc.open...)
		samples = append(samples, frameSamples...)
	}

	mergedClosed, mergedOpen, err := regioncurve.MergeOpenCurves(
		allOpen, d.cfg.Merge.MaxMergeDistMm, d.cfg.Merge.ClosedCurveMaxDistMm, d.logger)
	if err != nil {
		d.logger.Debugw("merging open curves produced no closed curves", "error", err)
	}
	allClosed = append(allClosed, mergedClosed...)

	allClosed = regioncurve.SimplifyByMinLength(allClosed, d.cfg.Merge.SimplificationMinDistMm)
	mergedOpen = regioncurve.SimplifyByMinLength(mergedOpen, d.cfg.Merge.SimplificationMinDistMm)
	allClosed = regioncurve.FilterMinPoints(allClosed, d.cfg.Merge.MinNumPoints)
	mergedOpen = regioncurve.FilterMinPoints(mergedOpen, d.cfg.Merge.MinNumPoints)

	results := &RegionResults{}
	if len(allClosed) > 0 || len(mergedOpen) > 0 {
		closedPoses, err := regioncurve.SynthesizePoses(allClosed, samples, d.cfg.Normals.KDTreeEpsilon, d.logger)
		if err != nil {
			return nil, err
		}
		openPoses, err := regioncurve.SynthesizePoses(mergedOpen, samples, d.cfg.Normals.KDTreeEpsilon, d.logger)
		if err != nil {
			return nil, err
		}
		results.ClosedRegionPoses = closedPoses
		results.OpenRegionPoses = openPoses
	}

	if len(results.ClosedRegionPoses) == 0 {
		return results, ErrNoClosedRegions
	}
	return results, nil
}

// computeFrame runs the per-frame portion of the pipeline and gathers one
// normal sample per surviving curve point.
func (d *RegionDetector) computeFrame(frame DataBundle) (frameCurves, []regioncurve.NormalSample, error) {
	contours, cloud, err := projectContours(frame)
	if err != nil {
		return frameCurves{}, nil, err
	}

	var fc frameCurves
	for _, contour := range contours {
		pts := contour
		if d.cfg.Outlier.Enable {
			pts = regioncurve.RemoveStatisticalOutliers(pts, d.cfg.Outlier.MeanK, d.cfg.Outlier.StdDevThresh)
		}
		pts = regioncurve.VoxelDownsample(pts, d.cfg.Contour.DownsampleLeafMm)
		if len(pts) == 0 {
			continue
		}

		seq := regioncurve.Sequence(pts, d.cfg.Contour.SequencingEpsilon, d.logger)
		segments := regioncurve.SplitByGap(seq, d.cfg.Contour.SplitDistMm)
		closed, open := regioncurve.ClassifyClosed(segments, d.cfg.Contour.ClosedCurveMaxDistMm)
		closed = regioncurve.SimplifyClosedCurves(closed, d.cfg.Contour, d.logger)
		fc.closed = append(fc.closed, closed...)
		fc.open = append(fc.open, open...)
	}

	if len(fc.closed) == 0 && len(fc.open) == 0 {
		return fc, nil, nil
	}

	field, err := regioncurve.BuildNormalField(cloud.validPoints(), d.cfg.Normals, d.logger)
	if err != nil {
		return frameCurves{}, nil, err
	}
	var samples []regioncurve.NormalSample
	for _, curves := range [][]regioncurve.Curve{fc.closed, fc.open} {
		for _, c := range curves {
			for _, p := range c.Points {
				n, err := field.NormalAt(p)
				if err != nil {
					return frameCurves{}, nil, err
				}
				samples = append(samples, regioncurve.NormalSample{Point: p, Normal: n})
			}
		}
	}
	return fc, samples, nil
}
