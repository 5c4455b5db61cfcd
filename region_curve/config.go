package regioncurve

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/golang/geo/r3"
)

// Config holds all configuration for the region detection pipeline.
type Config struct {
	Contour ContourConfig
	Merge   MergeConfig
	Normals NormalsConfig
	Outlier OutlierConfig
}

// ContourConfig holds parameters for the per-frame contour stages:
// sequencing, gap splitting, closed-curve classification and hull
// simplification.
type ContourConfig struct {
	SequencingEpsilon       float64 // Approximate-search tolerance for nearest-neighbor queries
	DownsampleLeafMm        float64 // Voxel leaf for pre-sequencing contour downsampling; 0 disables
	SplitDistMm             float64 // Gap distance at which a sequenced curve is split
	ClosedCurveMaxDistMm    float64 // Endpoint distance below which a run closes on itself
	SimplificationAlphaMm   float64 // Maximum edge length for concave-hull simplification
	SimplificationMinPoints int     // Minimum point count before hull simplification applies
}

// MergeConfig holds parameters for the cross-frame merge and the final
// reductions.
type MergeConfig struct {
	ClosedCurveMaxDistMm    float64 // Endpoint distance below which a merged curve is closed
	MaxMergeDistMm          float64 // Endpoint distance above which two curves never merge
	SimplificationMinDistMm float64 // Minimum spacing kept by length-based decimation
	MinNumPoints            int     // Curves with fewer points are dropped from the results
}

// NormalsConfig holds parameters for normal field construction and lookup.
type NormalsConfig struct {
	DownsampleLeafMm float64   // Voxel leaf for downsampling the source cloud
	SearchRadiusMm   float64   // Neighborhood radius for the per-point plane fit
	KDTreeEpsilon    float64   // Approximate-search tolerance for normal lookups
	Viewpoint        r3.Vector // Normals are oriented away from this point
}

// OutlierConfig holds parameters for the optional statistical cleanup of
// projected contour points.
type OutlierConfig struct {
	Enable       bool
	MeanK        int     // Neighbor count for the mean-distance statistic
	StdDevThresh float64 // Standard-deviation multiplier over the population mean
}

// DefaultConfig returns a Config with workable defaults for
// millimeter-scale scan data.
func DefaultConfig() Config {
	return Config{
		Contour: ContourConfig{
			SequencingEpsilon:       1e-5,
			DownsampleLeafMm:        0,
			SplitDistMm:             60.0,
			ClosedCurveMaxDistMm:    10.0,
			SimplificationAlphaMm:   40.0,
			SimplificationMinPoints: 10,
		},
		Merge: MergeConfig{
			ClosedCurveMaxDistMm:    10.0,
			MaxMergeDistMm:          15.0,
			SimplificationMinDistMm: 5.0,
			MinNumPoints:            10,
		},
		Normals: NormalsConfig{
			DownsampleLeafMm: 10.0,
			SearchRadiusMm:   25.0,
			KDTreeEpsilon:    1e-5,
			Viewpoint:        r3.Vector{X: 0, Y: 0, Z: 1000.0},
		},
		Outlier: OutlierConfig{
			Enable:       false,
			MeanK:        50,
			StdDevThresh: 1.0,
		},
	}
}

// Validate rejects thresholds that would make the pipeline meaningless.
// It runs before any compute call.
func (c Config) Validate() error {
	distances := map[string]float64{
		"Contour.SequencingEpsilon":       c.Contour.SequencingEpsilon,
		"Contour.DownsampleLeafMm":        c.Contour.DownsampleLeafMm,
		"Contour.SplitDistMm":             c.Contour.SplitDistMm,
		"Contour.ClosedCurveMaxDistMm":    c.Contour.ClosedCurveMaxDistMm,
		"Contour.SimplificationAlphaMm":   c.Contour.SimplificationAlphaMm,
		"Merge.ClosedCurveMaxDistMm":      c.Merge.ClosedCurveMaxDistMm,
		"Merge.MaxMergeDistMm":            c.Merge.MaxMergeDistMm,
		"Merge.SimplificationMinDistMm":   c.Merge.SimplificationMinDistMm,
		"Normals.DownsampleLeafMm":        c.Normals.DownsampleLeafMm,
		"Normals.SearchRadiusMm":          c.Normals.SearchRadiusMm,
		"Normals.KDTreeEpsilon":           c.Normals.KDTreeEpsilon,
	}
	for name, v := range distances {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %f", name, v)
		}
	}
	if c.Normals.SearchRadiusMm == 0 {
		return fmt.Errorf("Normals.SearchRadiusMm must be positive")
	}
	if c.Contour.SimplificationMinPoints < 0 {
		return fmt.Errorf("Contour.SimplificationMinPoints must not be negative, got %d", c.Contour.SimplificationMinPoints)
	}
	if c.Merge.MinNumPoints < 0 {
		return fmt.Errorf("Merge.MinNumPoints must not be negative, got %d", c.Merge.MinNumPoints)
	}
	if c.Outlier.Enable {
		if c.Outlier.MeanK < 1 {
			return fmt.Errorf("Outlier.MeanK must be at least 1, got %d", c.Outlier.MeanK)
		}
		if c.Outlier.StdDevThresh < 0 {
			return fmt.Errorf("Outlier.StdDevThresh must not be negative, got %f", c.Outlier.StdDevThresh)
		}
	}
	return nil
}

// ParseConfig decodes raw option values over the defaults and validates
// the result. Unknown keys are ignored.
func ParseConfig(raw map[string]interface{}) (*Config, error) {
	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("build config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
