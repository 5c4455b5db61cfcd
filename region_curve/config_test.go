package regioncurve

import (
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate_RejectsNegativeDistance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Contour.SplitDistMm = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative split distance accepted")
	}
}

func TestValidate_RejectsZeroSearchRadius(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normals.SearchRadiusMm = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero normal search radius accepted")
	}
}

func TestValidate_OutlierOnlyWhenEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Outlier.Enable = false
	cfg.Outlier.MeanK = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled outlier settings validated: %v", err)
	}
	cfg.Outlier.Enable = true
	if err := cfg.Validate(); err == nil {
		t.Error("enabled outlier filter with MeanK 0 accepted")
	}
}

func TestParseConfig_OverridesDefaults(t *testing.T) {
	raw := map[string]interface{}{
		"contour": map[string]interface{}{
			"splitdistmm": "80",
		},
		"merge": map[string]interface{}{
			"minnumpoints": 4,
		},
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Contour.SplitDistMm != 80 {
		t.Errorf("SplitDistMm = %f, want 80", cfg.Contour.SplitDistMm)
	}
	if cfg.Merge.MinNumPoints != 4 {
		t.Errorf("MinNumPoints = %d, want 4", cfg.Merge.MinNumPoints)
	}
	// Untouched fields keep their defaults.
	if cfg.Contour.ClosedCurveMaxDistMm != DefaultConfig().Contour.ClosedCurveMaxDistMm {
		t.Errorf("ClosedCurveMaxDistMm changed to %f", cfg.Contour.ClosedCurveMaxDistMm)
	}
}

func TestParseConfig_RejectsInvalidResult(t *testing.T) {
	raw := map[string]interface{}{
		"normals": map[string]interface{}{
			"searchradiusmm": 0,
		},
	}
	if _, err := ParseConfig(raw); err == nil {
		t.Error("config with zero search radius accepted")
	}
}
