package config

import (
	"strings"
	"testing"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
)

func fptr(v float64) *float64 { return &v }

func validYAML() YAMLConfig {
	return YAMLConfig{
		Target:   YAMLTarget{Name: "bootes", GalL: fptr(79.66), GalB: fptr(59.92)},
		Aperture: YAMLAperture{ThetaRDeg: fptr(5)},
		Maps:     []YAMLMap{{Label: "smica", Path: "smica.fits"}},
	}
}

func TestMapConfigAppliesDefaults(t *testing.T) {
	cfg, err := MapConfig("gopvac.yaml", validYAML())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MinPix != 50 {
		t.Fatalf("min_pix default = %d", cfg.MinPix)
	}
	if cfg.Seed != domain.DefaultSeed {
		t.Fatalf("seed default = %d", cfg.Seed)
	}
	if cfg.Bootstrap.Iterations != 1000 || cfg.Null.Trials != 200 {
		t.Fatalf("statistical defaults wrong: %+v %+v", cfg.Bootstrap, cfg.Null)
	}
	// Unit omitted: Kelvin maps convert at load time.
	if cfg.Maps[0].InUK {
		t.Fatalf("expected Kelvin default")
	}
}

func TestMapConfigMaskThresholdDefault(t *testing.T) {
	yc := validYAML()
	yc.Mask = &YAMLMask{Path: "mask.fits"}

	cfg, err := MapConfig("gopvac.yaml", yc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mask.Threshold != 0.8 {
		t.Fatalf("mask threshold default = %v", cfg.Mask.Threshold)
	}
}

func TestMapConfigTargetRules(t *testing.T) {
	yc := validYAML()
	yc.Target.RA = fptr(222.5)
	if _, err := MapConfig("gopvac.yaml", yc); err == nil || !strings.Contains(err.Error(), "not both") {
		t.Fatalf("expected both-coordinate-systems rejection, got %v", err)
	}

	yc = validYAML()
	yc.Target.GalB = nil
	if _, err := MapConfig("gopvac.yaml", yc); err == nil || !strings.Contains(err.Error(), "gal_l and gal_b") {
		t.Fatalf("expected incomplete-pair rejection, got %v", err)
	}

	yc = validYAML()
	yc.Target = YAMLTarget{Name: "nowhere"}
	if _, err := MapConfig("gopvac.yaml", yc); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config for missing coordinates, got %v", err)
	}
}

func TestMapConfigExplicitAperture(t *testing.T) {
	yc := validYAML()
	yc.Aperture = YAMLAperture{
		CoreDeg:     fptr(2),
		RimInnerDeg: fptr(3),
		RimOuterDeg: fptr(5),
	}

	cfg, err := MapConfig("gopvac.yaml", yc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.Aperture{CoreDeg: 2, RimInnerDeg: 3, RimOuterDeg: 5}
	if cfg.Aperture != want {
		t.Fatalf("aperture = %+v, want %+v", cfg.Aperture, want)
	}
}

func TestMapConfigRejectsBadUnit(t *testing.T) {
	yc := validYAML()
	yc.Maps[0].Unit = "mK"
	if _, err := MapConfig("gopvac.yaml", yc); err == nil || !strings.Contains(err.Error(), "maps[0].unit") {
		t.Fatalf("expected unit rejection, got %v", err)
	}
}
