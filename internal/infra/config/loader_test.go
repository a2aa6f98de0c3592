package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
)

func TestLoadMeasureConfig(t *testing.T) {
	path := filepath.Join("testdata", "gopvac.yaml")
	cfg, err := LoadMeasureConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TargetName != "bootes_void" {
		t.Fatalf("target name = %q", cfg.TargetName)
	}
	// The file gives equatorial coordinates; the loader rotates them.
	if math.Abs(cfg.Target.LonDeg-79.6582) > 1e-3 || math.Abs(cfg.Target.LatDeg-59.9222) > 1e-3 {
		t.Fatalf("galactic target = %v", cfg.Target)
	}

	// theta_R = 5° with the canonical 0.6/0.8/1.2 fractions.
	if cfg.Aperture.CoreDeg != 3 || cfg.Aperture.RimInnerDeg != 4 || cfg.Aperture.RimOuterDeg != 6 {
		t.Fatalf("aperture = %+v", cfg.Aperture)
	}

	if len(cfg.Maps) != 2 {
		t.Fatalf("expected two maps, got %d", len(cfg.Maps))
	}
	if cfg.Maps[0].InUK || !cfg.Maps[1].InUK {
		t.Fatalf("unit flags wrong: %+v", cfg.Maps)
	}

	if cfg.Mask == nil || cfg.Mask.Threshold != 0.8 {
		t.Fatalf("mask = %+v", cfg.Mask)
	}
	if cfg.Bootstrap.Iterations != 500 {
		t.Fatalf("bootstrap iterations = %d", cfg.Bootstrap.Iterations)
	}
	if cfg.Null.Trials != 150 || cfg.Null.JitterDeg != 1.5 || cfg.Null.RetryBudget != 30 {
		t.Fatalf("null config = %+v", cfg.Null)
	}
	if cfg.Seed != 7 || cfg.RunsDir != "out" {
		t.Fatalf("seed=%d runs_dir=%q", cfg.Seed, cfg.RunsDir)
	}
}

func TestLoadMeasureConfigInvalid(t *testing.T) {
	path := filepath.Join("testdata", "gopvac_invalid.yaml")
	_, err := LoadMeasureConfig(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "aperture") {
		t.Fatalf("expected aperture field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadMeasureConfigExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("GOPVAC_DATA", "/data/cmb")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gopvac.yaml")
	content := `target:
  name: bootes
  gal_l: 79.66
  gal_b: 59.92
aperture:
  theta_r_deg: 5.0
maps:
  - label: smica
    path: "{{GOPVAC_DATA}}/smica.fits"
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadMeasureConfig(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Maps[0].Path != "/data/cmb/smica.fits" {
		t.Fatalf("path = %q", cfg.Maps[0].Path)
	}
}

func TestLoadMeasureConfigMissingFile(t *testing.T) {
	_, err := LoadMeasureConfig(filepath.Join("testdata", "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
