package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
)

type fakeConfigLoader struct {
	cfg domain.MeasureConfig
	err error
}

func (f fakeConfigLoader) LoadMeasureConfig(string) (domain.MeasureConfig, error) {
	return f.cfg, f.err
}

func statOK(string) (os.FileInfo, error)      { return nil, nil }
func statMissing(string) (os.FileInfo, error) { return nil, os.ErrNotExist }

func TestValidateConfigPasses(t *testing.T) {
	cfg := baseConfig(t, "smica", "nilc")
	uc := NewValidateConfig(fakeConfigLoader{cfg: cfg}, WithStat(statOK))

	got, err := uc.Execute(context.Background(), "gopvac.yaml")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// Defaults are resolved on the way out.
	if got.Seed != domain.DefaultSeed {
		t.Fatalf("seed = %d, want default %d", got.Seed, domain.DefaultSeed)
	}
	if got.Null.MinSepDeg != cfg.Aperture.RimOuterDeg {
		t.Fatalf("min separation = %v, want rim outer %v", got.Null.MinSepDeg, cfg.Aperture.RimOuterDeg)
	}
}

func TestValidateConfigRejectsBadGeometry(t *testing.T) {
	cfg := baseConfig(t, "smica")
	cfg.Aperture.RimOuterDeg = cfg.Aperture.RimInnerDeg // degenerate annulus

	uc := NewValidateConfig(fakeConfigLoader{cfg: cfg}, WithStat(statOK))
	if _, err := uc.Execute(context.Background(), "gopvac.yaml"); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestValidateConfigMissingMapFile(t *testing.T) {
	cfg := baseConfig(t, "smica")
	uc := NewValidateConfig(fakeConfigLoader{cfg: cfg}, WithStat(statMissing))

	_, err := uc.Execute(context.Background(), "gopvac.yaml")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestValidateConfigLoaderErrorPropagates(t *testing.T) {
	loadErr := fmt.Errorf("unreadable config")
	uc := NewValidateConfig(fakeConfigLoader{err: loadErr}, WithStat(statOK))

	_, err := uc.Execute(context.Background(), "gopvac.yaml")
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
}

func TestValidateConfigContextCancelled(t *testing.T) {
	cfg := baseConfig(t, "smica")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewValidateConfig(fakeConfigLoader{cfg: cfg}, WithStat(statOK))
	_, err := uc.Execute(ctx, "gopvac.yaml")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
