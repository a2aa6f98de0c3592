package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/ports"
)

type ValidateConfig struct {
	configs ports.ConfigLoader
	stat    func(string) (os.FileInfo, error)
}

type ValidateOption func(*ValidateConfig)

// WithStat replaces the file-existence probe; tests use it to validate
// configurations that reference maps not present on disk.
func WithStat(stat func(string) (os.FileInfo, error)) ValidateOption {
	return func(uc *ValidateConfig) {
		if stat != nil {
			uc.stat = stat
		}
	}
}

func NewValidateConfig(cl ports.ConfigLoader, opts ...ValidateOption) *ValidateConfig {
	uc := &ValidateConfig{
		configs: cl,
		stat:    os.Stat,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute checks a configuration without opening any map: it loads the file,
// applies defaults, runs the structural validation, and verifies that every
// referenced map (and the mask, when set) exists on disk.
func (uc *ValidateConfig) Execute(ctx context.Context, configPath string) (domain.MeasureConfig, error) {
	cfg, err := uc.configs.LoadMeasureConfig(configPath)
	if err != nil {
		return domain.MeasureConfig{}, err
	}

	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return domain.MeasureConfig{}, err
	}

	for _, m := range cfg.Maps {
		if err := ctx.Err(); err != nil {
			return domain.MeasureConfig{}, err
		}
		if err := uc.exists(m.Path); err != nil {
			return domain.MeasureConfig{}, fmt.Errorf("map %q: %w", m.Label, err)
		}
	}
	if cfg.Mask != nil {
		if err := uc.exists(cfg.Mask.Path); err != nil {
			return domain.MeasureConfig{}, fmt.Errorf("mask: %w", err)
		}
	}

	return cfg, nil
}

func (uc *ValidateConfig) exists(path string) error {
	if _, err := uc.stat(path); err != nil {
		return &domain.OpError{
			Op:   "config.validate",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
