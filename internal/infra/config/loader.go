package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/app/template"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/ports"
)

func LoadMeasureConfig(path string) (domain.MeasureConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.MeasureConfig{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.MeasureConfig{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	cfg, err := MapConfig(path, dto)
	if err != nil {
		return domain.MeasureConfig{}, err
	}
	if err := expandPaths(&cfg, envVars()); err != nil {
		return domain.MeasureConfig{}, err
	}
	return cfg, nil
}

// expandPaths resolves {{VAR}} placeholders in file paths against the
// process environment, so configs can stay portable across machines.
func expandPaths(cfg *domain.MeasureConfig, vars map[string]string) error {
	var err error
	for i := range cfg.Maps {
		if cfg.Maps[i].Path, err = template.RenderString(cfg.Maps[i].Path, vars); err != nil {
			return err
		}
	}
	if cfg.Mask != nil {
		if cfg.Mask.Path, err = template.RenderString(cfg.Mask.Path, vars); err != nil {
			return err
		}
	}
	if cfg.RunsDir, err = template.RenderString(cfg.RunsDir, vars); err != nil {
		return err
	}
	return nil
}

func envVars() map[string]string {
	env := os.Environ()
	vars := make(map[string]string, len(env))
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return vars
}

// Loader adapts the package functions to the ConfigLoader port.
type Loader struct{}

var _ ports.ConfigLoader = Loader{}

func (Loader) LoadMeasureConfig(path string) (domain.MeasureConfig, error) {
	return LoadMeasureConfig(path)
}
