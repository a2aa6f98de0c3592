package config

import (
	"fmt"
	"strings"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
)

// Canonical aperture fractions relative to the void angular radius: the
// core probes the interior, the rim annulus straddles the edge.
const (
	defaultCoreFrac     = 0.6
	defaultRimInnerFrac = 0.8
	defaultRimOuterFrac = 1.2
)

const defaultMaskThreshold = 0.8

// MapConfig turns the raw YAML document into a domain MeasureConfig,
// overlaying file values on the documented defaults.
func MapConfig(path string, yc YAMLConfig) (domain.MeasureConfig, error) {
	cfg := domain.DefaultMeasureConfig()

	target, err := mapTarget(path, yc.Target)
	if err != nil {
		return domain.MeasureConfig{}, err
	}
	cfg.Target = target
	if name := strings.TrimSpace(yc.Target.Name); name != "" {
		cfg.TargetName = name
	}

	ap, err := mapAperture(path, yc.Aperture)
	if err != nil {
		return domain.MeasureConfig{}, err
	}
	cfg.Aperture = ap

	if yc.MinPix > 0 {
		cfg.MinPix = yc.MinPix
	}

	cfg.Maps = make([]domain.MapSpec, 0, len(yc.Maps))
	for i, m := range yc.Maps {
		inUK, err := parseUnit(m.Unit)
		if err != nil {
			return domain.MeasureConfig{}, invalidField(path, fmt.Sprintf("maps[%d].unit", i), err.Error())
		}
		cfg.Maps = append(cfg.Maps, domain.MapSpec{
			Label: m.Label,
			Path:  m.Path,
			Field: m.Field,
			InUK:  inUK,
		})
	}

	if yc.Mask != nil {
		threshold := defaultMaskThreshold
		if yc.Mask.Threshold != nil {
			threshold = *yc.Mask.Threshold
		}
		cfg.Mask = &domain.MaskSpec{
			Path:      yc.Mask.Path,
			Field:     yc.Mask.Field,
			Threshold: threshold,
		}
	}

	if yc.Bootstrap.Iterations > 0 {
		cfg.Bootstrap.Iterations = yc.Bootstrap.Iterations
	}
	if yc.Null.Trials > 0 {
		cfg.Null.Trials = yc.Null.Trials
	}
	cfg.Null.JitterDeg = yc.Null.JitterDeg
	cfg.Null.MinSepDeg = yc.Null.MinSepDeg
	if yc.Null.RetryBudget > 0 {
		cfg.Null.RetryBudget = yc.Null.RetryBudget
	}
	if yc.Null.MinTrials > 0 {
		cfg.Null.MinTrials = yc.Null.MinTrials
	}

	if yc.Seed != 0 {
		cfg.Seed = yc.Seed
	}
	cfg.Workers = yc.Workers
	if strings.TrimSpace(yc.RunsDir) != "" {
		cfg.RunsDir = yc.RunsDir
	}

	return cfg, nil
}

func mapTarget(path string, yt YAMLTarget) (domain.Direction, error) {
	hasGal := yt.GalL != nil || yt.GalB != nil
	hasEq := yt.RA != nil || yt.Dec != nil

	switch {
	case hasGal && hasEq:
		return domain.Direction{}, invalidField(path, "target",
			"give either gal_l/gal_b or ra_deg/dec_deg, not both")
	case hasGal:
		if yt.GalL == nil || yt.GalB == nil {
			return domain.Direction{}, invalidField(path, "target",
				"gal_l and gal_b must both be set")
		}
		return domain.NewDirection(*yt.GalL, *yt.GalB)
	case hasEq:
		if yt.RA == nil || yt.Dec == nil {
			return domain.Direction{}, invalidField(path, "target",
				"ra_deg and dec_deg must both be set")
		}
		return domain.FromEquatorial(*yt.RA, *yt.Dec)
	default:
		return domain.Direction{}, invalidField(path, "target",
			"target coordinates are required")
	}
}

func mapAperture(path string, ya YAMLAperture) (domain.Aperture, error) {
	explicit := ya.CoreDeg != nil || ya.RimInnerDeg != nil || ya.RimOuterDeg != nil

	if explicit {
		if ya.ThetaRDeg != nil {
			return domain.Aperture{}, invalidField(path, "aperture",
				"give either theta_r_deg or explicit radii, not both")
		}
		if ya.CoreDeg == nil || ya.RimInnerDeg == nil || ya.RimOuterDeg == nil {
			return domain.Aperture{}, invalidField(path, "aperture",
				"core_deg, rim_inner_deg and rim_outer_deg must all be set")
		}
		return domain.NewAperture(*ya.CoreDeg, *ya.RimInnerDeg, *ya.RimOuterDeg)
	}

	if ya.ThetaRDeg == nil {
		return domain.Aperture{}, invalidField(path, "aperture",
			"theta_r_deg or explicit radii are required")
	}

	core, rimIn, rimOut := defaultCoreFrac, defaultRimInnerFrac, defaultRimOuterFrac
	if ya.CoreFrac != nil {
		core = *ya.CoreFrac
	}
	if ya.RimInnerFrac != nil {
		rimIn = *ya.RimInnerFrac
	}
	if ya.RimOuterFrac != nil {
		rimOut = *ya.RimOuterFrac
	}
	return domain.ScaledAperture(*ya.ThetaRDeg, core, rimIn, rimOut)
}

func parseUnit(u string) (inUK bool, err error) {
	switch strings.ToLower(strings.TrimSpace(u)) {
	case "", "k", "kelvin":
		return false, nil
	case "uk", "µk", "microkelvin":
		return true, nil
	default:
		return false, fmt.Errorf("unsupported unit %q (want K or uK)", u)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
