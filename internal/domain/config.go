package domain

import "fmt"

// MapSpec identifies one input sky map by its foreground-cleaning pipeline
// label and file location.
type MapSpec struct {
	Label string
	Path  string
	Field int
	InUK  bool // true when the map is already in µK; Kelvin maps scale by 1e6 at load
}

// MaskSpec identifies an optional keep-mask map; pixels with mask value below
// Threshold are excluded from every aperture.
type MaskSpec struct {
	Path      string
	Field     int
	Threshold float64
}

// BootstrapConfig controls the resampling uncertainty estimate.
type BootstrapConfig struct {
	Iterations int
}

// NullConfig controls the matched-latitude random-center null distribution.
type NullConfig struct {
	Trials      int
	JitterDeg   float64 // half-width of the latitude jitter band; 0 = exact matched latitude
	MinSepDeg   float64 // minimum separation of control centers from the target; 0 = rim outer radius
	RetryBudget int     // redraws allowed per trial before it is skipped
	MinTrials   int     // minimum surviving trials for a meaningful null; 0 = Trials/2
}

// MeasureConfig is one full measurement invocation: target, aperture
// geometry, input maps, and the statistical knobs.
type MeasureConfig struct {
	TargetName string
	Target     Direction
	Aperture   Aperture
	MinPix     int

	Maps []MapSpec
	Mask *MaskSpec

	Bootstrap BootstrapConfig
	Null      NullConfig

	Seed    uint64
	Workers int // 0 = GOMAXPROCS

	RunsDir string
}

// DefaultSeed keeps unseeded runs reproducible. 1981: the year the Boötes
// Void was reported.
const DefaultSeed uint64 = 1981

// DefaultMeasureConfig provides sane defaults matching the canonical
// Boötes setup; loaders overlay file values on top of it.
func DefaultMeasureConfig() MeasureConfig {
	return MeasureConfig{
		TargetName: "target",
		MinPix:     50,
		Bootstrap:  BootstrapConfig{Iterations: 1000},
		Null: NullConfig{
			Trials:      200,
			RetryBudget: 25,
		},
		Seed:    DefaultSeed,
		RunsDir: "runs",
	}
}

// Normalize resolves the zero-value knobs to their documented defaults.
func (c MeasureConfig) Normalize() MeasureConfig {
	out := c
	if out.MinPix <= 0 {
		out.MinPix = 50
	}
	if out.Null.MinSepDeg <= 0 {
		out.Null.MinSepDeg = out.Aperture.RimOuterDeg
	}
	if out.Null.RetryBudget <= 0 {
		out.Null.RetryBudget = 25
	}
	if out.Null.MinTrials <= 0 {
		out.Null.MinTrials = out.Null.Trials / 2
	}
	if out.Seed == 0 {
		out.Seed = DefaultSeed
	}
	if out.RunsDir == "" {
		out.RunsDir = "runs"
	}
	return out
}

// Validate rejects configurations that must abort before any map is touched.
func (c MeasureConfig) Validate() error {
	if err := c.Aperture.Validate(); err != nil {
		return err
	}
	if len(c.Maps) == 0 {
		return &OpError{
			Op:   "config.validate",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("at least one input map is required"),
		}
	}
	seen := map[string]bool{}
	for i, m := range c.Maps {
		if m.Path == "" {
			return &OpError{
				Op:   "config.validate",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("maps[%d]: path is required", i),
			}
		}
		if m.Label == "" {
			return &OpError{
				Op:   "config.validate",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("maps[%d]: label is required", i),
			}
		}
		if seen[m.Label] {
			return &OpError{
				Op:   "config.validate",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("duplicate map label %q", m.Label),
			}
		}
		seen[m.Label] = true
	}
	if c.Mask != nil && (c.Mask.Threshold < 0 || c.Mask.Threshold > 1) {
		return &OpError{
			Op:   "config.validate",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("mask threshold %v out of [0, 1]", c.Mask.Threshold),
		}
	}
	if c.Bootstrap.Iterations <= 0 {
		return &OpError{
			Op:   "config.validate",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("bootstrap iterations must be positive, got %d", c.Bootstrap.Iterations),
		}
	}
	if c.Null.Trials <= 0 {
		return &OpError{
			Op:   "config.validate",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("null trials must be positive, got %d", c.Null.Trials),
		}
	}
	return nil
}
