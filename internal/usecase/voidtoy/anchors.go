package voidtoy

import (
	"fmt"
	"math"
	"sort"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
)

// Anchor is a calibration preset: a fixed (radius, redshift, amplitude)
// triple that sets the absolute scale of the prediction. Anchors are not
// derived from the measurement itself.
type Anchor struct {
	RCalMpc     float64
	ZCal        float64
	DeltaTCalUK float64
	DeltaCalAbs float64
}

// DefaultAnchor is the preset used when none is named.
const DefaultAnchor = "A1_lowz"

var anchors = map[string]Anchor{
	"baseline":     {RCalMpc: 80.0, ZCal: 0.5, DeltaTCalUK: 10.0, DeltaCalAbs: 0.3},
	"A1_lowz":      {RCalMpc: 55.0, ZCal: 0.3, DeltaTCalUK: 10.0, DeltaCalAbs: 0.3},
	"A2_lowz_band": {RCalMpc: 55.0, ZCal: 0.3, DeltaTCalUK: 8.0, DeltaCalAbs: 0.3},
}

// AnchorByName looks up a calibration preset.
func AnchorByName(name string) (Anchor, error) {
	a, ok := anchors[name]
	if !ok {
		return Anchor{}, &domain.OpError{
			Op:   "voidtoy.anchor",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("unknown anchor preset %q (known: %v)", name, AnchorNames()),
		}
	}
	return a, nil
}

// AnchorNames lists the known presets, sorted.
func AnchorNames() []string {
	names := make([]string, 0, len(anchors))
	for n := range anchors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CalibrateVc solves the coherence volume Vc from the anchor constraint
// ΔT_cal = k·R_cal²·f_ent·wΓ(g_cal)·√(V(R_cal)/Vc).
func CalibrateVc(preset string, p Params) (float64, error) {
	a, err := AnchorByName(preset)
	if err != nil {
		return 0, err
	}

	k := KISW(p)
	w := WGamma(G(a.ZCal, a.DeltaCalAbs, p))
	v := SphereVolumeM3(a.RCalMpc * domain.MpcInMeters)

	denom := k * a.RCalMpc * a.RCalMpc * p.FEnt * w
	if denom <= 0 || math.IsNaN(denom) {
		return 0, &domain.OpError{
			Op:   "voidtoy.calibrate",
			Kind: domain.KindDomain,
			Err:  fmt.Errorf("degenerate calibration denominator %v for preset %q", denom, preset),
		}
	}

	ratio := a.DeltaTCalUK / denom
	return v / (ratio * ratio), nil
}
