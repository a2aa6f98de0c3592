// Package voidtoy implements the GoP void–CMB toy model: the local regime
// mapping g(z,|δ|), the bell-curve decoherence weight wΓ, the ISW-like
// baseline coefficient, the √(V/Vc) aggregation amplitude, and the anchor
// calibration that fixes the coherence volume Vc.
package voidtoy

import (
	"fmt"
	"math"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
)

// Params are the toy-model knobs. Zero value is not usable; start from
// DefaultParams.
type Params struct {
	H0KmSMpc float64
	OmegaM0  float64
	DDecay   float64 // effective potential-decay factor
	FEnt     float64 // entanglement fraction
	ZRef     float64
	DeltaRef float64
	NExp     float64
}

// DefaultParams returns the repo-consistent defaults.
func DefaultParams() Params {
	return Params{
		H0KmSMpc: 67.4,
		OmegaM0:  0.315,
		DDecay:   0.1,
		FEnt:     0.20,
		ZRef:     0.5,
		DeltaRef: 0.3,
		NExp:     3.0,
	}
}

// G evaluates the regime variable g(z,|δ|) = (|δ|/δ_ref)·((1+z)/(1+z_ref))^n.
func G(z, deltaAbs float64, p Params) float64 {
	return (deltaAbs / p.DeltaRef) * math.Pow((1+z)/(1+p.ZRef), p.NExp)
}

// WGamma is the bell-curve decoherence weight wΓ(g) = g·e^(1−g),
// peaking at g=1 with wΓ=1.
func WGamma(g float64) float64 {
	return g * math.Exp(1-g)
}

// SphereVolumeM3 is the volume of a sphere of radius rM meters.
func SphereVolumeM3(rM float64) float64 {
	return 4.0 / 3.0 * math.Pi * rM * rM * rM
}

// KISW is the baseline coefficient k in ΔT_µK ≈ k·R_Mpc², from
// |Φ0| ≈ 0.5·Ωm·H0²·|δ_ref|·R² and ΔT ≈ 2·Tcmb·(|Φ0|/c²)·D_decay.
func KISW(p Params) float64 {
	h0 := domain.HubbleSI(p.H0KmSMpc)
	kKPerM2 := 2 * domain.TCMB * (0.5 * p.OmegaM0 * h0 * h0 * p.DeltaRef) /
		(domain.SpeedOfLight * domain.SpeedOfLight) * p.DDecay
	return kKPerM2 * domain.KelvinToMicroK * domain.MpcInMeters * domain.MpcInMeters
}

// AGoP is the aggregation amplitude f_ent·wΓ(g(z,|δ|))·√(V(R)/Vc).
func AGoP(rMpc, z, deltaAbs, vcM3 float64, p Params) (float64, error) {
	if err := requirePositive("R", rMpc); err != nil {
		return 0, err
	}
	if err := requirePositive("Vc", vcM3); err != nil {
		return 0, err
	}
	if err := requirePositive("|delta|", deltaAbs); err != nil {
		return 0, err
	}

	v := SphereVolumeM3(rMpc * domain.MpcInMeters)
	w := WGamma(G(z, deltaAbs, p))
	return p.FEnt * w * math.Sqrt(v/vcM3), nil
}

// DeltaTCore is the predicted core temperature shift in µK:
// ΔT_core(R) = k_ISW · R² · A_GoP(R,z,|δ|).
func DeltaTCore(rMpc, z, deltaAbs, vcM3 float64, p Params) (float64, error) {
	a, err := AGoP(rMpc, z, deltaAbs, vcM3, p)
	if err != nil {
		return 0, err
	}
	return KISW(p) * rMpc * rMpc * a, nil
}

// DeltaProfile is the simple radial interpolation used for profile shapes:
// δ(r) = δ_rim + (δ_core − δ_rim)·exp(−(r/σ)²), r normalized to R.
func DeltaProfile(rFrac, deltaCore, deltaRim, sigma float64) float64 {
	return deltaRim + (deltaCore-deltaRim)*math.Exp(-(rFrac/sigma)*(rFrac/sigma))
}

func requirePositive(name string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return &domain.OpError{
			Op:   "voidtoy.eval",
			Kind: domain.KindDomain,
			Err:  fmt.Errorf("%s must be positive, got %v", name, v),
		}
	}
	return nil
}
