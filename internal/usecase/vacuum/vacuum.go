// Package vacuum compares the ΛCDM vacuum energy density with the emergent
// GoP vacuum scale. Everything here is closed-form scalar algebra over
// explicit, immutable parameters.
package vacuum

import (
	"fmt"
	"math"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
)

// Params are the inputs to the comparison. All values must be positive;
// fractions must also not exceed 1.
type Params struct {
	H0KmSMpc    float64 // Hubble parameter [km/s/Mpc]
	OmegaLambda float64 // dark energy density fraction

	KappaA      float64 // dimensionless GoP scaling
	E0Erg       float64 // characteristic decoherence energy [erg]
	CoherenceM3 float64 // coarse-grained coherence volume [m^3]
}

// DefaultParams returns the Planck-2018-ish cosmology and the standard GoP
// parameter choices used throughout the repo.
func DefaultParams() Params {
	return Params{
		H0KmSMpc:    67.4,
		OmegaLambda: 0.688,
		KappaA:      1.5e-15,
		E0Erg:       1.0e12,
		CoherenceM3: 1.0,
	}
}

// Report holds both sides of the comparison plus their ratio.
type Report struct {
	Params Params

	H0SI            float64 // [1/s]
	RhoLambdaMass   float64 // [kg/m^3]
	RhoLambdaEnergy float64 // [J/m^3]
	RhoGoP          float64 // [J/m^3]
	Ratio           float64 // ρ_vac^GoP / ρ_Λ
}

// RhoLambdaMass is the mass density associated with Λ:
// ρ_crit = 3 H0² / (8 π G), ρ_Λ = Ω_Λ ρ_crit.
func RhoLambdaMass(h0SI, omegaLambda float64) float64 {
	rhoCrit := 3 * h0SI * h0SI / (8 * math.Pi * domain.GravConstant)
	return omegaLambda * rhoCrit
}

// RhoLambdaEnergy is ρ_Λ as an energy density, ρ_E = ρ_m c².
func RhoLambdaEnergy(h0SI, omegaLambda float64) float64 {
	return RhoLambdaMass(h0SI, omegaLambda) * domain.SpeedOfLight * domain.SpeedOfLight
}

// RhoGoP is the emergent GoP vacuum energy density,
// ρ_vac^GoP = κA·E0 / V_coherence, with E0 converted from erg to joules.
func RhoGoP(kappaA, e0Erg, coherenceM3 float64) float64 {
	return kappaA * e0Erg * domain.ErgInJoules / coherenceM3
}

// Compare evaluates both densities and their ratio.
func Compare(p Params) (Report, error) {
	if err := validate(p); err != nil {
		return Report{}, err
	}

	h0 := domain.HubbleSI(p.H0KmSMpc)
	rhoM := RhoLambdaMass(h0, p.OmegaLambda)
	rhoE := RhoLambdaEnergy(h0, p.OmegaLambda)
	rhoG := RhoGoP(p.KappaA, p.E0Erg, p.CoherenceM3)

	return Report{
		Params:          p,
		H0SI:            h0,
		RhoLambdaMass:   rhoM,
		RhoLambdaEnergy: rhoE,
		RhoGoP:          rhoG,
		Ratio:           rhoG / rhoE,
	}, nil
}

func validate(p Params) error {
	check := func(name string, v float64) error {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return &domain.OpError{
				Op:   "vacuum.compare",
				Kind: domain.KindDomain,
				Err:  fmt.Errorf("%s must be positive, got %v", name, v),
			}
		}
		return nil
	}

	for _, c := range []struct {
		name string
		v    float64
	}{
		{"H0", p.H0KmSMpc},
		{"Omega_Lambda", p.OmegaLambda},
		{"kappaA", p.KappaA},
		{"E0", p.E0Erg},
		{"coherence volume", p.CoherenceM3},
	} {
		if err := check(c.name, c.v); err != nil {
			return err
		}
	}

	if p.OmegaLambda > 1 {
		return &domain.OpError{
			Op:   "vacuum.compare",
			Kind: domain.KindDomain,
			Err:  fmt.Errorf("Omega_Lambda must not exceed 1, got %v", p.OmegaLambda),
		}
	}
	return nil
}
