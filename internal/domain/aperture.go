package domain

import (
	"fmt"
	"math"
)

// Aperture is the core-disc + rim-annulus template used for compensated
// photometry. Radii are angular, in degrees, measured from the aperture
// center. Invariants: all radii positive, RimInner >= Core, RimOuter > RimInner.
type Aperture struct {
	CoreDeg     float64 `json:"core_deg"`
	RimInnerDeg float64 `json:"rim_inner_deg"`
	RimOuterDeg float64 `json:"rim_outer_deg"`
}

// NewAperture validates an explicit radius triple.
func NewAperture(coreDeg, rimInnerDeg, rimOuterDeg float64) (Aperture, error) {
	a := Aperture{CoreDeg: coreDeg, RimInnerDeg: rimInnerDeg, RimOuterDeg: rimOuterDeg}
	if err := a.Validate(); err != nil {
		return Aperture{}, err
	}
	return a, nil
}

// ScaledAperture builds an aperture from a void angular radius thetaR and the
// conventional fractional radii (core, rim inner, rim outer).
func ScaledAperture(thetaRDeg, coreFrac, rimInFrac, rimOutFrac float64) (Aperture, error) {
	if thetaRDeg <= 0 || math.IsNaN(thetaRDeg) || math.IsInf(thetaRDeg, 0) {
		return Aperture{}, &OpError{
			Op:   "aperture.scaled",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("theta_R must be positive, got %v", thetaRDeg),
		}
	}
	return NewAperture(coreFrac*thetaRDeg, rimInFrac*thetaRDeg, rimOutFrac*thetaRDeg)
}

func (a Aperture) Validate() error {
	switch {
	case a.CoreDeg <= 0:
		return apertureErr("core radius must be positive, got %v", a.CoreDeg)
	case a.RimInnerDeg <= 0 || a.RimOuterDeg <= 0:
		return apertureErr("rim radii must be positive, got [%v, %v]", a.RimInnerDeg, a.RimOuterDeg)
	case a.RimInnerDeg < a.CoreDeg:
		return apertureErr("rim inner radius %v smaller than core radius %v", a.RimInnerDeg, a.CoreDeg)
	case a.RimOuterDeg <= a.RimInnerDeg:
		return apertureErr("rim outer radius %v must exceed inner radius %v", a.RimOuterDeg, a.RimInnerDeg)
	case a.RimOuterDeg >= 180:
		return apertureErr("rim outer radius %v must stay below 180°", a.RimOuterDeg)
	}
	return nil
}

func apertureErr(format string, args ...any) error {
	return &OpError{
		Op:   "aperture.validate",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf(format, args...),
	}
}
