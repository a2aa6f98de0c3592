package voidtoy

// ProfileSpec shapes the radial underdensity δ(r) used for the normalized
// decoherence-weight profile. Defaults follow the illustrative panel setup.
type ProfileSpec struct {
	Z         float64
	DeltaCore float64
	DeltaRim  float64
	Sigma     float64
	MaxRFrac  float64 // profile extends past R to include the rim
	Steps     int
}

func DefaultProfileSpec() ProfileSpec {
	return ProfileSpec{
		Z:         0.5,
		DeltaCore: 0.30,
		DeltaRim:  0.10,
		Sigma:     0.35,
		MaxRFrac:  1.2,
		Steps:     13,
	}
}

// ProfilePoint is one radial sample: the interpolated |δ|, and the
// decoherence weight wΓ(g(z,δ(r))) normalized to the core value.
type ProfilePoint struct {
	RFrac      float64
	DeltaAbs   float64
	WeightNorm float64
}

// RadialProfile evaluates the normalized wΓ profile on Steps evenly spaced
// radii in [0, MaxRFrac]. The core sample always normalizes to 1.
func RadialProfile(spec ProfileSpec, p Params) []ProfilePoint {
	if spec.Steps < 2 {
		spec.Steps = 2
	}

	pts := make([]ProfilePoint, spec.Steps)
	// Normalize against the first sample so the core always reads exactly 1.
	w0 := WGamma(G(spec.Z, DeltaProfile(0, spec.DeltaCore, spec.DeltaRim, spec.Sigma), p))

	for i := range pts {
		r := spec.MaxRFrac * float64(i) / float64(spec.Steps-1)
		d := DeltaProfile(r, spec.DeltaCore, spec.DeltaRim, spec.Sigma)
		w := WGamma(G(spec.Z, d, p))
		pts[i] = ProfilePoint{
			RFrac:      r,
			DeltaAbs:   d,
			WeightNorm: w / w0,
		}
	}
	return pts
}
