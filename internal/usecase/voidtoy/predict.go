package voidtoy

// PredictionInput describes one void to predict: literature radius,
// redshift, locked core underdensity depth, and a sensitivity band for |δ|.
type PredictionInput struct {
	Object   string
	RMpc     float64
	Z        float64
	DeltaAbs float64
	Band     [2]float64 // low, high |δ| for the sensitivity band
	Anchor   string     // preset name; empty = DefaultAnchor
}

// DefaultBootes is the Boötes Void at its literature parameters.
func DefaultBootes() PredictionInput {
	return PredictionInput{
		Object:   "Bootes Void",
		RMpc:     62.0,
		Z:        0.052,
		DeltaAbs: 0.85,
		Band:     [2]float64{0.75, 0.90},
		Anchor:   DefaultAnchor,
	}
}

// Prediction is the evaluated toy-model output for one void.
type Prediction struct {
	Object string
	Anchor string
	Values Anchor // the anchor preset actually used

	Input PredictionInput
	VcM3  float64

	DeltaTUK   float64 // at the locked |δ|
	BandLowUK  float64
	BandHighUK float64
}

// Predict calibrates Vc from the chosen anchor and evaluates ΔT_core at the
// locked |δ| and at both edges of the sensitivity band.
func Predict(in PredictionInput, p Params) (Prediction, error) {
	name := in.Anchor
	if name == "" {
		name = DefaultAnchor
	}

	a, err := AnchorByName(name)
	if err != nil {
		return Prediction{}, err
	}

	vc, err := CalibrateVc(name, p)
	if err != nil {
		return Prediction{}, err
	}

	lock, err := DeltaTCore(in.RMpc, in.Z, in.DeltaAbs, vc, p)
	if err != nil {
		return Prediction{}, err
	}
	low, err := DeltaTCore(in.RMpc, in.Z, in.Band[0], vc, p)
	if err != nil {
		return Prediction{}, err
	}
	high, err := DeltaTCore(in.RMpc, in.Z, in.Band[1], vc, p)
	if err != nil {
		return Prediction{}, err
	}

	return Prediction{
		Object:     in.Object,
		Anchor:     name,
		Values:     a,
		Input:      in,
		VcM3:       vc,
		DeltaTUK:   lock,
		BandLowUK:  low,
		BandHighUK: high,
	}, nil
}
