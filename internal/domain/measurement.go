package domain

import "time"

// PhotometryResult is the deterministic core-minus-rim statistic for one
// (map, direction, aperture) triple. Temperatures are µK.
type PhotometryResult struct {
	DeltaT   float64 `json:"delta_t_uk"`
	CoreMean float64 `json:"core_mean_uk"`
	RimMean  float64 `json:"rim_mean_uk"`
	NCorePix int     `json:"n_core_pix"`
	NRimPix  int     `json:"n_rim_pix"`
}

// BootstrapEstimate summarizes the resampled ΔT distribution. Std is the
// reported measurement uncertainty (σ_boot).
type BootstrapEstimate struct {
	Mean       float64 `json:"mean_uk"`
	Std        float64 `json:"std_uk"`
	Iterations int     `json:"iterations"`
}

// NullSummary describes the matched-latitude random-center ΔT distribution.
// Used counts trials that produced a valid control aperture; Skipped counts
// trials that exhausted their redraw budget on masked sky.
type NullSummary struct {
	Mean    float64 `json:"mean_uk"`
	Std     float64 `json:"std_uk"`
	Used    int     `json:"used"`
	Skipped int     `json:"skipped"`
}

// MeasurementFailure records a per-map error without aborting the run.
type MeasurementFailure struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// MapMeasurement is the per-map outcome. Exactly one of Failure or the
// result fields is meaningful: on failure the pointers stay nil.
type MapMeasurement struct {
	Label      string              `json:"label"`
	Nside      int                 `json:"nside,omitempty"`
	Photometry *PhotometryResult   `json:"photometry,omitempty"`
	Bootstrap  *BootstrapEstimate  `json:"bootstrap,omitempty"`
	Null       *NullSummary        `json:"null,omitempty"`
	Failure    *MeasurementFailure `json:"failure,omitempty"`
}

// Consistency is the cross-map agreement summary: how many pipelines
// succeeded and how tightly their ΔT values cluster.
type Consistency struct {
	MapsTotal  int `json:"maps_total"`
	MapsOK     int `json:"maps_ok"`
	MapsFailed int `json:"maps_failed"`

	// MeanDeltaT and DeltaTSpread run over the successful maps only;
	// the spread is 0 when fewer than two succeed.
	MeanDeltaT   float64 `json:"mean_delta_t_uk"`
	DeltaTSpread float64 `json:"delta_t_spread_uk"`
}

// MeasurementRecord is the terminal, serialized artifact of one run.
type MeasurementRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	TargetName string    `json:"target_name"`
	Target     Direction `json:"target"`
	Aperture   Aperture  `json:"aperture"`
	Seed       uint64    `json:"seed"`

	Maps     []MapMeasurement `json:"maps"`
	Combined Consistency      `json:"combined"`
}
