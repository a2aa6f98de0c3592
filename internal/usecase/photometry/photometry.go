// Package photometry computes the compensated aperture statistic
// ΔT = <T>_core − <T>_rim for one (map, direction, aperture) triple.
// It is deterministic and side-effect free.
package photometry

import (
	"fmt"
	"math"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/healpix"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/ports"
)

// Region is one aperture zone: the surviving pixel indices and their values.
// Bootstrap resampling reuses the value slice as a read-only view.
type Region struct {
	Pixels []int
	Values []float64
	Mean   float64
}

// Measurement is the full engine output. Summary() trims it to the domain
// record type.
type Measurement struct {
	DeltaT float64
	Core   Region
	Rim    Region
}

// Summary converts to the serializable domain form.
func (m Measurement) Summary() domain.PhotometryResult {
	return domain.PhotometryResult{
		DeltaT:   m.DeltaT,
		CoreMean: m.Core.Mean,
		RimMean:  m.Rim.Mean,
		NCorePix: len(m.Core.Pixels),
		NRimPix:  len(m.Rim.Pixels),
	}
}

// Measure collects core-disc and rim-annulus pixels around dir, drops unseen
// pixels, and forms the core-minus-rim statistic. minPix is the smallest
// usable pixel count per region; below it the aperture is undersampled and
// the result would be noise, so the engine fails instead.
func Measure(m ports.SkyMap, dir domain.Direction, ap domain.Aperture, minPix int) (Measurement, error) {
	if m == nil || m.Npix() == 0 {
		return Measurement{}, &domain.OpError{
			Op:   "photometry.measure",
			Kind: domain.KindMapUninitialized,
			Err:  fmt.Errorf("sky map has no data"),
		}
	}
	if !healpix.ValidNside(m.Nside()) {
		return Measurement{}, &domain.OpError{
			Op:   "photometry.measure",
			Kind: domain.KindMapUninitialized,
			Err:  fmt.Errorf("sky map reports invalid nside %d", m.Nside()),
		}
	}
	if err := ap.Validate(); err != nil {
		return Measurement{}, err
	}
	if minPix < 1 {
		minPix = 1
	}

	theta, phi := dir.Colatitude(), dir.Azimuth()
	deg := math.Pi / 180

	core := collect(m, healpix.QueryDisc(m.Nside(), theta, phi, ap.CoreDeg*deg))
	rim := collect(m, healpix.QueryAnnulus(m.Nside(), theta, phi, ap.RimInnerDeg*deg, ap.RimOuterDeg*deg))

	if len(core.Pixels) < minPix || len(rim.Pixels) < minPix {
		return Measurement{}, &domain.OpError{
			Op:   "photometry.measure",
			Kind: domain.KindInsufficientPixels,
			Err: fmt.Errorf("too few unmasked pixels (core=%d, rim=%d, need %d): widen the aperture or loosen the mask",
				len(core.Pixels), len(rim.Pixels), minPix),
		}
	}

	return Measurement{
		DeltaT: core.Mean - rim.Mean,
		Core:   core,
		Rim:    rim,
	}, nil
}

func collect(m ports.SkyMap, pixels []int) Region {
	r := Region{
		Pixels: make([]int, 0, len(pixels)),
		Values: make([]float64, 0, len(pixels)),
	}

	var sum float64
	for _, p := range pixels {
		if !m.Seen(p) {
			continue
		}
		v := m.Value(p)
		r.Pixels = append(r.Pixels, p)
		r.Values = append(r.Values, v)
		sum += v
	}

	if len(r.Values) > 0 {
		r.Mean = sum / float64(len(r.Values))
	}
	return r
}
