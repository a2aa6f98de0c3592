// Package skymaps provides the concrete SkyMap implementation: in-memory
// HEALPix temperature maps, synthetic map constructors for tests and demos,
// and the FITS-backed loader.
package skymaps

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/healpix"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/ports"
)

// Map is an immutable pixelized temperature field in µK. keep == nil means
// every finite pixel is usable.
type Map struct {
	label  string
	nside  int
	values []float64
	keep   []bool
}

var _ ports.SkyMap = (*Map)(nil)

// New wraps pixel values (µK) as a Map. The value slice length must match
// 12·nside²; keep may be nil or the same length.
func New(label string, nside int, values []float64, keep []bool) (*Map, error) {
	npix, err := healpix.Npix(nside)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "skymaps.new",
			Kind: domain.KindMapUninitialized,
			Err:  err,
		}
	}
	if len(values) != npix {
		return nil, &domain.OpError{
			Op:   "skymaps.new",
			Kind: domain.KindMapUninitialized,
			Err:  fmt.Errorf("map %q: %d values for nside %d (want %d)", label, len(values), nside, npix),
		}
	}
	if keep != nil && len(keep) != npix {
		return nil, &domain.OpError{
			Op:   "skymaps.new",
			Kind: domain.KindMapUninitialized,
			Err:  fmt.Errorf("map %q: keep-mask length %d, want %d", label, len(keep), npix),
		}
	}
	return &Map{label: label, nside: nside, values: values, keep: keep}, nil
}

func (m *Map) Label() string { return m.label }
func (m *Map) Nside() int    { return m.nside }
func (m *Map) Npix() int     { return len(m.values) }

func (m *Map) Value(pix int) float64 { return m.values[pix] }

func (m *Map) Seen(pix int) bool {
	if m.keep != nil && !m.keep[pix] {
		return false
	}
	v := m.values[pix]
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > domain.UnseenValue
}

// Uniform builds a map with every pixel equal to value.
func Uniform(label string, nside int, value float64) (*Map, error) {
	npix, err := healpix.Npix(nside)
	if err != nil {
		return nil, err
	}
	values := make([]float64, npix)
	for i := range values {
		values[i] = value
	}
	return New(label, nside, values, nil)
}

// Noise builds a statistically isotropic Gaussian map with the given sigma,
// seeded for reproducibility.
func Noise(label string, nside int, sigma float64, seed uint64) (*Map, error) {
	npix, err := healpix.Npix(nside)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(seed, 0))
	values := make([]float64, npix)
	for i := range values {
		values[i] = rng.NormFloat64() * sigma
	}
	return New(label, nside, values, nil)
}

// Step builds a map that is coreValue inside coreRadiusDeg of dir, rimValue
// in the annulus up to rimOuterDeg, and background elsewhere. Region edges
// follow pixel centers, matching the photometry engine's selection.
func Step(label string, nside int, dir domain.Direction, coreRadiusDeg, rimOuterDeg, coreValue, rimValue, background float64) (*Map, error) {
	npix, err := healpix.Npix(nside)
	if err != nil {
		return nil, err
	}

	values := make([]float64, npix)
	for i := range values {
		values[i] = background
	}

	deg := math.Pi / 180
	theta, phi := dir.Colatitude(), dir.Azimuth()
	for _, p := range healpix.QueryDisc(nside, theta, phi, rimOuterDeg*deg) {
		values[p] = rimValue
	}
	for _, p := range healpix.QueryDisc(nside, theta, phi, coreRadiusDeg*deg) {
		values[p] = coreValue
	}
	return New(label, nside, values, nil)
}
