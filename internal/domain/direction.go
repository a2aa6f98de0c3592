package domain

import (
	"fmt"
	"math"
)

// Direction is a sky coordinate in galactic longitude/latitude, degrees.
// It is an immutable value type; construct via NewDirection or FromEquatorial.
type Direction struct {
	LonDeg float64 `json:"gal_l_deg"` // galactic l, normalized to [0, 360)
	LatDeg float64 `json:"gal_b_deg"` // galactic b, in [-90, +90]
}

// J2000 north galactic pole and the galactic longitude of the north
// celestial pole (IAU definition).
const (
	ngpRADeg  = 192.85948
	ngpDecDeg = 27.12825
	ncpLonDeg = 122.93192
)

// NewDirection validates and normalizes a galactic coordinate pair.
func NewDirection(lonDeg, latDeg float64) (Direction, error) {
	if math.IsNaN(lonDeg) || math.IsInf(lonDeg, 0) ||
		math.IsNaN(latDeg) || math.IsInf(latDeg, 0) {
		return Direction{}, &OpError{
			Op:   "direction.new",
			Kind: KindInvalidDirection,
			Err:  fmt.Errorf("non-finite coordinate (lon=%v, lat=%v)", lonDeg, latDeg),
		}
	}
	if latDeg < -90 || latDeg > 90 {
		return Direction{}, &OpError{
			Op:   "direction.new",
			Kind: KindInvalidDirection,
			Err:  fmt.Errorf("latitude %v out of [-90, 90]", latDeg),
		}
	}

	lon := math.Mod(lonDeg, 360)
	if lon < 0 {
		lon += 360
	}
	return Direction{LonDeg: lon, LatDeg: latDeg}, nil
}

// FromEquatorial converts an ICRS/J2000 RA/Dec pair (degrees) to a galactic
// Direction using the IAU rotation.
func FromEquatorial(raDeg, decDeg float64) (Direction, error) {
	if math.IsNaN(raDeg) || math.IsInf(raDeg, 0) ||
		math.IsNaN(decDeg) || math.IsInf(decDeg, 0) {
		return Direction{}, &OpError{
			Op:   "direction.from_equatorial",
			Kind: KindInvalidDirection,
			Err:  fmt.Errorf("non-finite coordinate (ra=%v, dec=%v)", raDeg, decDeg),
		}
	}
	if decDeg < -90 || decDeg > 90 {
		return Direction{}, &OpError{
			Op:   "direction.from_equatorial",
			Kind: KindInvalidDirection,
			Err:  fmt.Errorf("declination %v out of [-90, 90]", decDeg),
		}
	}

	ra := raDeg * math.Pi / 180
	dec := decDeg * math.Pi / 180
	raNGP := ngpRADeg * math.Pi / 180
	decNGP := ngpDecDeg * math.Pi / 180

	sinB := math.Sin(decNGP)*math.Sin(dec) +
		math.Cos(decNGP)*math.Cos(dec)*math.Cos(ra-raNGP)
	b := math.Asin(clamp(sinB, -1, 1))

	y := math.Cos(dec) * math.Sin(ra-raNGP)
	x := math.Sin(dec)*math.Cos(decNGP) -
		math.Cos(dec)*math.Sin(decNGP)*math.Cos(ra-raNGP)
	l := ncpLonDeg*math.Pi/180 - math.Atan2(y, x)

	return NewDirection(l*180/math.Pi, b*180/math.Pi)
}

// Colatitude returns the polar angle theta in radians (0 at the north
// galactic pole), the convention the pixelization layer expects.
func (d Direction) Colatitude() float64 {
	return (90 - d.LatDeg) * math.Pi / 180
}

// Azimuth returns the longitude phi in radians.
func (d Direction) Azimuth() float64 {
	return d.LonDeg * math.Pi / 180
}

// SeparationDeg returns the great-circle distance to another direction in
// degrees. Flat-sky approximations drift badly at tens-of-degrees scales, so
// this is always the exact spherical formula.
func (d Direction) SeparationDeg(o Direction) float64 {
	t1, p1 := d.Colatitude(), d.Azimuth()
	t2, p2 := o.Colatitude(), o.Azimuth()

	cosD := math.Cos(t1)*math.Cos(t2) + math.Sin(t1)*math.Sin(t2)*math.Cos(p1-p2)
	return math.Acos(clamp(cosD, -1, 1)) * 180 / math.Pi
}

func (d Direction) String() string {
	return fmt.Sprintf("(l=%.4f°, b=%.4f°)", d.LonDeg, d.LatDeg)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
