package healpix

import (
	"math"
	"sort"
)

// ringInfo describes one latitude ring of the RING ordering: the index of
// its first pixel, the pixel count, the shared z = cos(theta) of the pixel
// centers, the fractional phi offset of pixel 0, and the phi step.
type ringInfo struct {
	start int
	count int
	z     float64
	shift float64
	step  float64
}

// ring returns the info for ring r in [1, 4·nside−1], counted from the
// north pole.
func ring(nside, r int) ringInfo {
	n := float64(nside)
	switch {
	case r < nside: // north cap
		return ringInfo{
			start: 2 * r * (r - 1),
			count: 4 * r,
			z:     1 - float64(r*r)/(3*n*n),
			shift: 0.5,
			step:  math.Pi / (2 * float64(r)),
		}
	case r <= 3*nside: // equatorial belt
		fodd := 0.5 * float64(1+(r+nside)%2)
		return ringInfo{
			start: ncap(nside) + (r-nside)*4*nside,
			count: 4 * nside,
			z:     4.0/3.0 - 2.0*float64(r)/(3.0*n),
			shift: 1 - fodd,
			step:  math.Pi / (2 * n),
		}
	default: // south cap
		rp := 4*nside - r
		return ringInfo{
			start: 12*nside*nside - 2*rp*(rp+1),
			count: 4 * rp,
			z:     -1 + float64(rp*rp)/(3*n*n),
			shift: 0.5,
			step:  math.Pi / (2 * float64(rp)),
		}
	}
}

// distEps absorbs rounding at the disc boundary so that a pixel center
// exactly on the radius is counted in.
const distEps = 1e-12

// QueryDisc returns the RING indices of all pixels whose centers lie within
// the great-circle radius (radians) of the direction (theta0, phi0).
// Results are sorted ascending. The scan walks only the rings whose
// colatitude band intersects the disc, then narrows each ring to a phi
// window before the exact distance check.
func QueryDisc(nside int, theta0, phi0, radius float64) []int {
	var out []int

	cosT0 := math.Cos(theta0)
	sinT0 := math.Sin(theta0)
	cosR := math.Cos(radius)

	for r := 1; r <= 4*nside-1; r++ {
		ri := ring(nside, r)
		thetaR := math.Acos(clamp1(ri.z))

		// The closest approach of this ring to the center is along the
		// meridian, so the whole ring can be rejected exactly.
		if math.Abs(thetaR-theta0) > radius {
			continue
		}

		sinTR := math.Sin(thetaR)
		jlo, jhi := 0, ri.count-1

		denom := sinT0 * sinTR
		if denom >= distEps {
			c := (cosR - cosT0*ri.z) / denom
			if c > -1 {
				dphi := math.Acos(math.Min(1, c))
				jc := int(math.Round(phi0/ri.step - ri.shift))
				span := int(dphi/ri.step) + 2
				if 2*span+1 < ri.count {
					jlo, jhi = jc-span, jc+span
				}
			}
		}

		for j := jlo; j <= jhi; j++ {
			jj := ((j % ri.count) + ri.count) % ri.count
			phi := (float64(jj) + ri.shift) * ri.step
			if Distance(theta0, phi0, thetaR, phi) <= radius+distEps {
				out = append(out, ri.start+jj)
			}
		}
	}

	sort.Ints(out)
	return out
}

// QueryAnnulus returns the pixels whose centers fall inside [rIn, rOut)
// around (theta0, phi0): the rim region, core excluded.
func QueryAnnulus(nside int, theta0, phi0, rIn, rOut float64) []int {
	outer := QueryDisc(nside, theta0, phi0, rOut)
	if rIn <= 0 {
		return outer
	}

	kept := outer[:0]
	for _, p := range outer {
		t, f := PixToAng(nside, p)
		if Distance(theta0, phi0, t, f) > rIn+distEps {
			kept = append(kept, p)
		}
	}
	return kept
}

func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
