// Package healpix implements the RING-ordered HEALPix pixelization of the
// sphere: angle↔pixel indexing and center-based disc/annulus queries.
//
// Conventions follow Górski et al. (2005): theta is the colatitude in
// [0, π] measured from the north pole, phi the longitude in [0, 2π).
// Only the RING ordering is supported; the resolution parameter nside must
// be a power of two.
package healpix

import (
	"fmt"
	"math"
)

const maxNside = 1 << 29

// ValidNside reports whether nside is a usable resolution parameter.
func ValidNside(nside int) bool {
	return nside > 0 && nside <= maxNside && nside&(nside-1) == 0
}

// Npix returns the total pixel count 12·nside² for a valid nside.
func Npix(nside int) (int, error) {
	if !ValidNside(nside) {
		return 0, fmt.Errorf("healpix: invalid nside %d (must be a power of two)", nside)
	}
	return 12 * nside * nside, nil
}

// ncap is the number of pixels in the north polar cap.
func ncap(nside int) int {
	return 2 * nside * (nside - 1)
}

// AngToPix returns the RING-ordered index of the pixel containing the
// direction (theta, phi).
func AngToPix(nside int, theta, phi float64) int {
	z := math.Cos(theta)
	za := math.Abs(z)
	tt := math.Mod(phi, 2*math.Pi)
	if tt < 0 {
		tt += 2 * math.Pi
	}
	tt /= math.Pi / 2 // in [0,4)

	if za <= 2.0/3.0 {
		// Equatorial belt.
		t1 := float64(nside) * (0.5 + tt)
		t2 := float64(nside) * 0.75 * z

		jp := int(t1 - t2) // ascending edge line
		jm := int(t1 + t2) // descending edge line

		ir := nside + 1 + jp - jm // ring counted from z=2/3, in [1, 2nside+1]
		kshift := 1 - ir&1

		ip := (jp + jm - nside + kshift + 1) / 2
		ip %= 4 * nside

		return ncap(nside) + (ir-1)*4*nside + ip
	}

	// Polar caps.
	tp := tt - math.Floor(tt)
	tmp := float64(nside) * math.Sqrt(3*(1-za))

	jp := int(tp * tmp)
	jm := int((1 - tp) * tmp)

	ir := jp + jm + 1 // ring counted from the nearest pole
	ip := int(tt*float64(ir)) % (4 * ir)

	if z > 0 {
		return 2*ir*(ir-1) + ip
	}
	return 12*nside*nside - 2*ir*(ir+1) + ip
}

// PixToAng returns the center (theta, phi) of a RING-ordered pixel.
func PixToAng(nside, pix int) (theta, phi float64) {
	npix := 12 * nside * nside
	nc := ncap(nside)
	p1 := pix + 1

	switch {
	case p1 <= nc: // north polar cap
		hip := float64(p1) / 2
		ir := int(math.Sqrt(hip-math.Sqrt(math.Floor(hip)))) + 1
		iphi := p1 - 2*ir*(ir-1)

		theta = math.Acos(1 - float64(ir*ir)/(3*float64(nside*nside)))
		phi = (float64(iphi) - 0.5) * math.Pi / (2 * float64(ir))

	case p1 <= npix-nc: // equatorial belt
		ip := p1 - nc - 1
		ir := ip/(4*nside) + nside
		iphi := ip%(4*nside) + 1
		fodd := 0.5 * float64(1+(ir+nside)%2)

		theta = math.Acos(4.0/3.0 - 2.0*float64(ir)/(3.0*float64(nside)))
		phi = (float64(iphi) - fodd) * math.Pi / (2 * float64(nside))

	default: // south polar cap
		ip := npix - pix
		hip := float64(ip) / 2
		ir := int(math.Sqrt(hip-math.Sqrt(math.Floor(hip)))) + 1
		iphi := 4*ir + 1 - (ip - 2*ir*(ir-1))

		theta = math.Acos(-1 + float64(ir*ir)/(3*float64(nside*nside)))
		phi = (float64(iphi) - 0.5) * math.Pi / (2 * float64(ir))
	}
	return theta, phi
}

// Distance returns the great-circle angle between two directions, radians.
func Distance(theta1, phi1, theta2, phi2 float64) float64 {
	cosD := math.Cos(theta1)*math.Cos(theta2) +
		math.Sin(theta1)*math.Sin(theta2)*math.Cos(phi1-phi2)
	if cosD > 1 {
		cosD = 1
	} else if cosD < -1 {
		cosD = -1
	}
	return math.Acos(cosD)
}
