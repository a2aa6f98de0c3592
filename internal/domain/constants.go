package domain

// Physical constants (SI units). These are fixed inputs, not tunables: the
// toy-model knobs that are legitimately adjustable live in the calculator
// parameter structs.
const (
	SpeedOfLight   = 299792458.0  // m/s
	GravConstant   = 6.67430e-11  // m^3 kg^-1 s^-2
	TCMB           = 2.725        // K
	MpcInMeters    = 3.0856776e22 // m
	KelvinToMicroK = 1e6
	ErgInJoules    = 1e-7
)

// UnseenValue is the HEALPix bad-pixel sentinel. Pixels at (or below) this
// value are treated as missing regardless of any mask.
const UnseenValue = -1.6375e30

// HubbleSI converts H0 in km/s/Mpc to s^-1.
func HubbleSI(h0KmSMpc float64) float64 {
	return h0KmSMpc * 1e3 / MpcInMeters
}
