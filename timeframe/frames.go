package timeframe

import "math"

// GMST returns Greenwich Mean Sidereal Time in radians for a UT1 Modified
// Julian Date (IAU 1982 formula).
func GMST(mjdUT1 float64) float64 {
	const secToRad = math.Pi / 43200.0

	mjd0 := math.Floor(mjdUT1)
	ut := (mjdUT1 - mjd0) * secPerDay
	t0 := (mjd0 - J2000MJD) / 36525.0
	t := (mjdUT1 - J2000MJD) / 36525.0

	gmstSec := 24110.54841 + 8640184.812866*t0 + 1.0027379093*ut +
		(0.093104-6.2e-6*t)*t*t

	gmst := math.Mod(gmstSec, secPerDay) * secToRad
	if gmst < 0 {
		gmst += 2 * math.Pi
	}
	return gmst
}

// GAST returns Greenwich Apparent Sidereal Time in radians: GMST plus the
// equation of the equinoxes, evaluated using T derived from mjdUT1 (the
// small TT/UT1 difference in the nutation argument is negligible at
// nutation's own truncation level).
func GAST(mjdUT1 float64) float64 {
	T := (mjdUT1 - J2000MJD) / 36525.0
	gast := GMST(mjdUT1) + EquationOfEquinoxes(T)
	return math.Mod(gast+2*math.Pi, 2*math.Pi)
}

// GHAMatrix returns the Greenwich Hour Angle rotation R3(GAST), which
// rotates a true-of-date vector into the (pre-polar-motion) Earth-fixed
// frame.
func GHAMatrix(mjdUT1 float64) [3][3]float64 {
	return r3(GAST(mjdUT1))
}

// PoleMatrix returns the polar-motion matrix for pole offsets xp, yp
// (radians), rotating from the (pre-polar-motion) Earth-fixed frame to the
// ITRF/ECEF frame: PM = R2(-xp) * R1(-yp).
func PoleMatrix(xpRad, ypRad float64) [3][3]float64 {
	return r2(-xpRad).mul(r1(-ypRad))
}

// EclipticMatrix returns the rotation by mean obliquity eps(T) about the
// X-axis, mapping equatorial mean-of-date to ecliptic mean-of-date.
func EclipticMatrix(T float64) [3][3]float64 {
	return r1(MeanObliquity(T))
}

// ECIToECEF returns E, the combined rotation matrix from EME2000 (ICRF) to
// the Earth-fixed (ECEF) frame at a given epoch:
//
//	E = PoleMatrix * GHAMatrix * NutationMatrix * PrecessionMatrix
//
// T is Julian centuries since J2000 TT (from Mjd_TT); mjdUT1 is the UT1
// Modified Julian Date; xpRad, ypRad are polar-motion angles in radians.
func ECIToECEF(T, mjdUT1, xpRad, ypRad float64) [3][3]float64 {
	P := mat3(PrecessionMatrix(T))
	N := mat3(NutationMatrix(T))
	G := mat3(GHAMatrix(mjdUT1))
	PM := mat3(PoleMatrix(xpRad, ypRad))
	return PM.mul(G).mul(N).mul(P)
}
