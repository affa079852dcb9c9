package timeframe

import "math"

// MeanObliquity returns the mean obliquity of the ecliptic at date, in
// radians (IAU 1980, Lieske 1979).
func MeanObliquity(T float64) float64 {
	return (84381.448 - 46.8150*T - 0.00059*T*T + 0.001813*T*T*T) * arcsec2rad
}

// nutationTerm is one row of the truncated IAU 1980 nutation series.
// Argument multipliers are on the five Delaunay fundamental arguments
// (l, l', F, D, Omega); amplitudes are in units of 0.0001 arcsec.
type nutationTerm struct {
	nl, nlp, nf, nd, nom int
	dpsi, dpsiT          float64 // longitude amplitude + secular rate, 0.0001 arcsec
	deps, depsT          float64 // obliquity amplitude + secular rate, 0.0001 arcsec
}

// nutationTerms holds the dominant terms of the IAU 1980 nutation theory
// (full series has 106 terms; these ~1 arcsec-level dominant terms are
// sufficient for force-model-grade accuracy and keep the hot path small —
// the same trade the rest of this pipeline makes for nutation/precession).
var nutationTerms = []nutationTerm{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{0, 0, 2, -2, 2, -13187, -1.6, 5736, -3.1},
	{0, 0, 2, 0, 2, -2274, -0.2, 977, -0.5},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{1, 0, 0, 0, 0, 712, 0.1, -7, 0},
	{0, 1, 2, -2, 2, -517, 1.2, 224, -0.6},
	{0, 0, 2, 0, 1, -386, -0.4, 200, 0},
	{1, 0, 2, 0, 2, -301, 0, 129, -0.1},
	{0, -1, 2, -2, 2, 217, -0.5, -95, 0.3},
	{1, 0, 0, -2, 0, -158, 0, -1, 0},
	{0, 0, 2, -2, 1, 129, 0.1, -70, 0},
	{-1, 0, 2, 0, 2, 123, 0, -53, 0},
	{0, 0, 0, 2, 0, 63, 0, -2, 0},
	{1, 0, 0, 0, 1, 63, 0.1, -33, 0},
	{-1, 0, 0, 0, 1, -59, 0, 26, 0},
	{-1, 0, 2, 2, 2, -58, -0.1, 32, 0},
	{1, 0, 2, 0, 1, -51, 0, 27, 0},
	{0, 0, 2, 2, 2, -38, 0, 16, 0},
	{2, 0, 0, 0, 0, 29, 0, -1, 0},
	{0, 0, 2, 0, 0, 26, 0, 0, 0},
	{0, 2, 0, 0, 0, -23, 0, 0, 0},
}

// fundamentalArgs computes the Delaunay arguments (l, l', F, D, Omega) for
// the IAU 1980 nutation theory. T is Julian centuries from J2000 TT.
func fundamentalArgs(T float64) (l, lp, f, d, om float64) {
	l = math.Mod(485866.733+(1325*360*3600+715922.633)*T+31.310*T*T+0.064*T*T*T, 1296000) * arcsec2rad
	lp = math.Mod(1287099.804+(99*360*3600+1292581.224)*T-0.577*T*T-0.012*T*T*T, 1296000) * arcsec2rad
	f = math.Mod(335778.877+(1342*360*3600+295263.137)*T-13.257*T*T+0.011*T*T*T, 1296000) * arcsec2rad
	d = math.Mod(1072261.307+(1236*360*3600+1105601.328)*T-6.891*T*T+0.019*T*T*T, 1296000) * arcsec2rad
	om = math.Mod(450160.280-(5*360*3600+482890.539)*T+7.455*T*T+0.008*T*T*T, 1296000) * arcsec2rad
	return
}

// NutationAngles returns nutation in longitude (dpsi) and obliquity (deps)
// in radians, for T Julian centuries since J2000 TT.
func NutationAngles(T float64) (dpsiRad, depsRad float64) {
	l, lp, f, d, om := fundamentalArgs(T)

	var dpsi, deps float64
	for _, term := range nutationTerms {
		arg := float64(term.nl)*l + float64(term.nlp)*lp + float64(term.nf)*f +
			float64(term.nd)*d + float64(term.nom)*om
		sinA, cosA := math.Sincos(arg)
		dpsi += (term.dpsi + term.dpsiT*T) * sinA
		deps += (term.deps + term.depsT*T) * cosA
	}

	const tenThouArcsec2Rad = arcsec2rad / 10000.0
	return dpsi * tenThouArcsec2Rad, deps * tenThouArcsec2Rad
}

// NutationMatrix returns N, the nutation matrix that rotates a vector from
// mean equator/equinox of date to true equator/equinox of date.
// N = R1(-epsTrue) * R3(-dpsi) * R1(epsMean).
func NutationMatrix(T float64) [3][3]float64 {
	dpsi, deps := NutationAngles(T)
	epsMean := MeanObliquity(T)
	epsTrue := epsMean + deps
	return r1(-epsTrue).mul(r3(-dpsi)).mul(r1(epsMean))
}

// EquationOfEquinoxes returns the equation of the equinoxes (dpsi*cos(eps))
// in radians, the correction applied to GMST to obtain GAST.
func EquationOfEquinoxes(T float64) float64 {
	dpsi, _ := NutationAngles(T)
	eps := MeanObliquity(T)
	return dpsi * math.Cos(eps)
}
