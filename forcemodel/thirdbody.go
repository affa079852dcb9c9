package forcemodel

import "github.com/hpop/orbit/vecmat"

// AccelPointMass returns the perturbing acceleration on a satellite at r
// from a point mass at s (both ECI, meters), including the indirect term
// that accounts for the Earth's own acceleration toward the body (spec
// §4.6). GMBody == 0 yields the zero vector, matching the "no force from
// a zero-mass body" invariant (spec §8).
func AccelPointMass(r, s [3]float64, gmBody float64) [3]float64 {
	if gmBody == 0 {
		return [3]float64{}
	}
	d := [3]float64{r[0] - s[0], r[1] - s[1], r[2] - s[2]}
	dNorm := vecmat.Norm3(d)
	sNorm := vecmat.Norm3(s)

	dCube := dNorm * dNorm * dNorm
	sCube := sNorm * sNorm * sNorm

	var out [3]float64
	for i := 0; i < 3; i++ {
		term := d[i]/dCube + s[i]/sCube
		out[i] = -gmBody * term
	}
	return out
}

// AccelTwoBody returns the central gravitational acceleration -GM*r/|r|^3,
// used as the fallback term when no harmonic field is configured (n=m=0).
func AccelTwoBody(r [3]float64, gmBody float64) [3]float64 {
	rNorm := vecmat.Norm3(r)
	rCube := rNorm * rNorm * rNorm
	return [3]float64{-gmBody * r[0] / rCube, -gmBody * r[1] / rCube, -gmBody * r[2] / rCube}
}
