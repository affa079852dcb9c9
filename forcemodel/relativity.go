package forcemodel

import "github.com/hpop/orbit/vecmat"

const speedOfLight = 299792458.0 // m/s

// AccelRelativity returns the Schwarzschild post-Newtonian correction to
// the two-body acceleration (spec §4.9).
func AccelRelativity(r, v [3]float64, gmEarth float64) [3]float64 {
	rNorm := vecmat.Norm3(r)
	r3 := rNorm * rNorm * rNorm
	v2 := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	rDotV := r[0]*v[0] + r[1]*v[1] + r[2]*v[2]

	c2 := speedOfLight * speedOfLight
	coeff := gmEarth / (c2 * r3)
	rScale := (4*gmEarth/rNorm - v2)
	vScale := 4 * rDotV

	return [3]float64{
		coeff * (rScale*r[0] + vScale*v[0]),
		coeff * (rScale*r[1] + vScale*v[1]),
		coeff * (rScale*r[2] + vScale*v[2]),
	}
}
