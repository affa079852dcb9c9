package forcemodel

import (
	"math"

	"github.com/hpop/orbit/legendre"
	"github.com/hpop/orbit/vecmat"
)

// AccelHarmonic evaluates the spherical-harmonic gravity acceleration at
// ECI position r (meters), given the ECI->ECEF rotation E, gravitational
// parameter GM (m^3/s^2), reference radius R (m), and coefficients up to
// (nMax, mMax) (spec §4.4).
func AccelHarmonic(r [3]float64, E [3][3]float64, GM, R float64, coeff *CoeffTable, nMax, mMax int) [3]float64 {
	rbf := vecmat.MulVec3(E, r)

	x, y, z := rbf[0], rbf[1], rbf[2]
	rxy2 := x*x + y*y
	d := math.Sqrt(rxy2 + z*z)

	// Pole-safe floor (spec §9): the spherical->Cartesian Jacobian divides
	// by rxy2; near-polar callers get a small-angle floor instead of a
	// division blow-up.
	if rxy2 < 1e-6*d*d {
		rxy2 = 1e-6 * d * d
		if rxy2 == 0 {
			rxy2 = 1e-12
		}
	}

	phi := math.Asin(z / d)
	lambda := math.Atan2(y, x)

	leg := legendre.Compute(nMax, phi)

	var dUdd, dUdphi, dUdlambda float64

	for n := 0; n <= nMax; n++ {
		b1 := -(GM / (d * d)) * math.Pow(R/d, float64(n)) * float64(n+1)
		b2 := (GM / d) * math.Pow(R/d, float64(n))

		mTop := n
		if mTop > mMax {
			mTop = mMax
		}
		for m := 0; m <= mTop; m++ {
			c, s := coeff.At(n, m)
			cosML := math.Cos(float64(m) * lambda)
			sinML := math.Sin(float64(m) * lambda)

			pnm := leg.At(n, m)
			dpnm := leg.DAt(n, m)

			dUdd += b1 * pnm * (c*cosML + s*sinML)
			dUdphi += b2 * dpnm * (c*cosML + s*sinML)
			dUdlambda += b2 * pnm * float64(m) * (-c*sinML + s*cosML)
		}
	}

	// Spherical gradient -> body-fixed Cartesian (standard Jacobian).
	rxy := math.Sqrt(rxy2)
	ax := (1/d)*dUdd*x - (z/(d*d*rxy))*dUdphi*x + (1/rxy2)*dUdlambda*(-y)
	ay := (1/d)*dUdd*y - (z/(d*d*rxy))*dUdphi*y + (1/rxy2)*dUdlambda*x
	az := (1/d)*dUdd*z + (rxy/(d*d))*dUdphi

	abf := [3]float64{ax, ay, az}
	return vecmat.MulVec3(vecmat.Transpose3(E), abf)
}
