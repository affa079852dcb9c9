package forcemodel

import (
	"math"

	"github.com/hpop/orbit/legendre"
)

// Love numbers and constants for the step-1 frequency-independent solid
// Earth tide correction (IERS 2010 §6.5a/b/c, spec §4.5).
const (
	love20    = 0.30190
	love21Re  = 0.29830
	love21Im  = -0.00144
	love22Re  = 0.30102
	love22Im  = -0.00130
	permTideC20Add = 4.173e-9
	permTideFactor = -4.4228e-8 * -0.31460 * 0.30190

	poleTideC21Coef = -1.348e-9
	poleTideS21Coef = 1.348e-9
)

// Ocean tide (FES-style) load Love numbers k'n for degree 2-6 (spec §4.5).
var oceanLoveFactors = map[int]float64{2: -0.3075, 3: -0.195, 4: -0.132, 5: -0.1032, 6: -0.0892}

const (
	oceanWaterDensity = 1025.0   // kg/m^3
	earthMass         = 5.9722e24 // kg
)

// ApplySolidEarthTides returns a corrected clone of base with the IERS
// step-1 (frequency-independent) degree-2 corrections, the permanent-tide
// subtraction, and the pole tide applied to C20/C21/S21/C22/S22, driven by
// the instantaneous Sun/Moon geocentric positions (ECEF, meters) and polar
// motion (radians). This is a reduced form of the full IERS 2010 recipe:
// step 1 uses only the degree-2 terms with the real parts of k21 and k22
// (love21Im, love22Im and the degree-4 terms are not used), and the step-2
// frequency-dependent long-period/diurnal/semi-diurnal corrections are not
// applied at all.
func ApplySolidEarthTides(base *CoeffTable, sunECEF, moonECEF [3]float64, GMSun, GMMoon, GMEarth, R float64, xpRad, ypRad float64) *CoeffTable {
	out := base.Clone()

	dc20, dc21, ds21, dc22, ds22 := 0.0, 0.0, 0.0, 0.0, 0.0

	for _, body := range []struct {
		pos [3]float64
		gm  float64
	}{{sunECEF, GMSun}, {moonECEF, GMMoon}} {
		d := math.Sqrt(body.pos[0]*body.pos[0] + body.pos[1]*body.pos[1] + body.pos[2]*body.pos[2])
		if d == 0 {
			continue
		}
		sinPhi := body.pos[2] / d
		lambda := math.Atan2(body.pos[1], body.pos[0])
		ratio := R / d
		massFrac := body.gm / GMEarth

		legP2 := 0.5 * (3*sinPhi*sinPhi - 1)
		legP21 := 3 * sinPhi * math.Sqrt(1-sinPhi*sinPhi)
		legP22 := 3 * (1 - sinPhi*sinPhi)

		dc20 += (love20 / 5.0) * massFrac * ratio * ratio * ratio * legP2
		dc21 += (love21Re / 5.0) * massFrac * ratio * ratio * ratio * legP21 * math.Cos(lambda)
		ds21 += (love21Re / 5.0) * massFrac * ratio * ratio * ratio * legP21 * math.Sin(lambda)
		dc22 += (love22Re / 5.0) * massFrac * ratio * ratio * ratio * legP22 * math.Cos(2*lambda)
		ds22 += (love22Re / 5.0) * massFrac * ratio * ratio * ratio * legP22 * math.Sin(2*lambda)
	}

	// Subtract the permanent tide baked into conventional C20.
	dc20 += permTideC20Add + permTideFactor

	// Solid-Earth pole tide.
	dc21 += poleTideC21Coef * (xpRad + 0.0112*ypRad)
	ds21 += poleTideS21Coef * (ypRad - 0.0112*xpRad)

	out.Add(2, 0, dc20, 0)
	out.Add(2, 1, dc21, ds21)
	out.Add(2, 2, dc22, ds22)
	return out
}

// ApplyOceanTides layers the degree-2-through-6 FES-style ocean tide load
// correction (spec §4.5) on top of an already solid-Earth-corrected table,
// summing every (n,m) tesseral/sectorial term for each degree rather than
// just the zonal (m=0) one, matching the corpus's full expansion. It shares
// the normalized Pnm table built by the legendre package rather than
// hand-rolling unnormalized polynomials the way ApplySolidEarthTides does:
// the corrected coefficients feed straight into AccelHarmonic's own
// normalized summation, so building them on the same normalized table
// avoids a second, inconsistent Legendre convention inside one force term.
func ApplyOceanTides(base *CoeffTable, sunECEF, moonECEF [3]float64, GMSun, GMMoon, GMEarth, R float64) *CoeffTable {
	out := base.Clone()
	maxN := base.Degree()
	if maxN > 6 {
		maxN = 6
	}

	for _, body := range []struct {
		pos [3]float64
		gm  float64
	}{{sunECEF, GMSun}, {moonECEF, GMMoon}} {
		d := math.Sqrt(body.pos[0]*body.pos[0] + body.pos[1]*body.pos[1] + body.pos[2]*body.pos[2])
		if d == 0 {
			continue
		}
		sinPhi := body.pos[2] / d
		lambda := math.Atan2(body.pos[1], body.pos[0])
		massFrac := body.gm / GMEarth
		loadScale := (4 * math.Pi * R * R * oceanWaterDensity) / earthMass

		leg := legendre.Compute(maxN, math.Asin(sinPhi))

		for n := 2; n <= maxN; n++ {
			kp, ok := oceanLoveFactors[n]
			if !ok {
				continue
			}
			ratio := math.Pow(R/d, float64(n+1))
			denom := float64(2*n + 1)
			cCoef := loadScale * (1 - kp) / denom * massFrac * ratio
			sCoef := -kp / denom * massFrac * ratio

			for m := 0; m <= n; m++ {
				pnm := leg.At(n, m)
				if m == 0 {
					out.Add(n, 0, cCoef*pnm, 0)
					continue
				}
				fm := float64(m)
				out.Add(n, m, cCoef*pnm*math.Cos(fm*lambda), sCoef*pnm*math.Sin(fm*lambda))
			}
		}
	}
	return out
}

// AccelHarmonicAnelasticEarth augments the base coefficients with solid-
// Earth and (optionally) ocean tide corrections before running the same
// Pnm summation as AccelHarmonic (spec §4.5).
func AccelHarmonicAnelasticEarth(r [3]float64, E [3][3]float64, GM, R float64, base *CoeffTable, nMax, mMax int,
	sunECEF, moonECEF [3]float64, GMSun, GMMoon float64, xpRad, ypRad float64, includeOceanTides bool) [3]float64 {

	corrected := ApplySolidEarthTides(base, sunECEF, moonECEF, GMSun, GMMoon, GM, R, xpRad, ypRad)
	if includeOceanTides {
		corrected = ApplyOceanTides(corrected, sunECEF, moonECEF, GMSun, GMMoon, GM, R)
	}
	return AccelHarmonic(r, E, GM, R, corrected, nMax, mMax)
}
