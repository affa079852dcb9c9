package forcemodel

import "github.com/hpop/orbit/vecmat"

// SolarPressureConstant P0 is the solar radiation pressure at 1 AU,
// N/m^2.
const SolarPressureConstant = 4.56e-6

const earthRadiusM = 6378137.0

// Illumination returns 1 if the satellite at r (ECI, meters) is sunlit
// and 0 if it lies within Earth's cylindrical shadow, given the Sun
// position rSun (ECI, meters) (spec §4.7). Always returns exactly 0 or 1
// (spec §8 invariant), and is 1 whenever r.rSun > 0.
func Illumination(r, rSun [3]float64) float64 {
	rSunNorm := vecmat.Norm3(rSun)
	if rSunNorm == 0 {
		return 1
	}
	eSun := [3]float64{rSun[0] / rSunNorm, rSun[1] / rSunNorm, rSun[2] / rSunNorm}

	dot := r[0]*eSun[0] + r[1]*eSun[1] + r[2]*eSun[2]
	if dot > 0 {
		return 1
	}

	proj := [3]float64{r[0] - dot*eSun[0], r[1] - dot*eSun[1], r[2] - dot*eSun[2]}
	if vecmat.Norm3(proj) > earthRadiusM {
		return 1
	}
	return 0
}

// AccelSolarRadiationPressure returns the cylindrical-shadow solar
// radiation pressure acceleration on a satellite at r (ECI, meters) given
// the Sun's ECI position rSun (meters), the satellite's CR (dimensionless)
// and area-to-mass ratio AoverM (m^2/kg) (spec §4.7).
func AccelSolarRadiationPressure(r, rSun [3]float64, cr, areaOverMass, auMeters float64) [3]float64 {
	nu := Illumination(r, rSun)
	if nu == 0 {
		return [3]float64{}
	}
	d := [3]float64{r[0] - rSun[0], r[1] - rSun[1], r[2] - rSun[2]}
	dNorm := vecmat.Norm3(d)
	dCube := dNorm * dNorm * dNorm

	scale := nu * cr * areaOverMass * SolarPressureConstant * auMeters * auMeters / dCube
	return [3]float64{scale * d[0], scale * d[1], scale * d[2]}
}
