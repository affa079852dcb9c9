package forcemodel

import (
	"math"

	"github.com/hpop/orbit/nrlmsise00"
	"github.com/hpop/orbit/timeframe"
	"github.com/hpop/orbit/vecmat"
)

// EarthRotationRad is the mean angular velocity of Earth's rotation,
// rad/s, used to form the atmosphere's co-rotating velocity field.
const EarthRotationRad = 7.2921158553e-5

// AccelDrag returns the atmospheric drag acceleration on a satellite,
// given its position and velocity already in the true-of-date frame
// (meters, m/s), the local air density (kg/m^3), and CD*(A/m) (spec
// §4.8). The Earth's rotation is folded into v_rel here rather than
// passed in, since it is a fixed constant rather than per-call state.
func AccelDrag(rTOD, vTOD [3]float64, rho, cd, areaOverMass float64) [3]float64 {
	omega := [3]float64{0, 0, EarthRotationRad}
	omegaCrossR := vecmat.Cross3(omega, rTOD)
	vRel := vecmat.Sub3(vTOD, omegaCrossR)
	speed := vecmat.Norm3(vRel)

	scale := -0.5 * cd * areaOverMass * rho * speed
	return vecmat.Scale3(scale, vRel)
}

// AccelDragFromECI is the full drag pipeline described in spec §4.8: it
// rotates the ECI state into the true-of-date frame via T=N*P, computes
// geodetic altitude/lat/lon and local solar time, evaluates the density
// model, forms the TOD acceleration, and rotates it back to ECI.
func AccelDragFromECI(rECI, vECI [3]float64, T, gastRad float64, apInputs [7]float64, f107, f107Bar, cd, areaOverMass float64) [3]float64 {
	N := timeframe.NutationMatrix(T)
	P := timeframe.PrecessionMatrix(T)
	TNP := vecmat.MatMul3(N, P)

	rTOD := vecmat.MulVec3(TNP, rECI)
	vTOD := vecmat.MulVec3(TNP, vECI)

	lat, lon, height := timeframe.ECEFToGeodetic(rTOD[0], rTOD[1], rTOD[2])
	altKm := height / 1000.0

	lst := math.Mod(24*(lon+gastRad)/(2*math.Pi), 24)
	if lst < 0 {
		lst += 24
	}

	out := nrlmsise00.Density(nrlmsise00.Input{
		AltitudeKm:     altKm,
		LatRad:         lat,
		LonRad:         lon,
		LocalSolarHour: lst,
		F107:           f107,
		F107Bar:        f107Bar,
		Ap:             apInputs,
	})

	aTOD := AccelDrag(rTOD, vTOD, out.TotalDensityKgM3, cd, areaOverMass)
	return vecmat.MulVec3(vecmat.Transpose3(TNP), aTOD)
}
