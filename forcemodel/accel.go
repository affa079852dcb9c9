package forcemodel

import (
	"github.com/hpop/orbit/eop"
	"github.com/hpop/orbit/sunmoon"
	"github.com/hpop/orbit/timeframe"
	"github.com/hpop/orbit/vecmat"
)

const arcsec2rad = 3.14159265358979323846 / 180.0 / 3600.0

// Environment holds the shared, read-only inputs every acceleration term
// needs: gravitational parameters, the harmonic coefficient table, and
// the EOP/SpW tables (spec §3 "initialized once at program start and
// treated as read-only process-wide state"). A single *Environment is
// shared across all concurrently-propagating satellites (spec §5).
type Environment struct {
	GMEarth float64
	REarth  float64
	GMSun   float64
	GMMoon  float64
	Coeff   *CoeffTable
	EOP     *eop.Table
	SpW     *eop.SpWTable
}

// TotalAcceleration sums every acceleration term enabled in aux, at
// integrator time t (seconds since aux.MjdUTC) and state Y=(r,v) in ECI
// meters/meters-per-second (spec §4.4-§4.9).
func TotalAcceleration(t float64, Y [6]float64, aux AuxParam, env *Environment) [3]float64 {
	r := [3]float64{Y[0], Y[1], Y[2]}
	v := [3]float64{Y[3], Y[4], Y[5]}

	mjdUTC := aux.MjdUTC + t/86400.0
	rec := env.EOP.Lookup(mjdUTC)
	off := timeframe.EOPOffsets{
		DUT1Sec: rec.DUT1,
		DATSec:  rec.DAT,
		XPRad:   rec.XP * arcsec2rad,
		YPRad:   rec.YP * arcsec2rad,
	}
	mjdUT1 := timeframe.UT1FromUTC(mjdUTC, off)
	mjdTT := timeframe.TTFromUTC(mjdUTC, off)
	T := timeframe.JulianCenturiesTT(mjdTT)

	P := timeframe.PrecessionMatrix(T)
	E := timeframe.ECIToECEF(T, mjdUT1, off.XPRad, off.YPRad)
	gast := timeframe.GAST(mjdUT1)

	var total [3]float64
	add := func(a [3]float64) {
		total[0] += a[0]
		total[1] += a[1]
		total[2] += a[2]
	}

	// Sun/Moon positions in EME2000, scaled to meters, needed by both the
	// third-body term and (in ECEF) the tide corrections.
	sunKm := sunmoon.SunPositionICRF(T)
	moonKm := sunmoon.MoonPositionICRF(T)
	PT := vecmat.Transpose3(P)
	sunJ2000 := vecmat.MulVec3(PT, [3]float64{sunKm[0] * 1000, sunKm[1] * 1000, sunKm[2] * 1000})
	moonJ2000 := vecmat.MulVec3(PT, [3]float64{moonKm[0] * 1000, moonKm[1] * 1000, moonKm[2] * 1000})

	if aux.NMax > 0 || aux.MMax > 0 {
		if aux.SolidEarthTides {
			sunECEF := vecmat.MulVec3(E, sunJ2000)
			moonECEF := vecmat.MulVec3(E, moonJ2000)
			add(AccelHarmonicAnelasticEarth(r, E, env.GMEarth, env.REarth, env.Coeff, aux.NMax, aux.MMax,
				sunECEF, moonECEF, env.GMSun, env.GMMoon, off.XPRad, off.YPRad, aux.OceanTides))
		} else {
			add(AccelHarmonic(r, E, env.GMEarth, env.REarth, env.Coeff, aux.NMax, aux.MMax))
		}
	} else {
		// Pure two-body term when no harmonic field is configured.
		add(AccelTwoBody(r, env.GMEarth))
	}

	if aux.Sun {
		add(AccelPointMass(r, sunJ2000, env.GMSun))
	}
	if aux.Moon {
		add(AccelPointMass(r, moonJ2000, env.GMMoon))
	}
	if aux.SRad {
		const auMeters = 149597870700.0
		add(AccelSolarRadiationPressure(r, sunJ2000, aux.CR, aux.AreaSolar/aux.Mass, auMeters))
	}
	if aux.Drag {
		apInputs := env.SpW.Lookup(mjdUTC, hourOfDay(mjdUTC))
		add(AccelDragFromECI(r, v, T, gast, apInputs.Ap, apInputs.F107, apInputs.F107Bar, aux.CD, aux.AreaDrag/aux.Mass))
	}
	if aux.Relativity {
		add(AccelRelativity(r, v, env.GMEarth))
	}

	return total
}

func hourOfDay(mjd float64) float64 {
	frac := mjd - float64(int(mjd))
	return frac * 24.0
}
