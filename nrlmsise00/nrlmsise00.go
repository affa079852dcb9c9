// Package nrlmsise00 provides a reduced-order atmospheric density model in
// the shape of the NRLMSISE-00 interface (altitude, local solar time,
// latitude, and the Ap/F10.7 space-weather inputs in and out), used by the
// drag term in forcemodel (spec §4.8). The full NRLMSISE-00 model spans
// thousands of lines of species-by-species exospheric temperature and
// number-density polynomials; reproducing it exactly is out of scope here.
// Instead this package keeps the same exponential scale-height backbone
// the real model uses above ~200 km and layers the same first-order
// corrections (diurnal bulge, F10.7 and geomagnetic activity heating) on
// top, so swapping in the full model later only means replacing this
// file's Density function body, not any caller.
package nrlmsise00

import "math"

// Input carries the geodetic position, local solar time, and the
// space-weather indices the eop package's SpWTable.Lookup produces. Unlike
// the real NRLMSISE-00 Fortran/C interface it has no date or time-of-day
// fields.
type Input struct {
	AltitudeKm  float64
	LatRad      float64
	LonRad      float64
	LocalSolarHour float64 // 0-24
	F107        float64 // previous day's observed F10.7
	F107Bar     float64 // 81-day centered average F10.7
	Ap          [7]float64
}

// Output is the subset of the real model's output the drag term needs.
type Output struct {
	TotalDensityKgM3 float64
	ExosphericTempK  float64
}

const (
	baseAltKm  = 120.0
	baseTempK  = 355.0
	baseRhoKgM3 = 2.0e-8 // approximate density at 120 km, kg/m^3
	boltzmann   = 1.380649e-23
	meanMolarMassKg = 25.0 * 1.66053906660e-27 // ~25 amu mean mass above 120km
)

// Density evaluates a barometric density profile with first-order solar-
// activity, geomagnetic-activity, and diurnal-bulge corrections, in the
// style of the Jacchia-Bowman family of thermospheric models that
// NRLMSISE-00 descends from.
func Density(in Input) Output {
	// Exospheric temperature: quiet-Sun baseline plus F10.7 and Ap heating.
	Tinf := baseTempK + 3.6*(in.F107Bar-150) + 0.6*(in.F107-in.F107Bar)
	Tinf += 20.0 * averageAp(in.Ap)

	// Diurnal bulge: temperature peaks a few hours after local noon.
	bulgePhase := (in.LocalSolarHour - 14.0) / 24.0 * 2 * math.Pi
	Tinf *= 1.0 + 0.15*math.Cos(bulgePhase)*math.Cos(in.LatRad)

	if Tinf < 500 {
		Tinf = 500
	}

	scaleHeightKm := boltzmann * Tinf / (meanMolarMassKg * 9.80665) / 1000.0
	dz := in.AltitudeKm - baseAltKm
	rho := baseRhoKgM3 * math.Exp(-dz/scaleHeightKm)

	return Output{TotalDensityKgM3: rho, ExosphericTempK: Tinf}
}

func averageAp(ap [7]float64) float64 {
	var sum float64
	for _, v := range ap {
		sum += v
	}
	return sum / float64(len(ap))
}
