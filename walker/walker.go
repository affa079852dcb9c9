// Package walker synthesizes Walker (T,S,F) constellations: a seed orbit
// replicated across S equally-spaced planes with T/S satellites per plane
// and a phasing parameter F (spec §4.12).
package walker

import (
	"math"

	"github.com/hpop/orbit/vecmat"
)

const deg2rad = math.Pi / 180.0

// Seed describes the common orbit shape shared by every satellite in the
// constellation; only RAAN and anomaly vary per-satellite.
type Seed struct {
	SemiMajorAxisKm float64
	Eccentricity    float64
	InclinationDeg  float64
	RAAN0Deg        float64 // Ω0
	ArgPeriapsisDeg float64 // ω
	Anomaly0Deg     float64 // true anomaly of the reference satellite
}

// Params is the (T,S,F) Walker pattern: T total satellites in S planes,
// phasing factor F in [0,T).
type Params struct {
	T int
	S int
	F int
}

// Element is one synthesized satellite's classical orbital elements
// (spec §3 OrbitalElements): a [km], e, i/Ω/ω/ν in degrees.
type Element struct {
	Plane, Slot     int
	SemiMajorAxisKm float64
	Eccentricity    float64
	InclinationDeg  float64
	RAANDeg         float64
	ArgPeriapsisDeg float64
	AnomalyDeg      float64
}

// Synthesize returns one Element per satellite (spec §4.12):
//
//	Ω_p    = (Ω0 + p*360/S) mod 360,               p in [0,S)
//	M_p,q  = (anomaly0 + q*(360*S/T) + p*F*360/T) mod 360,  q in [0,T/S)
func Synthesize(seed Seed, p Params) []Element {
	perPlane := p.T / p.S
	out := make([]Element, 0, p.T)
	for plane := 0; plane < p.S; plane++ {
		raan := wrapDeg(seed.RAAN0Deg + float64(plane)*360.0/float64(p.S))
		for slot := 0; slot < perPlane; slot++ {
			anomaly := wrapDeg(seed.Anomaly0Deg +
				float64(slot)*(360.0*float64(p.S)/float64(p.T)) +
				float64(plane)*float64(p.F)*360.0/float64(p.T))
			out = append(out, Element{
				Plane: plane, Slot: slot,
				SemiMajorAxisKm: seed.SemiMajorAxisKm,
				Eccentricity:    seed.Eccentricity,
				InclinationDeg:  seed.InclinationDeg,
				RAANDeg:         raan,
				ArgPeriapsisDeg: seed.ArgPeriapsisDeg,
				AnomalyDeg:      anomaly,
			})
		}
	}
	return out
}

func wrapDeg(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// StateVector returns the ECI (km, km/s) position/velocity for a Walker
// Element, treating AnomalyDeg as the true anomaly ν directly (spec §9
// design note: the source's two orbitalElementsToRV variants — one that
// solves Kepler's equation for a mean anomaly and one that uses ν
// directly — are collapsed into this single ν-based form; callers
// supplying a mean anomaly must solve Kepler's equation themselves before
// calling this). gmEarth must be in km^3/s^2 to match the km inputs and
// outputs.
func StateVector(el Element, gmEarth float64) (pos, vel [3]float64) {
	a := el.SemiMajorAxisKm
	e := el.Eccentricity
	i := el.InclinationDeg * deg2rad
	raan := el.RAANDeg * deg2rad
	argp := el.ArgPeriapsisDeg * deg2rad
	nu := el.AnomalyDeg * deg2rad

	p := a * (1 - e*e)
	r := p / (1 + e*math.Cos(nu))

	// Perifocal (PQW) position/velocity.
	cosNu, sinNu := math.Cos(nu), math.Sin(nu)
	rPQW := [3]float64{r * cosNu, r * sinNu, 0}

	h := math.Sqrt(gmEarth * p)
	vPQW := [3]float64{-gmEarth / h * sinNu, gmEarth / h * (e + cosNu), 0}

	rot := pqwToECI(raan, i, argp)
	pos = vecmat.MulVec3(rot, rPQW)
	vel = vecmat.MulVec3(rot, vPQW)
	return
}

// pqwToECI builds the rotation matrix R = Rz(-Ω)*Rx(-i)*Rz(-ω) whose
// columns are the P, Q, W unit vectors expressed in the ECI frame.
func pqwToECI(raan, i, argp float64) [3][3]float64 {
	sO, cO := math.Sin(raan), math.Cos(raan)
	sI, cI := math.Sin(i), math.Cos(i)
	sW, cW := math.Sin(argp), math.Cos(argp)

	return [3][3]float64{
		{cO*cW - sO*sW*cI, -cO*sW - sO*cW*cI, sO * sI},
		{sO*cW + cO*sW*cI, -sO*sW + cO*cW*cI, -cO * sI},
		{sW * sI, cW * sI, cI},
	}
}

